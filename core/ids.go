package core

// BlockID is a dense, graph-local identifier for a block.
// It is the block's insertion ordinal and indexes the graph's arena directly.
// Strictly 32-bit so posting lists fit a 32-bit roaring bitmap.
type BlockID uint32

// MaxBlockID is the maximum possible value for a BlockID.
const MaxBlockID = ^BlockID(0)
