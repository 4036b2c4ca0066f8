package blockgraph

import (
	"iter"
	"time"

	"github.com/hupe1980/blockgraph/core"
	"github.com/hupe1980/blockgraph/internal/attrindex"
	"github.com/hupe1980/blockgraph/internal/naming"
)

// Graph owns a collection of uniquely named blocks and indexes them by
// attribute.
//
// Architecture:
//   - Arena: []*Block indexed by core.BlockID (insertion ordinal, owning)
//   - Names: hash map name -> BlockID with per-base probe hints
//   - Attributes: attribute -> Roaring Bitmap of BlockIDs (non-owning)
//
// A Graph is not safe for concurrent use. Readers may run concurrently with
// each other as long as no Insert runs at the same time.
type Graph struct {
	blocks []*Block
	names  *naming.Registry
	index  *attrindex.Index

	renamed int

	logger  *Logger
	metrics MetricsCollector
	timed   bool
}

// New creates an empty graph.
func New(optFns ...Option) *Graph {
	o := applyOptions(optFns)

	_, noop := o.metricsCollector.(NoopMetricsCollector)

	return &Graph{
		blocks:  make([]*Block, 0, o.expectedBlocks),
		names:   naming.New(o.expectedBlocks),
		index:   attrindex.New(o.expectedAttributes),
		logger:  o.logger,
		metrics: o.metricsCollector,
		timed:   !noop,
	}
}

// Insert transfers ownership of b to the graph.
//
// If b's name is already taken, b is renamed to the first free name of the
// form name+"0", name+"1", ... A free name is never changed. Every attribute
// of b is then indexed.
//
// b must be a fresh block inserted exactly once. Misuse (nil, or a block that
// is already registered) is logged and ignored; use TryInsert to observe it.
func (g *Graph) Insert(b *Block) {
	if err := g.TryInsert(b); err != nil {
		name := ""
		if b != nil {
			name = b.name
		}
		g.logger.LogRejected(name, err)
	}
}

// TryInsert is Insert with misuse reported as an error.
// On error the graph and b are left unchanged.
func (g *Graph) TryInsert(b *Block) error {
	if b == nil {
		return ErrNilBlock
	}
	if b.owner != nil {
		return &ErrOwned{Name: b.name, SameGraph: b.owner == g}
	}
	id, ok := nextID(len(g.blocks))
	if !ok {
		return ErrGraphFull
	}

	var start time.Time
	if g.timed {
		start = time.Now()
	}

	requested := b.name

	name, renamed := g.names.Claim(requested, id)
	b.name = name
	b.id = id
	b.owner = g
	g.blocks = append(g.blocks, b)

	for _, attr := range b.attrs {
		g.index.Register(attr, id)
	}

	if renamed {
		g.renamed++
	}
	if g.timed {
		g.metrics.RecordInsert(time.Since(start), renamed, len(b.attrs))
	}
	g.logger.LogInsert(requested, name, len(b.attrs))

	return nil
}

// InsertAll inserts blocks in order. Rejected blocks are logged and skipped
// as with Insert.
func (g *Graph) InsertAll(blocks ...*Block) {
	rejected := 0
	for _, b := range blocks {
		if err := g.TryInsert(b); err != nil {
			rejected++
			name := ""
			if b != nil {
				name = b.name
			}
			g.logger.LogRejected(name, err)
		}
	}
	g.logger.LogBatchInsert(len(blocks), rejected)
}

// Len returns the number of blocks.
func (g *Graph) Len() int {
	return len(g.blocks)
}

// All returns every block owned by the graph.
// Blocks are yielded in insertion order, which callers should not rely on.
func (g *Graph) All() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		g.yieldAll(LookupAll, yield)
	}
}

// WithAttribute returns every block that carried attr when it was inserted.
// The sequence is empty if no block has attr. A miss does not modify the graph.
func (g *Graph) WithAttribute(attr string) iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		g.yieldIDs(LookupAttribute, g.index.IDs(attr), yield)
	}
}

// CountWithAttribute returns the number of blocks carrying attr.
func (g *Graph) CountWithAttribute(attr string) int {
	return g.index.Cardinality(attr)
}

// WithAllAttributes returns the blocks carrying every one of attrs.
// With no attributes, every block matches. Either way the lookup is recorded
// as LookupMatch.
func (g *Graph) WithAllAttributes(attrs ...string) iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		if len(attrs) == 0 {
			g.yieldAll(LookupMatch, yield)
			return
		}
		g.yieldIDs(LookupMatch, g.index.Match(attrs...).Iterator(), yield)
	}
}

// WithAnyAttribute returns the blocks carrying at least one of attrs.
func (g *Graph) WithAnyAttribute(attrs ...string) iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		g.yieldIDs(LookupMatch, g.index.MatchAny(attrs...).Iterator(), yield)
	}
}

// Attributes returns the distinct attribute values in unspecified order.
func (g *Graph) Attributes() iter.Seq[string] {
	return g.index.Keys()
}

// Lookup returns the block currently named name.
func (g *Graph) Lookup(name string) (*Block, bool) {
	id, ok := g.names.Lookup(name)
	if !ok {
		return nil, false
	}
	return g.blocks[id], true
}

// Block returns the block with the given id.
func (g *Graph) Block(id core.BlockID) (*Block, bool) {
	if uint64(id) >= uint64(len(g.blocks)) {
		return nil, false
	}
	return g.blocks[id], true
}

// Stats is a point-in-time summary of a graph.
type Stats struct {
	Blocks              int
	DistinctAttributes  int
	Renamed             int
	PostingsSizeInBytes uint64
}

// Stats returns a summary of the graph.
func (g *Graph) Stats() Stats {
	return Stats{
		Blocks:              len(g.blocks),
		DistinctAttributes:  g.index.Len(),
		Renamed:             g.renamed,
		PostingsSizeInBytes: g.index.SizeInBytes(),
	}
}

// nextID returns the ID for the block following n stored blocks.
// n == MaxBlockID still maps to a valid ID; only n > MaxBlockID is full.
func nextID(n int) (core.BlockID, bool) {
	if uint64(n) > uint64(core.MaxBlockID) {
		return 0, false
	}
	return core.BlockID(n), true
}

func (g *Graph) yieldAll(kind LookupKind, yield func(*Block) bool) {
	var start time.Time
	if g.timed {
		start = time.Now()
	}
	hits := 0
	for _, b := range g.blocks {
		hits++
		if !yield(b) {
			break
		}
	}
	if g.timed {
		g.metrics.RecordLookup(kind, hits, time.Since(start))
	}
}

func (g *Graph) yieldIDs(kind LookupKind, ids iter.Seq[core.BlockID], yield func(*Block) bool) {
	var start time.Time
	if g.timed {
		start = time.Now()
	}
	hits := 0
	for id := range ids {
		hits++
		if !yield(g.blocks[id]) {
			break
		}
	}
	if g.timed {
		g.metrics.RecordLookup(kind, hits, time.Since(start))
	}
}

// Names returns the block names in insertion order.
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.blocks))
	for _, b := range g.blocks {
		names = append(names, b.name)
	}
	return names
}
