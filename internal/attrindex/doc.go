// Package attrindex provides the inverted attribute index of a block graph.
//
// The index maps each attribute value to a posting list of dense block IDs
// stored in a Roaring Bitmap. It never owns blocks: IDs resolve through the
// arena of the graph that registered them, and stay valid for that graph's
// lifetime because blocks are never removed.
//
// Block IDs are assigned in insertion order, so every Register call appends
// to the tail of a posting list and iteration yields IDs in insertion order.
package attrindex
