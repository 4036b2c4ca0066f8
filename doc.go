// Package blockgraph provides a small in-memory collection of named blocks
// with a reverse attribute index.
//
// A Block carries a name and a set of string attributes. A Graph owns blocks,
// keeps their names unique, and answers "which blocks carry attribute A"
// without scanning.
//
// # Quick Start
//
//	g := blockgraph.New()
//
//	b := blockgraph.NewBlock("pump")
//	b.AddAttribute("hydraulic")
//	b.AddAttribute("rotary")
//	g.Insert(b)
//
//	for blk := range g.WithAttribute("hydraulic") {
//	    fmt.Println(blk.Name())
//	}
//
// # Unique Names
//
// Insert keeps a block's name if it is free. Otherwise the block is renamed to
// the first free candidate of name+"0", name+"1", ... in that order. Inserting
// three blocks named "foo" yields "foo", "foo0" and "foo1". A name check is a
// single hash lookup; repeated collisions on one base resume probing where the
// previous one stopped.
//
// # Ownership
//
// Insert is a transfer of ownership: the graph stores the block pointer in an
// arena indexed by a dense core.BlockID and freezes its attributes. The
// attribute index stores only BlockIDs in Roaring Bitmaps and resolves them
// through the arena, so it never owns or copies a block. Blocks cannot be
// removed.
//
// # Lookups
//
// All, WithAttribute, WithAllAttributes and WithAnyAttribute return iter.Seq
// views. Single-attribute lookups iterate the live posting list; multi-attribute
// lookups materialize one bitmap sized by the result. A lookup for an unknown
// attribute yields nothing and leaves the graph unchanged.
//
// # Concurrency
//
// A Graph is meant for a single goroutine. Reads never mutate, so any number
// of readers may share a graph that no longer receives inserts.
package blockgraph
