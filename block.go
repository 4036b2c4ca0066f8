package blockgraph

import (
	"iter"
	"slices"
	"unique"

	"github.com/hupe1980/blockgraph/core"
)

// Block is a named item carrying a set of string attributes.
//
// A Block is created by the caller, populated with attributes and handed to
// exactly one Graph via Insert. From then on the graph owns it: the graph may
// rewrite its name once during Insert to keep names unique, and the attribute
// set is frozen.
type Block struct {
	name  string
	attrs []string

	id    core.BlockID
	owner *Graph
}

// NewBlock creates an unregistered block.
// Attributes are assumed to be unique; duplicates are not detected.
func NewBlock(name string, attrs ...string) *Block {
	b := &Block{
		name:  name,
		attrs: make([]string, 0, len(attrs)),
	}
	for _, attr := range attrs {
		b.attrs = append(b.attrs, intern(attr))
	}
	return b
}

// Name returns the current name. After Insert this is the unique name
// assigned by the graph.
func (b *Block) Name() string {
	return b.name
}

// AddAttribute adds attr to the block.
// It has no effect once the block is registered with a graph.
func (b *Block) AddAttribute(attr string) {
	if b.owner != nil {
		return
	}
	b.attrs = append(b.attrs, intern(attr))
}

// Attributes returns a read-only view of the attributes in insertion order.
func (b *Block) Attributes() iter.Seq[string] {
	return slices.Values(b.attrs)
}

// NumAttributes returns the number of attributes.
func (b *Block) NumAttributes() int {
	return len(b.attrs)
}

// HasAttribute reports whether attr was added to the block. O(n) in the
// number of attributes; use Graph.WithAttribute for reverse lookups.
func (b *Block) HasAttribute(attr string) bool {
	return slices.Contains(b.attrs, attr)
}

// ID returns the graph-local identifier. ok is false while unregistered.
func (b *Block) ID() (id core.BlockID, ok bool) {
	return b.id, b.owner != nil
}

// Registered reports whether the block is owned by a graph.
func (b *Block) Registered() bool {
	return b.owner != nil
}

// intern canonicalizes attribute strings so that equal values carried by
// many blocks share one backing array.
func intern(s string) string {
	return unique.Make(s).Value()
}
