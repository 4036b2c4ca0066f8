package attrindex

import (
	"iter"

	"github.com/hupe1980/blockgraph/core"
)

// Index maps attribute values to posting lists of block IDs.
//
// Structure: attribute -> *Postings. Buckets are created on first Register
// and never removed. Lookups are pure reads: a miss leaves the map untouched.
//
// Index is not safe for concurrent writers. Concurrent readers are safe as
// long as no Register runs at the same time.
type Index struct {
	postings map[string]*Postings
}

// New creates an empty index sized for about capacity distinct attributes.
func New(capacity int) *Index {
	if capacity < 0 {
		capacity = 0
	}
	return &Index{
		postings: make(map[string]*Postings, capacity),
	}
}

// Register appends id to the posting list of attr, creating the list on
// first use. Registering the same pair twice has no further effect.
func (ix *Index) Register(attr string, id core.BlockID) {
	p, ok := ix.postings[attr]
	if !ok {
		p = NewPostings()
		ix.postings[attr] = p
	}
	p.Add(id)
}

// Lookup returns the live posting list for attr.
// The returned list must not be modified by the caller.
func (ix *Index) Lookup(attr string) (*Postings, bool) {
	p, ok := ix.postings[attr]
	return p, ok
}

// IDs returns the block IDs registered under attr in ascending order.
// The sequence is empty if attr was never registered.
func (ix *Index) IDs(attr string) iter.Seq[core.BlockID] {
	p, ok := ix.postings[attr]
	if !ok {
		return func(func(core.BlockID) bool) {}
	}
	return p.Iterator()
}

// Cardinality returns the number of blocks registered under attr.
func (ix *Index) Cardinality(attr string) int {
	p, ok := ix.postings[attr]
	if !ok {
		return 0
	}
	return int(p.Cardinality())
}

// Len returns the number of distinct attributes.
func (ix *Index) Len() int {
	return len(ix.postings)
}

// Keys returns the distinct attributes in unspecified order.
func (ix *Index) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for attr := range ix.postings {
			if !yield(attr) {
				return
			}
		}
	}
}

// SizeInBytes returns the summed serialized size of all posting lists.
func (ix *Index) SizeInBytes() uint64 {
	var total uint64
	for _, p := range ix.postings {
		total += p.GetSizeInBytes()
	}
	return total
}

// Match returns the IDs registered under every one of attrs.
// Unknown attributes yield an empty result; no attributes yields nil.
func (ix *Index) Match(attrs ...string) *Postings {
	if len(attrs) == 0 {
		return nil
	}
	lists := make([]*Postings, 0, len(attrs))
	for _, attr := range attrs {
		p, ok := ix.postings[attr]
		if !ok {
			return NewPostings()
		}
		lists = append(lists, p)
	}
	return Intersect(lists...)
}

// MatchAny returns the IDs registered under at least one of attrs.
func (ix *Index) MatchAny(attrs ...string) *Postings {
	lists := make([]*Postings, 0, len(attrs))
	for _, attr := range attrs {
		if p, ok := ix.postings[attr]; ok {
			lists = append(lists, p)
		}
	}
	if len(lists) == 0 {
		return NewPostings()
	}
	return Union(lists...)
}
