package attrindex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/blockgraph/core"
)

// Postings is the posting list of a single attribute.
// It wraps a 32-bit Roaring Bitmap of block IDs.
type Postings struct {
	rb *roaring.Bitmap
}

// NewPostings creates an empty posting list.
func NewPostings() *Postings {
	return &Postings{
		rb: roaring.New(),
	}
}

// Add adds a block ID.
func (p *Postings) Add(id core.BlockID) {
	p.rb.Add(uint32(id))
}

// Contains reports whether id is in the posting list.
func (p *Postings) Contains(id core.BlockID) bool {
	return p.rb.Contains(uint32(id))
}

// IsEmpty returns true if the posting list is empty.
func (p *Postings) IsEmpty() bool {
	return p.rb.IsEmpty()
}

// Cardinality returns the number of block IDs.
func (p *Postings) Cardinality() uint64 {
	return p.rb.GetCardinality()
}

// GetSizeInBytes returns the serialized size of the posting list.
func (p *Postings) GetSizeInBytes() uint64 {
	return p.rb.GetSizeInBytes()
}

// Iterator returns an ascending iterator over the block IDs.
// The iterator reads the live posting list; it must not be held across a
// Register on the same attribute.
func (p *Postings) Iterator() iter.Seq[core.BlockID] {
	return func(yield func(core.BlockID) bool) {
		it := p.rb.Iterator()
		for it.HasNext() {
			if !yield(core.BlockID(it.Next())) {
				return
			}
		}
	}
}

// Intersect returns a new posting list holding the IDs present in every
// argument. The arguments are not modified.
func Intersect(ps ...*Postings) *Postings {
	if len(ps) == 0 {
		return NewPostings()
	}
	bms := make([]*roaring.Bitmap, len(ps))
	for i, p := range ps {
		bms[i] = p.rb
	}
	if len(bms) == 1 {
		return &Postings{rb: bms[0].Clone()}
	}
	return &Postings{rb: roaring.FastAnd(bms...)}
}

// Union returns a new posting list holding the IDs present in any argument.
// The arguments are not modified.
func Union(ps ...*Postings) *Postings {
	bms := make([]*roaring.Bitmap, len(ps))
	for i, p := range ps {
		bms[i] = p.rb
	}
	return &Postings{rb: roaring.FastOr(bms...)}
}
