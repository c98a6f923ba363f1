package catalog

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// RowSet is a 32-bit Roaring Bitmap over row positions of the merged
// catalog. It backs the group→rows inverted index used to filter the
// suggestion scan; iteration yields rows in ascending catalog order, which
// is what keeps equal-distance ties stable across runs.
type RowSet struct {
	rb *roaring.Bitmap
}

// NewRowSet creates a new empty row set.
func NewRowSet() *RowSet {
	return &RowSet{
		rb: roaring.New(),
	}
}

// Add adds a row position to the set.
func (s *RowSet) Add(row uint32) {
	s.rb.Add(row)
}

// Contains checks if a row position is in the set.
func (s *RowSet) Contains(row uint32) bool {
	return s.rb.Contains(row)
}

// Cardinality returns the number of rows in the set.
func (s *RowSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *RowSet) Clone() *RowSet {
	return &RowSet{
		rb: s.rb.Clone(),
	}
}

// Or computes the union with another set, in place.
func (s *RowSet) Or(other *RowSet) {
	s.rb.Or(other.rb)
}

// Iterator returns an iterator over the set in ascending row order.
func (s *RowSet) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
