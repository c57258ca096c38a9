// Package prefixsum: index-set type and the encoding capability surface.
package prefixsum

import "sort"

// IndexSet is an unordered set of qubit indices.
type IndexSet map[int]struct{}

// NewIndexSet returns a set holding the given indices.
func NewIndexSet(indices ...int) IndexSet {
	s := make(IndexSet, len(indices))
	for _, i := range indices {
		s.Add(i)
	}

	return s
}

// Add inserts index i into the set.
func (s IndexSet) Add(i int) {
	s[i] = struct{}{}
}

// Contains reports whether i is in the set.
func (s IndexSet) Contains(i int) bool {
	_, ok := s[i]

	return ok
}

// Len returns the number of indices in the set.
func (s IndexSet) Len() int {
	return len(s)
}

// Without returns a copy of s with index i removed.
func (s IndexSet) Without(i int) IndexSet {
	out := make(IndexSet, len(s))
	for j := range s {
		if j != i {
			out.Add(j)
		}
	}

	return out
}

// SymmetricDifference returns the indices present in exactly one of s and
// other. Shared indices cancel.
func (s IndexSet) SymmetricDifference(other IndexSet) IndexSet {
	out := make(IndexSet, len(s)+len(other))
	for i := range s {
		if !other.Contains(i) {
			out.Add(i)
		}
	}
	for i := range other {
		if !s.Contains(i) {
			out.Add(i)
		}
	}

	return out
}

// Sorted returns the indices in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)

	return out
}

// Encoding describes an occupation-number encoding through its three
// index-set queries. The transform engine is generic over this interface
// and must not special-case any particular encoding.
//
// Contract: every returned index lies in [0, nQubits) for the qubit count
// the encoding was constructed with, and repeated calls with the same
// argument return equal sets (the queries are pure).
type Encoding interface {
	// UpdateSet returns the qubits whose X operator must appear when mode
	// index is raised or lowered.
	UpdateSet(index int) IndexSet

	// OccupationSet returns the qubits whose joint Z-parity equals the
	// occupation number of mode index.
	OccupationSet(index int) IndexSet

	// ParitySet returns the qubits whose joint Z-parity equals the
	// cumulative parity of modes 0..index inclusive. The engine only ever
	// queries it at index−1, treating mode 0 as having no predecessors.
	ParitySet(index int) IndexSet
}
