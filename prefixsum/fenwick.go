package prefixsum

// Bravyi–Kitaev index sets, from the Fenwick-tree (binary indexed tree)
// layout of mode occupations: arXiv:quant-ph/0003137 and Fenwick's
// "A New Data Structure for Cumulative Frequency Tables".
//
// All three functions work on 1-based indices internally: the Fenwick bit
// tricks (v += v & -v, v &= v − 1) are only well-defined for positive
// integers, and mode 0 would otherwise terminate the loops immediately.
// Indices convert back to 0-based qubits on insertion.

// UpdateSetBravyiKitaev returns the qubits that must be flipped when the
// occupancy of mode index changes: the Fenwick-tree ancestors of the mode,
// O(log nQubits) of them.
func UpdateSetBravyiKitaev(index, nQubits int) IndexSet {
	indices := make(IndexSet)

	// Walk ancestors by repeatedly adding the lowest set bit,
	// e.g. 00010100 -> 00011000.
	for v := index + 1; v <= nQubits; v += v & -v {
		indices.Add(v - 1)
	}

	return indices
}

// OccupationSetBravyiKitaev returns the qubits whose joint parity stores
// the occupation of mode index.
func OccupationSetBravyiKitaev(index int) IndexSet {
	indices := make(IndexSet)

	v := index + 1
	indices.Add(v - 1)

	// Strip the lowest set bit once to find the Fenwick parent, then walk
	// down to it, e.g. 00010100 -> 00010000.
	parent := v & (v - 1)
	for v--; v != parent; v &= v - 1 {
		indices.Add(v - 1)
	}

	return indices
}

// ParitySetBravyiKitaev returns the qubits whose joint parity stores the
// cumulative parity of modes 0..index.
func ParitySetBravyiKitaev(index int) IndexSet {
	indices := make(IndexSet)

	// Strip lowest set bits down to zero, e.g. 00010100 -> 00010000 -> 0.
	for v := index + 1; v > 0; v &= v - 1 {
		indices.Add(v - 1)
	}

	return indices
}

// bravyiKitaevEncoding binds the Fenwick-tree index sets to a fixed qubit
// count.
type bravyiKitaevEncoding struct {
	qubits int
}

// BravyiKitaevEncoding returns the Fenwick-tree occupation encoding over
// nQubits qubits, for use with Transform.
func BravyiKitaevEncoding(nQubits int) Encoding {
	return bravyiKitaevEncoding{qubits: nQubits}
}

func (e bravyiKitaevEncoding) UpdateSet(index int) IndexSet {
	return UpdateSetBravyiKitaev(index, e.qubits)
}

func (e bravyiKitaevEncoding) OccupationSet(index int) IndexSet {
	return OccupationSetBravyiKitaev(index)
}

func (e bravyiKitaevEncoding) ParitySet(index int) IndexSet {
	return ParitySetBravyiKitaev(index)
}
