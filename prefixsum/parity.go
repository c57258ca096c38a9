package prefixsum

// Parity-encoding index sets, from the cumulative-sum layout of mode
// occupations: qubit j stores the parity of all modes up through j. Updates
// are expensive (every later qubit depends on the flipped mode) but parity
// queries are trivial.

// UpdateSetParity returns the qubits that must be flipped when the
// occupancy of mode index changes: the mode's own qubit and every later
// one, nQubits − index of them.
func UpdateSetParity(index, nQubits int) IndexSet {
	indices := make(IndexSet)
	for i := index; i < nQubits; i++ {
		indices.Add(i)
	}

	return indices
}

// OccupationSetParity returns the qubits whose joint parity stores the
// occupation of mode index: the cumulative qubit and its neighbor, except
// at the boundary mode 0 where the cumulative value is the occupation
// itself.
func OccupationSetParity(index int) IndexSet {
	if index == 0 {
		return NewIndexSet(index)
	}

	return NewIndexSet(index, index+1)
}

// ParitySetParity returns the qubits whose joint parity stores the
// cumulative parity of modes 0..index: the single cumulative qubit.
func ParitySetParity(index int) IndexSet {
	return NewIndexSet(index)
}

// parityEncoding binds the cumulative-sum index sets to a fixed qubit
// count.
type parityEncoding struct {
	qubits int
}

// ParityEncoding returns the cumulative-sum occupation encoding over
// nQubits qubits, for use with Transform.
func ParityEncoding(nQubits int) Encoding {
	return parityEncoding{qubits: nQubits}
}

func (e parityEncoding) UpdateSet(index int) IndexSet {
	return UpdateSetParity(index, e.qubits)
}

func (e parityEncoding) OccupationSet(index int) IndexSet {
	return OccupationSetParity(index)
}

func (e parityEncoding) ParitySet(index int) IndexSet {
	return ParitySetParity(index)
}
