package prefixsum

import (
	"github.com/velikanov/fermiq/fermion"
	"github.com/velikanov/fermiq/pauli"
)

// Transform — generic prefix-sum transform engine
//
// Description:
//
//	Converts a fermionic operator into a qubit operator under the given
//	occupation-number encoding. Every term of the source operator is
//	transformed independently and the contributions are accumulated by
//	addition; within one term, ladder-operator transforms multiply in the
//	term's original left-to-right order, since ladder operators do not
//	commute.
//
// Algorithm Outline:
//  1. Seed the result with the zero qubit operator.
//  2. For each (term, coefficient) of op:
//     a. Seed an accumulator with the identity scaled by the coefficient.
//     b. For each ladder operator of the term, in order, multiply the
//     accumulator by its two-term Pauli combination (see below).
//     c. Add the accumulator into the result.
//
// Each ladder operator (index, action) maps to the Majorana-like pair
//
//	even = +0.5  · X(update) · Z(parity)                 // (a† + a)/2
//	odd  = −0.5i · Y(index) · X(update ∖ {index})
//	              · Z((parity △ occupation) ∖ {index})   // (a† − a)/2
//
// with parity = ParitySet(index−1), or the empty set for mode 0. Raising
// is even + odd, lowering is even − odd; the sign is the only difference
// between creation and annihilation.
//
// Complexity:
//
//	O(terms · term length · index-set size) Pauli factors built, then
//	whatever the accumulated products cost in the pauli container.
//
// Transform performs no validation; qubit-count checks live in the entry
// points (BravyiKitaev, ParityTransform).
func Transform(op *fermion.Operator, enc Encoding) *pauli.Operator {
	result := pauli.NewOperator()
	op.Each(func(term fermion.Term, coeff complex128) {
		result.Add(transformTerm(term, coeff, enc))
	})

	return result
}

// transformTerm folds the ladder-operator transforms of one term, in the
// term's original order, into the identity scaled by the term coefficient.
// The fold is multiplicative and order-sensitive; reordering here would
// silently change signs.
func transformTerm(term fermion.Term, coeff complex128, enc Encoding) *pauli.Operator {
	acc := pauli.Identity(coeff)
	for _, ladder := range term {
		acc.Mul(transformLadderOperator(ladder, enc))
	}

	return acc
}

// transformLadderOperator builds the two-term Pauli combination for a
// single ladder operator under enc.
func transformLadderOperator(ladder fermion.LadderOp, enc Encoding) *pauli.Operator {
	update := enc.UpdateSet(ladder.Mode)
	occupation := enc.OccupationSet(ladder.Mode)

	// Cumulative parity of the modes strictly before this one.
	parity := make(IndexSet)
	if ladder.Mode > 0 {
		parity = enc.ParitySet(ladder.Mode - 1)
	}

	// (a† + a)/2: flip the update qubits, conditioned on the prior parity.
	even := pauli.NewTerm(0.5, pauliFactors(update, pauli.X, parity, pauli.Z)...)

	// (a† − a)/2: Y on the mode's own qubit; the symmetric difference makes
	// the occupation and cumulative parities cancel where they overlap.
	oddZ := parity.SymmetricDifference(occupation).Without(ladder.Mode)
	oddFactors := append(
		[]pauli.Factor{{Qubit: ladder.Mode, Letter: pauli.Y}},
		pauliFactors(update.Without(ladder.Mode), pauli.X, oddZ, pauli.Z)...,
	)
	odd := pauli.NewTerm(-0.5i, oddFactors...)

	if ladder.Action == fermion.Raise {
		return even.Add(odd)
	}

	return even.Sub(odd)
}

// pauliFactors renders two index sets as factor lists with the given
// letters, each in ascending qubit order.
func pauliFactors(a IndexSet, la pauli.Letter, b IndexSet, lb pauli.Letter) []pauli.Factor {
	out := make([]pauli.Factor, 0, a.Len()+b.Len())
	for _, q := range a.Sorted() {
		out = append(out, pauli.Factor{Qubit: q, Letter: la})
	}
	for _, q := range b.Sorted() {
		out = append(out, pauli.Factor{Qubit: q, Letter: lb})
	}

	return out
}
