package fermion

import "math/cmplx"

// NormalOrdered — canonical reordering under the anticommutation relations
//
// Description:
//
//	Rewrites op as an equal operator whose every term is normal ordered:
//	raising operators stand left of lowering operators, and within each
//	group higher modes stand left of lower modes. Swapping two ladder
//	operators flips the sign of the coefficient; swapping a with a† on the
//	same mode additionally applies the identity a a† = 1 − a† a, which
//	spawns a shorter term. Repeated identical operators annihilate the term
//	(a a = a† a† = 0 on the same mode).
//
// Complexity:
//
//	Worst-case exponential in term length — every same-mode a a† pair can
//	double the number of surviving terms.
func NormalOrdered(op *Operator) *Operator {
	out := NewOperator()
	op.Each(func(term Term, coeff complex128) {
		out.Add(normalOrderedTerm(term, coeff))
	})

	return out
}

// normalOrderedTerm normal-orders a single term via adjacent transpositions,
// bubbling each operator leftward into place.
func normalOrderedTerm(term Term, coeff complex128) *Operator {
	t := make(Term, len(term))
	copy(t, term)

	out := NewOperator()
	for i := 1; i < len(t); i++ {
		for j := i; j > 0; j-- {
			right, left := t[j], t[j-1]

			switch {
			// Lowering left of raising: anticommute them past each other.
			case right.Action == Raise && left.Action == Lower:
				t[j-1], t[j] = right, left
				coeff = -coeff

				// Same mode: a a† = 1 − a† a, so the swapped-out pair also
				// contributes the term with both operators removed.
				if right.Mode == left.Mode {
					rest := make(Term, 0, len(t)-2)
					rest = append(rest, t[:j-1]...)
					rest = append(rest, t[j+1:]...)
					out.Add(normalOrderedTerm(rest, -coeff))
				}

			case right.Action == left.Action:
				// Identical operators on the same mode square to zero.
				if right.Mode == left.Mode {
					return out
				}
				// Same ladder type, lower mode on the left: swap with sign.
				if right.Mode > left.Mode {
					t[j-1], t[j] = right, left
					coeff = -coeff
				}
			}
		}
	}
	out.addTerm(t, coeff)

	return out
}

// IsNormalOrdered reports whether every term of op is already normal ordered
// (raising before lowering, modes descending within each group).
func IsNormalOrdered(op *Operator) bool {
	ordered := true
	op.Each(func(term Term, _ complex128) {
		for i := 1; i < len(term); i++ {
			right, left := term[i], term[i-1]
			if left.Action == Lower && right.Action == Raise {
				ordered = false
			}
			if left.Action == right.Action && right.Mode > left.Mode {
				ordered = false
			}
		}
	})

	return ordered
}

// HermitianConjugated returns op†: each term reversed with every action
// flipped, each coefficient complex-conjugated.
func HermitianConjugated(op *Operator) *Operator {
	out := NewOperator()
	op.Each(func(term Term, coeff complex128) {
		conj := make(Term, len(term))
		for i, l := range term {
			flipped := Raise
			if l.Action == Raise {
				flipped = Lower
			}
			conj[len(term)-1-i] = LadderOp{Mode: l.Mode, Action: flipped}
		}
		out.addTerm(conj, cmplx.Conj(coeff))
	})

	return out
}
