package pauli

// mulLetters composes two Pauli letters acting on the same qubit, in the
// given left-to-right order. It returns the phase picked up, the resulting
// letter, and whether a letter survives at all (equal letters square to the
// identity, leaving phase 1 and no letter).
func mulLetters(a, b Letter) (phase complex128, out Letter, survives bool) {
	if a == b {
		return 1, 0, false
	}

	// XY=iZ, YZ=iX, ZX=iY; the reversed order negates the phase.
	switch {
	case a == X && b == Y:
		return 1i, Z, true
	case a == Y && b == Z:
		return 1i, X, true
	case a == Z && b == X:
		return 1i, Y, true
	case a == Y && b == X:
		return -1i, Z, true
	case a == Z && b == Y:
		return -1i, X, true
	default: // a == X && b == Z
		return -1i, Y, true
	}
}

// mulTerms multiplies two canonical Pauli strings, merging factor lists by
// qubit index and composing collisions through mulLetters. It returns the
// canonical product string and the accumulated phase.
func mulTerms(a, b Term) (Term, complex128) {
	out := make(Term, 0, len(a)+len(b))
	phase := complex128(1)

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Qubit < b[j].Qubit:
			out = append(out, a[i])
			i++
		case a[i].Qubit > b[j].Qubit:
			out = append(out, b[j])
			j++
		default:
			p, letter, survives := mulLetters(a[i].Letter, b[j].Letter)
			phase *= p
			if survives {
				out = append(out, Factor{Qubit: a[i].Qubit, Letter: letter})
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out, phase
}
