// Package pauli: core value types for Pauli strings.
package pauli

import (
	"strconv"
	"strings"
)

// Letter is a single-qubit Pauli matrix.
type Letter byte

const (
	// X is the Pauli X (bit-flip) matrix.
	X Letter = 'X'

	// Y is the Pauli Y matrix.
	Y Letter = 'Y'

	// Z is the Pauli Z (phase-flip) matrix.
	Z Letter = 'Z'
)

// String renders the letter as "X", "Y" or "Z".
func (l Letter) String() string {
	return string(rune(l))
}

// Factor is one Pauli letter acting on one qubit index.
type Factor struct {
	Qubit  int
	Letter Letter
}

// String renders the factor as e.g. "X0" or "Z12".
func (f Factor) String() string {
	return f.Letter.String() + strconv.Itoa(f.Qubit)
}

// Term is a Pauli string in canonical form: factors sorted by ascending
// qubit index, at most one letter per qubit. The empty term is the identity.
// Terms produced by this package are always canonical; hand-built slices
// should go through NewTerm, which canonicalizes.
type Term []Factor

// String renders the term as space-separated factors, e.g. "X0 Z2".
// The identity term renders as "".
func (t Term) String() string {
	parts := make([]string, len(t))
	for i, f := range t {
		parts[i] = f.String()
	}

	return strings.Join(parts, " ")
}
