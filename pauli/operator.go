package pauli

import (
	"math"
	"math/cmplx"
	"sort"
	"strconv"
	"strings"
)

// Operator stores a qubit operator: a mapping from canonical Pauli strings
// to complex coefficients. Absent strings carry an implicit zero
// coefficient. The zero value is not usable; construct via NewOperator,
// NewTerm or Identity.
type Operator struct {
	terms map[string]termEntry
}

type termEntry struct {
	term  Term
	coeff complex128
}

// NewOperator returns the zero operator (no terms).
func NewOperator() *Operator {
	return &Operator{terms: make(map[string]termEntry)}
}

// NewTerm returns an operator holding the single Pauli string described by
// factors, scaled by coeff. The factor list need not be sorted and may act
// on the same qubit more than once: factors are stable-sorted by qubit and
// same-qubit runs are composed through the Pauli algebra, with phases folded
// into the coefficient. With no factors it is the scaled identity.
func NewTerm(coeff complex128, factors ...Factor) *Operator {
	term, phase := canonicalize(factors)

	o := NewOperator()
	o.addTerm(term, coeff*phase)

	return o
}

// Identity returns the identity string scaled by coeff.
func Identity(coeff complex128) *Operator {
	return NewTerm(coeff)
}

// canonicalize sorts factors by qubit (stable, so same-qubit order is the
// multiplication order) and composes same-qubit collisions.
func canonicalize(factors []Factor) (Term, complex128) {
	fs := make([]Factor, len(factors))
	copy(fs, factors)
	sort.SliceStable(fs, func(i, j int) bool { return fs[i].Qubit < fs[j].Qubit })

	out := make(Term, 0, len(fs))
	phase := complex128(1)
	for _, f := range fs {
		if n := len(out); n > 0 && out[n-1].Qubit == f.Qubit {
			p, letter, survives := mulLetters(out[n-1].Letter, f.Letter)
			phase *= p
			out = out[:n-1]
			if survives {
				out = append(out, Factor{Qubit: f.Qubit, Letter: letter})
			}
			continue
		}
		out = append(out, f)
	}

	return out, phase
}

// addTerm accumulates coeff onto the stored coefficient of the canonical
// term.
func (o *Operator) addTerm(term Term, coeff complex128) {
	key := term.String()
	e, ok := o.terms[key]
	if !ok {
		e = termEntry{term: term}
	}
	e.coeff += coeff
	o.terms[key] = e
}

// Add accumulates other into o (o += other) and returns o.
func (o *Operator) Add(other *Operator) *Operator {
	for _, e := range other.terms {
		o.addTerm(e.term, e.coeff)
	}

	return o
}

// Sub removes other from o (o -= other) and returns o.
func (o *Operator) Sub(other *Operator) *Operator {
	for _, e := range other.terms {
		o.addTerm(e.term, -e.coeff)
	}

	return o
}

// Mul replaces o with the operator product o·other (o *= other).
// Multiplication is not commutative: o.Mul(other) and other.Mul(o) differ
// whenever anticommuting strings are involved.
func (o *Operator) Mul(other *Operator) *Operator {
	product := make(map[string]termEntry, len(o.terms)*len(other.terms))
	for _, left := range o.terms {
		for _, right := range other.terms {
			term, phase := mulTerms(left.term, right.term)
			key := term.String()
			e, ok := product[key]
			if !ok {
				e = termEntry{term: term}
			}
			e.coeff += left.coeff * right.coeff * phase
			product[key] = e
		}
	}
	o.terms = product

	return o
}

// Scale multiplies every coefficient by c and returns o.
func (o *Operator) Scale(c complex128) *Operator {
	for key, e := range o.terms {
		e.coeff *= c
		o.terms[key] = e
	}

	return o
}

// Clone returns a deep copy of o.
func (o *Operator) Clone() *Operator {
	out := NewOperator()
	for _, e := range o.terms {
		out.addTerm(e.term, e.coeff)
	}

	return out
}

// Each calls fn once per stored term. Iteration order is unspecified.
func (o *Operator) Each(fn func(term Term, coeff complex128)) {
	for _, e := range o.terms {
		fn(e.term, e.coeff)
	}
}

// Coefficient returns the stored coefficient of the Pauli string described
// by factors (canonicalized first), or zero when absent. The canonicalization
// phase is divided back out so the call answers "what multiplies this
// string", not "what multiplies this factor list".
func (o *Operator) Coefficient(factors ...Factor) complex128 {
	term, phase := canonicalize(factors)

	return o.terms[term.String()].coeff / phase
}

// NumTerms reports how many distinct Pauli strings are stored, including
// strings whose coefficient has cancelled to zero but has not been
// compressed away.
func (o *Operator) NumTerms() int {
	return len(o.terms)
}

// Compress drops every string whose coefficient magnitude is at or below
// tol.
func (o *Operator) Compress(tol float64) *Operator {
	for key, e := range o.terms {
		if cmplx.Abs(e.coeff) <= tol {
			delete(o.terms, key)
		}
	}

	return o
}

// String renders the operator deterministically: strings sorted by their
// canonical key, each as "(coeff) [string]", joined by " + ". The zero
// operator renders as "0".
func (o *Operator) String() string {
	if len(o.terms) == 0 {
		return "0"
	}

	keys := make([]string, 0, len(o.terms))
	for key := range o.terms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" + ")
		}
		b.WriteString(formatCoeff(o.terms[key].coeff))
		b.WriteString(" [")
		b.WriteString(key)
		b.WriteString("]")
	}

	return b.String()
}

// formatCoeff renders a complex coefficient like fmt's %v, normalizing
// negative zero components so cancellations print cleanly.
func formatCoeff(c complex128) string {
	re, im := real(c), imag(c)
	if re == 0 {
		re = 0
	}
	if im == 0 {
		im = 0
	}
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}

	return "(" + strconv.FormatFloat(re, 'g', -1, 64) +
		sign + strconv.FormatFloat(im, 'g', -1, 64) + "i)"
}
