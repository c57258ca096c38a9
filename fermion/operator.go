package fermion

import (
	"math"
	"math/cmplx"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Operator stores a sum of products of fermionic ladder operators: a mapping
// from Term to a complex coefficient. Absent terms carry an implicit zero
// coefficient. Terms are keyed by their canonical string form; the ordered
// Term value is kept alongside so iteration hands back real terms, not keys.
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

// NewTerm returns an operator holding a single term with the given
// coefficient. With no ladder operators it is the scaled identity.
func NewTerm(coeff complex128, ops ...LadderOp) *Operator {
	o := NewOperator()
	o.addTerm(Term(ops), coeff)

	return o
}

// Identity returns the identity term scaled by coeff.
func Identity(coeff complex128) *Operator {
	return NewTerm(coeff)
}

// addTerm accumulates coeff onto the stored coefficient of term.
func (o *Operator) addTerm(term Term, coeff complex128) {
	key := term.String()
	e, ok := o.terms[key]
	if !ok {
		e = termEntry{term: slices.Clone(term)}
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

// Each calls fn once per stored term. Iteration order is unspecified;
// callers must not rely on it (addition across terms is commutative).
func (o *Operator) Each(fn func(term Term, coeff complex128)) {
	for _, e := range o.terms {
		fn(e.term, e.coeff)
	}
}

// Coefficient returns the stored coefficient of the given ladder-operator
// product, or zero when the term is absent.
func (o *Operator) Coefficient(ops ...LadderOp) complex128 {
	return o.terms[Term(ops).String()].coeff
}

// NumTerms reports how many distinct terms are stored, including terms whose
// coefficient has cancelled to zero but has not been compressed away.
func (o *Operator) NumTerms() int {
	return len(o.terms)
}

// CountModes returns one plus the highest mode index referenced anywhere in
// the operator, i.e. the minimal qubit count any encoding of o needs.
// The zero operator references no modes and returns 0.
func (o *Operator) CountModes() int {
	modes := 0
	for _, e := range o.terms {
		for _, l := range e.term {
			if l.Mode+1 > modes {
				modes = l.Mode + 1
			}
		}
	}

	return modes
}

// Compress drops every term whose coefficient magnitude is at or below tol.
// Use a small positive tol (e.g. 1e-12) to clear floating-point residue
// after cancellations.
func (o *Operator) Compress(tol float64) *Operator {
	for key, e := range o.terms {
		if cmplx.Abs(e.coeff) <= tol {
			delete(o.terms, key)
		}
	}

	return o
}

// String renders the operator deterministically: terms sorted by their
// canonical string key, each as "(coeff) [term]", joined by " + ".
// The zero operator renders as "0".
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
		c := o.terms[key].coeff
		b.WriteString(formatCoeff(c))
		b.WriteString(" [")
		b.WriteString(key)
		b.WriteString("]")
	}

	return b.String()
}

// formatCoeff renders a complex coefficient the way fmt renders complex128,
// normalizing negative zero components so cancellations print cleanly.
func formatCoeff(c complex128) string {
	re, im := real(c), imag(c)
	if re == 0 {
		re = 0 // clear -0
	}
	if im == 0 {
		im = 0
	}
	sign := "+"
	if math.Signbit(im) {
		sign = "-"
		im = -im
	}

	return "(" + trimFloat(re) + sign + trimFloat(im) + "i)"
}

// trimFloat formats a float without trailing zeros, matching %v.
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
