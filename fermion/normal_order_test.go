package fermion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velikanov/fermiq/fermion"
)

func raise(mode int) fermion.LadderOp { return fermion.LadderOp{Mode: mode, Action: fermion.Raise} }
func lower(mode int) fermion.LadderOp { return fermion.LadderOp{Mode: mode, Action: fermion.Lower} }

// TestNormalOrdered_SameModeSwap verifies a a† = 1 − a† a on one mode.
func TestNormalOrdered_SameModeSwap(t *testing.T) {
	op := fermion.NewTerm(1, lower(0), raise(0))
	got := fermion.NormalOrdered(op)

	assert.Equal(t, 2, got.NumTerms())
	assertCoeff(t, 1, got.Coefficient(), "identity part of a a†")
	assertCoeff(t, -1, got.Coefficient(raise(0), lower(0)), "swapped part picks up a minus")
}

// TestNormalOrdered_AnticommutatorIsIdentity verifies that
// a0† a0 + a0 a0† normal-orders to the identity — the anticommutation
// relation {a, a†} = 1.
func TestNormalOrdered_AnticommutatorIsIdentity(t *testing.T) {
	op := fermion.NewTerm(1, raise(0), lower(0))
	op.Add(fermion.NewTerm(1, lower(0), raise(0)))

	got := fermion.NormalOrdered(op).Compress(tol)
	assert.Equal(t, 1, got.NumTerms())
	assertCoeff(t, 1, got.Coefficient())
}

// TestNormalOrdered_SameTypeModeSwap verifies the sign flip when two
// raising operators trade places to put the higher mode left.
func TestNormalOrdered_SameTypeModeSwap(t *testing.T) {
	got := fermion.NormalOrdered(fermion.NewTerm(1, raise(1), raise(2)))

	assert.Equal(t, 1, got.NumTerms())
	assertCoeff(t, -1, got.Coefficient(raise(2), raise(1)))
}

// TestNormalOrdered_RepeatedOperatorIsZero verifies a† a† = 0 on one mode.
func TestNormalOrdered_RepeatedOperatorIsZero(t *testing.T) {
	got := fermion.NormalOrdered(fermion.NewTerm(1, raise(3), raise(3)))
	assert.Equal(t, 0, got.NumTerms())
}

// TestNormalOrdered_CrossModeSwap verifies a_1 a_0† = −a_0† a_1 (distinct
// modes anticommute with no contact term).
func TestNormalOrdered_CrossModeSwap(t *testing.T) {
	got := fermion.NormalOrdered(fermion.NewTerm(1, lower(1), raise(0)))

	assert.Equal(t, 1, got.NumTerms())
	assertCoeff(t, -1, got.Coefficient(raise(0), lower(1)))
}

// TestIsNormalOrdered covers both orderings.
func TestIsNormalOrdered(t *testing.T) {
	assert.True(t, fermion.IsNormalOrdered(fermion.NewTerm(1, raise(2), raise(1), lower(0))))
	assert.False(t, fermion.IsNormalOrdered(fermion.NewTerm(1, lower(0), raise(0))))
	assert.False(t, fermion.IsNormalOrdered(fermion.NewTerm(1, raise(1), raise(2))))
}

// TestHermitianConjugated verifies reversal, action flip and coefficient
// conjugation.
func TestHermitianConjugated(t *testing.T) {
	op := fermion.NewTerm(2i, raise(2), lower(0))
	got := fermion.HermitianConjugated(op)

	assert.Equal(t, 1, got.NumTerms())
	assertCoeff(t, -2i, got.Coefficient(raise(0), lower(2)))
}

// TestHermitianConjugated_Involution verifies (op†)† == op.
func TestHermitianConjugated_Involution(t *testing.T) {
	op := fermion.NewTerm(1+2i, raise(1), lower(3))
	op.Add(fermion.Identity(0.5))

	back := fermion.HermitianConjugated(fermion.HermitianConjugated(op))
	assert.Equal(t, op.String(), back.String())
}
