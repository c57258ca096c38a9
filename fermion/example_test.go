package fermion_test

import (
	"fmt"

	"github.com/velikanov/fermiq/fermion"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNormalOrdered
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Normal-order a₀ a₀† — annihilation left of creation on the same mode.
//	The anticommutation relation rewrites it as 1 − a₀† a₀.
//
// Use case:
//
//	Canonicalizing Hamiltonian terms before comparing or transforming them.
func ExampleNormalOrdered() {
	op := fermion.NewTerm(1,
		fermion.LadderOp{Mode: 0, Action: fermion.Lower},
		fermion.LadderOp{Mode: 0, Action: fermion.Raise},
	)
	fmt.Println(fermion.NormalOrdered(op))
	// Output:
	// (1+0i) [] + (-1+0i) [0^ 0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleHermitianConjugated
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Conjugate a hopping term 2i·a₂† a₀: the product reverses, actions
//	flip, and the coefficient conjugates.
func ExampleHermitianConjugated() {
	op := fermion.NewTerm(2i,
		fermion.LadderOp{Mode: 2, Action: fermion.Raise},
		fermion.LadderOp{Mode: 0, Action: fermion.Lower},
	)
	fmt.Println(fermion.HermitianConjugated(op))
	// Output:
	// (0-2i) [0^ 2]
}
