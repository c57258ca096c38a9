// Package fermion provides a container for second-quantized fermionic
// operators: weighted sums of ordered products of creation (a†) and
// annihilation (a) ladder operators.
//
// 🚀 What lives here?
//
//	  • LadderOp  — one creation or annihilation operator on one mode
//	  • Term      — an ordered product of ladder operators; order is
//	    semantically significant and is never reordered by the container
//	  • Operator  — a mapping from Term to a complex coefficient, closed
//	    under addition, subtraction and scaling
//	  • NormalOrdered / HermitianConjugated — canonicalization helpers
//	    honoring the fermionic anticommutation relations
//
// ✨ Conventions:
//
//   - Raise is a† (creation), Lower is a (annihilation)
//   - Term strings follow the common second-quantization notation:
//     "3^ 1" means a₃† a₁; the empty term is the identity
//   - Normal ordering puts raising operators left of lowering ones and
//     higher modes left of lower ones, applying a a† = 1 − a† a on the way
//
// ⚙️ Usage:
//
//	import "github.com/velikanov/fermiq/fermion"
//
//	// 2 a₂† a₀  +  1 (identity)
//	op := fermion.NewTerm(2,
//	  fermion.LadderOp{Mode: 2, Action: fermion.Raise},
//	  fermion.LadderOp{Mode: 0, Action: fermion.Lower},
//	)
//	op.Add(fermion.Identity(1))
//
// Complexity: all container operations are linear in the number of stored
// terms; NormalOrdered is worst-case exponential in term length (each
// same-mode a a† swap spawns a shorter term).
package fermion
