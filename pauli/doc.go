// Package pauli provides a container for qubit operators: weighted sums of
// Pauli strings, with the full single-qubit Pauli algebra built in.
//
// 🚀 What lives here?
//
//	  • Letter    — one of the Pauli matrices X, Y, Z
//	  • Factor    — a Letter acting on one qubit index
//	  • Term      — a Pauli string: factors sorted by qubit, at most one
//	    letter per qubit; the empty term is the identity
//	  • Operator  — a mapping from Term to a complex coefficient, closed
//	    under addition, subtraction, scaling and (non-commutative)
//	    multiplication
//
// ✨ Algebra:
//
//   - X·Y = iZ, Y·Z = iX, Z·X = iY; reversing the order negates the phase
//   - equal letters square to the identity
//   - letters on different qubits commute and concatenate
//   - products are stored canonically, phases folded into coefficients,
//     coefficients summed for equal strings
//
// ⚙️ Usage:
//
//	import "github.com/velikanov/fermiq/pauli"
//
//	// 0.5 X0 Z2
//	a := pauli.NewTerm(0.5,
//	  pauli.Factor{Qubit: 0, Letter: pauli.X},
//	  pauli.Factor{Qubit: 2, Letter: pauli.Z},
//	)
//	b := pauli.NewTerm(1, pauli.Factor{Qubit: 0, Letter: pauli.Y})
//	a.Mul(b) // 0.5i Z0 Z2
//
// Complexity: multiplication of two operators is O(T₁·T₂·L) for T term
// counts and L string length; all other operations are linear.
package pauli
