// Package prefixsum maps fermionic operators onto qubit operators through
// occupation-number encodings described by prefix sums.
//
// 🚀 What is a prefix-sum transform?
//
//	Instead of dedicating one qubit per fermionic mode, an encoding stores
//	the occupation of each mode in the joint parity of a subset of qubits.
//	Any such encoding is fully described by three index-set queries:
//	  • UpdateSet(i)     — qubits flipped (X) when mode i is raised/lowered
//	  • OccupationSet(i) — qubits whose joint Z-parity is mode i's occupation
//	  • ParitySet(i)     — qubits whose joint Z-parity is the cumulative
//	    parity of modes 0..i
//	A generic engine consumes the three queries and turns any ladder
//	operator into a two-term Pauli combination, any term into an ordered
//	product of those, and any operator into the accumulated sum.
//
// ✨ Encodings provided:
//
//   - Bravyi–Kitaev — Fenwick-tree (binary indexed tree) encoding;
//     Pauli strings of weight O(log n)
//   - Parity — cumulative-sum encoding; strings of weight O(n) but with a
//     trivial update rule
//
// ⚙️ Usage:
//
//	import "github.com/velikanov/fermiq/prefixsum"
//
//	op := fermion.NewTerm(1, fermion.LadderOp{Mode: 2, Action: fermion.Raise})
//	q, err := prefixsum.BravyiKitaev(op, prefixsum.WithQubits(4))
//	if err != nil {
//	  // handle ErrInvalidQubitCount / ErrNilOperator
//	}
//
// Performance:
//
//   - Bravyi–Kitaev: O(T·L·log n) Pauli factors for T terms of length L
//   - Parity: O(T·L·n)
//
// See example_test.go for worked transforms and bench_test.go for the
// hopping-chain benchmarks.
package prefixsum
