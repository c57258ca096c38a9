// Package fermiq maps fermionic creation/annihilation operator expressions
// onto qubit (Pauli-string) operator expressions.
//
// 🚀 What is fermiq?
//
//	A pure-Go toolkit for second-quantized operator algebra and
//	fermion-to-qubit encodings, built around a generic prefix-sum
//	transform engine:
//	  • fermion/   — FermionOperator container: ladder-operator terms,
//	    complex coefficients, normal ordering, hermitian conjugation
//	  • pauli/     — QubitOperator container: Pauli-string terms with
//	    full single-qubit algebra (XY=iZ and friends)
//	  • prefixsum/ — the transform engine plus two pluggable encodings:
//	    Bravyi–Kitaev (Fenwick-tree, O(log n) strings) and
//	    Parity (cumulative-sum, O(n) strings)
//
// ✨ Why choose fermiq?
//
//   - Exact algebra — phase and sign bookkeeping handled once, in one place
//   - Pluggable encodings — the engine only sees three index-set queries
//   - Pure Go — no cgo, no services, no I/O; just operators in, operators out
//   - Deterministic — canonical term ordering, reproducible string forms
//
// Quick example:
//
//	op := fermion.NewTerm(1, fermion.LadderOp{Mode: 0, Action: fermion.Raise})
//	q, err := prefixsum.BravyiKitaev(op)
//	if err != nil {
//	  // handle prefixsum.ErrInvalidQubitCount / ErrNilOperator
//	}
//	fmt.Println(q) // (0.5+0i) [X0] + (0-0.5i) [Y0]
//
// See each subpackage's doc.go and example_test.go for walkthroughs.
package fermiq
