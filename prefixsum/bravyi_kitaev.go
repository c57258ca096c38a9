package prefixsum

import (
	"github.com/velikanov/fermiq/fermion"
	"github.com/velikanov/fermiq/pauli"
)

// BravyiKitaev — Fenwick-tree fermion-to-qubit transform
//
// Description:
//
//	Applies the Bravyi–Kitaev transform: occupations live in the Fenwick
//	(binary indexed) tree layout, so every ladder operator maps to Pauli
//	strings of weight O(log n). Implementation follows
//	arXiv:quant-ph/0003137 via the prefix-sum engine.
//
// Qubit count:
//
//	Derived as op.CountModes() unless overridden with WithQubits. An
//	override may exceed the minimum (padding the encoding with empty
//	modes) but never undercut it.
//
// Errors:
//   - ErrNilOperator       — op is nil.
//   - ErrInvalidQubitCount — WithQubits supplied a count below the number
//     of modes op references.
func BravyiKitaev(op *fermion.Operator, opts ...Option) (*pauli.Operator, error) {
	nQubits, err := resolveQubitCount(op, opts)
	if err != nil {
		return nil, err
	}

	return Transform(op, BravyiKitaevEncoding(nQubits)), nil
}
