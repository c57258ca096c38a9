package prefixsum

import (
	"github.com/velikanov/fermiq/fermion"
	"github.com/velikanov/fermiq/pauli"
)

// ParityTransform — cumulative-sum fermion-to-qubit transform
//
// Description:
//
//	Applies the parity transform: qubit j stores the cumulative parity of
//	modes 0..j, so parity lookups touch one qubit while occupancy updates
//	fan out to every later qubit, giving Pauli strings of weight O(n).
//	Runs on the same prefix-sum engine as BravyiKitaev, only the index-set
//	strategy differs.
//
// Qubit count:
//
//	Derived as op.CountModes() unless overridden with WithQubits; same
//	validation rules as BravyiKitaev.
//
// Errors:
//   - ErrNilOperator       — op is nil.
//   - ErrInvalidQubitCount — WithQubits supplied a count below the number
//     of modes op references.
func ParityTransform(op *fermion.Operator, opts ...Option) (*pauli.Operator, error) {
	nQubits, err := resolveQubitCount(op, opts)
	if err != nil {
		return nil, err
	}

	return Transform(op, ParityEncoding(nQubits)), nil
}
