// SPDX-License-Identifier: MIT
// Package prefixsum: sentinel error set.
// This file defines ONLY package-level sentinel errors. All entry points
// MUST return these sentinels and tests MUST check them via errors.Is.
// No transform panics on user-triggered error conditions.

package prefixsum

import "errors"

var (
	// ErrInvalidQubitCount is returned when a caller-supplied qubit count
	// cannot accommodate every mode the source operator references.
	// Validation happens before any transform work; there is no partial
	// result.
	ErrInvalidQubitCount = errors.New("prefixsum: invalid number of qubits")

	// ErrNilOperator is returned when a nil fermionic operator is passed
	// to an entry point.
	ErrNilOperator = errors.New("prefixsum: operator is nil")
)
