package prefixsum

import (
	"fmt"

	"github.com/velikanov/fermiq/fermion"
)

// Option configures a transform entry point via functional arguments.
type Option func(*Options)

// Options holds the tunable parameters of the transform entry points.
type Options struct {
	// Qubits is the target qubit count. Meaningful only when set through
	// WithQubits; the zero value means "derive from the operator".
	Qubits int

	// explicit records whether Qubits was supplied by the caller, so that
	// an explicit 0 is validated rather than treated as a default.
	explicit bool
}

// DefaultOptions returns Options that derive the qubit count from the
// operator: one plus the highest mode index it references.
func DefaultOptions() Options {
	return Options{}
}

// WithQubits forces the qubit count of the resulting operator. The count
// must cover every mode the source operator references; a smaller (or
// negative) count fails with ErrInvalidQubitCount — modes are never
// silently dropped.
func WithQubits(n int) Option {
	return func(o *Options) {
		o.Qubits = n
		o.explicit = true
	}
}

// resolveQubitCount applies opts and validates the qubit count against the
// operator's minimal requirement.
func resolveQubitCount(op *fermion.Operator, opts []Option) (int, error) {
	if op == nil {
		return 0, ErrNilOperator
	}

	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	need := op.CountModes()
	if !o.explicit {
		return need, nil
	}
	if o.Qubits < need {
		return 0, fmt.Errorf("%w: operator references %d mode(s), got %d",
			ErrInvalidQubitCount, need, o.Qubits)
	}

	return o.Qubits, nil
}
