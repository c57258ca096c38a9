// Package fermion: core value types for ladder operators and terms.
package fermion

import (
	"strconv"
	"strings"
)

// Action distinguishes creation from annihilation.
type Action int

const (
	// Lower is the annihilation operator a.
	Lower Action = iota

	// Raise is the creation operator a†.
	Raise
)

// String renders the action as the conventional suffix: "^" for creation,
// empty for annihilation.
func (a Action) String() string {
	if a == Raise {
		return "^"
	}

	return ""
}

// LadderOp is a single ladder operator acting on one fermionic mode.
// Mode indices are non-negative; validating that is the caller's contract.
type LadderOp struct {
	Mode   int
	Action Action
}

// String renders the ladder operator as "3^" (creation) or "3" (annihilation).
func (l LadderOp) String() string {
	return strconv.Itoa(l.Mode) + l.Action.String()
}

// Term is an ordered product of ladder operators. Ladder operators do not
// commute, so the slice order is part of the value; nothing in this package
// reorders a Term behind the caller's back.
type Term []LadderOp

// String renders the term in second-quantization notation, e.g. "3^ 1".
// The empty term (identity) renders as "".
func (t Term) String() string {
	parts := make([]string, len(t))
	for i, l := range t {
		parts[i] = l.String()
	}

	return strings.Join(parts, " ")
}
