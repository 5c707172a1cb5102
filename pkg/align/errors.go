package align

import "fmt"

// InvariantError indicates a scanner or caller broke its contract with
// the engine: an out-of-range cell, a cell token that isn't part of its
// own row's TokenRange, or an unreachable branch in the matrix fill.
// These are bugs, not recoverable alignment failures, so the engine
// panics with an InvariantError rather than threading an error return
// through every call — mirroring the original's CHECK/assert policy for
// the same conditions.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("align: invariant violated in %s: %s", e.Op, e.Msg)
}

func invariantf(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

// AbstainReason explains why a candidate group was left untouched.
type AbstainReason int

const (
	// AbstainNone means the group was aligned; it is the zero value so
	// a GroupOutcome defaults to "nothing to report".
	AbstainNone AbstainReason = iota
	// AbstainEmptyInput: no row of the group took part (no leaf rows,
	// or every row was ignored), or the scanner reserved no cell.
	AbstainEmptyInput
	// AbstainHeterogeneousRows: rows in the group did not share a
	// NodeKind, so no single scanner contract applies to all of them.
	AbstainHeterogeneousRows
	// AbstainUnderfullGroup: the group had fewer than two rows; a single
	// row has nothing to align against.
	AbstainUnderfullGroup
	// AbstainDisabledRegion: some byte in the group's span falls inside
	// a format-disabled region.
	AbstainDisabledRegion
	// AbstainBudgetOverflow: the aligned layout would exceed columnLimit.
	AbstainBudgetOverflow
	// AbstainIgnored is not returned by TabularAlignTokens; a group
	// whose rows were all ignored reports AbstainEmptyInput.
	AbstainIgnored
)

func (r AbstainReason) String() string {
	switch r {
	case AbstainNone:
		return "aligned"
	case AbstainEmptyInput:
		return "empty input"
	case AbstainHeterogeneousRows:
		return "heterogeneous row kinds"
	case AbstainUnderfullGroup:
		return "underfull group"
	case AbstainDisabledRegion:
		return "disabled region"
	case AbstainBudgetOverflow:
		return "budget overflow"
	case AbstainIgnored:
		return "ignored by caller"
	default:
		return "unknown"
	}
}
