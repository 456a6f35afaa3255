package quickmg

import "errors"

var (
	// ErrMalformedAlgebraic reports move or square text that is not coordinate notation.
	ErrMalformedAlgebraic = errors.New("malformed algebraic move")
	// ErrIllegalMove reports well-formed move text that matches no generated move.
	ErrIllegalMove = errors.New("ambiguous or illegal move")
	// ErrMalformedFEN reports an unparsable FEN record.
	ErrMalformedFEN = errors.New("malformed FEN")
)

// InvariantError describes a failed internal consistency check. It signals a
// programming defect rather than bad input.
type InvariantError struct {
	Check string
}

func (e *InvariantError) Error() string { return "quickmg: invariant violated: " + e.Check }
