package board

import (
	"errors"
	"fmt"
)

var (
	// ErrContradiction matches any ContradictionError via errors.Is.
	ErrContradiction = errors.New("grid contradiction")
	// ErrInvalidDigit reports a digit outside 1-9.
	ErrInvalidDigit = errors.New("digit must be between 1-9")
	// ErrInvalidPosition reports a position off the board.
	ErrInvalidPosition = errors.New("position out of bounds")
)

// ContradictionError reports the cell at which the grid became
// inconsistent: an open cell whose candidate set ran empty, or a placement
// that collides with a peer. The mutation that triggered it is not rolled
// back; callers doing speculative placement must clone first.
type ContradictionError struct {
	Pos Position
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("grid contradiction at %s", e.Pos)
}

// Is lets errors.Is(err, ErrContradiction) match.
func (e *ContradictionError) Is(target error) bool { return target == ErrContradiction }
