package board

import "errors"

// Sentinel errors for board-level invariant violations. See spec.md section 7.
var (
	ErrInvalidSquare        = errors.New("invalid square")
	ErrStackInvariantBroken = errors.New("stack invariant broken")
)
