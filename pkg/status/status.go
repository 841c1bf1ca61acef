// Package status derives game termination from an already-computed legal move list, per
// spec.md section 4.8.
package status

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/movegen"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Status is the termination state of a position from the perspective of the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "?"
	}
}

// Of derives the status of pos given the side to move's already-computed legal moves.
// Stalemate is a loss for the side to move in this game, the same as checkmate, but the
// two are kept distinct because the mechanism differs (commander under attack vs not).
func Of(pos *board.Position, terr *terrain.Map, legalMoves []board.Move) Status {
	side := pos.Turn()
	inCheck := movegen.IsAttacked(pos, terr, pos.Commander(side), side.Opponent())
	if len(legalMoves) == 0 {
		if inCheck {
			return Checkmate
		}
		return Stalemate
	}
	if inCheck {
		return Check
	}
	return Ongoing
}
