package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Missile moves like Artillery across land, and attacks ignoring both blockers and
// terrain -- it may strike a Navy target sitting on water, per spec.md section 4.3.
func Missile(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	dirs := DirectionsFor(p)
	moves := MoveOnly(pos, from, p, dirs, p.Range(), terr.LandPassable, true)
	moves = append(moves, RangedAttack(pos, from, p, dirs, p.Range(), terr.LandPassable, true, nil, nil)...)
	return moves
}
