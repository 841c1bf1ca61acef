package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Tank moves up to two squares across land and may shoot over an intervening piece to
// capture an enemy at its maximum range, per spec.md section 4.3.
func Tank(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	dirs := DirectionsFor(p)
	moves := MoveOnly(pos, from, p, dirs, p.Range(), terr.LandPassable, false)
	moves = append(moves, RangedAttack(pos, from, p, dirs, p.Range(), terr.LandPassable, false, terr.LandPassable, nil)...)
	return moves
}
