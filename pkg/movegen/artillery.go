package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Artillery moves across land (gated by the bridge rule, being a heavy piece) and attacks
// in a straight line ignoring blockers, per spec.md section 4.3's indirect-fire rule.
func Artillery(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	dirs := DirectionsFor(p)
	moves := MoveOnly(pos, from, p, dirs, p.Range(), terr.LandPassable, true)
	moves = append(moves, RangedAttack(pos, from, p, dirs, p.Range(), terr.LandPassable, true, nil, nil)...)
	return moves
}
