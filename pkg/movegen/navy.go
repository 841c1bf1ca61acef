package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Navy moves across water (and bridges/mixed squares) and attacks ignoring blockers and
// terrain. An attack against a pure-Land target only reaches squares within one square of
// water (the coastal-attack rule); against Water/Mixed/Bridge targets the coastal
// restriction does not apply, and every attack stays within the piece's range.
func Navy(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	dirs := DirectionsFor(p)
	moves := MoveOnly(pos, from, p, dirs, p.Range(), terr.NavyPassable, false)
	extra := func(sq board.Square) bool {
		if terr.ClassOf(sq) != terrain.Land {
			return true
		}
		return terr.IsCoastal(sq)
	}
	moves = append(moves, RangedAttack(pos, from, p, dirs, p.Range(), terr.NavyPassable, true, nil, extra)...)
	return moves
}
