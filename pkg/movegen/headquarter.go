package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// headquarterRange is the Militia range a heroic Headquarter adopts: Militia's base range
// of one plus the standard heroic bonus.
const headquarterRange = 2

// Headquarter never moves unless heroic, in which case it moves and attacks exactly like
// a heroic Militia.
func Headquarter(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	if !p.Heroic {
		return nil
	}
	return Slide(pos, from, p, DirectionsFor(p), headquarterRange, terr.LandPassable, false)
}
