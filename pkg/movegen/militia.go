package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Militia moves exactly like Infantry: one square orthogonally, two and omnidirectional
// once heroic.
func Militia(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	return Slide(pos, from, p, DirectionsFor(p), p.Range(), terr.LandPassable, false)
}
