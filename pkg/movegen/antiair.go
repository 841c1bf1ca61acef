package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// AntiAir moves and captures like Infantry (range 1, two once heroic) but is a heavy
// piece for bridge-crossing purposes; its attack does not ignore blockers.
func AntiAir(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	return Slide(pos, from, p, DirectionsFor(p), p.Range(), terr.LandPassable, true)
}
