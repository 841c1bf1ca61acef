package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Infantry generates moves for an Infantry piece: one square
// orthogonally, two once heroic, with diagonals added on heroic status.
func Infantry(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	return Slide(pos, from, p, DirectionsFor(p), p.Range(), terr.LandPassable, false)
}
