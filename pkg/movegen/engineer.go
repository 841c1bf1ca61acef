package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Engineer moves like Infantry but is not subject to the heavy bridge-crossing rule: it
// may cross the rank-6/rank-7 boundary on any file, not just bridge files.
func Engineer(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	return Slide(pos, from, p, DirectionsFor(p), p.Range(), terr.LandPassable, false)
}
