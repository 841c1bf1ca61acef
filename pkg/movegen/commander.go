package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Commander moves one square orthogonally (two and omnidirectional once heroic), and may
// additionally capture the enemy commander at any distance along a file with no
// intervening piece -- the mirror image of the flying-general rule that forbids the two
// commanders from ever facing each other with a clear file between them.
func Commander(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	moves := Slide(pos, from, p, DirectionsFor(p), p.Range(), terr.LandPassable, false)
	if mv, ok := flyingCapture(pos, from, p); ok {
		moves = append(moves, mv)
	}
	return moves
}

func flyingCapture(pos *board.Position, from board.Square, p board.Piece) (board.Move, bool) {
	enemySq := pos.Commander(p.Color.Opponent())
	if enemySq.File() != from.File() {
		return board.Move{}, false
	}
	dir := North
	if enemySq.Rank() < from.Rank() {
		dir = South
	}
	for _, sq := range Ray(from, dir, int(board.NumRanks)) {
		piece := pos.Get(sq)
		if piece.IsZero() {
			continue
		}
		if sq == enemySq {
			return board.Move{
				Kind:    board.CaptureMove,
				From:    from,
				To:      sq,
				Piece:   p,
				Capture: piece,
				Flags:   board.FlagIgnoresBlockers | board.FlagRangedCapture,
			}, true
		}
		return board.Move{}, false
	}
	return board.Move{}, false
}
