package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// AirForce flies over every other piece (ignoring blockers for both movement and attack)
// but is constrained by the defending side's air-defense zone, per spec.md section 4.3:
//   - a square covered by two or more defense sources cannot be entered at all, occupied
//     or not, and blocks the ray beyond it;
//   - a covered-by-exactly-one empty square cannot be landed on either;
//   - capturing an enemy on a square covered by exactly one source is a SuicideCapture
//     (the Air Force piece is destroyed along with its target);
//   - capturing an enemy on an uncovered square is an ordinary capture.
func AirForce(pos *board.Position, terr *terrain.Map, from board.Square, p board.Piece) []board.Move {
	var moves []board.Move
	defender := p.Color.Opponent()
	for _, dir := range DirectionsFor(p) {
		for _, sq := range Ray(from, dir, p.Range()) {
			count := terrain.SourceCount(pos, defender, sq)
			if count >= 2 {
				break
			}
			target := pos.Get(sq)
			if target.IsZero() {
				if count == 0 {
					moves = append(moves, board.Move{Kind: board.Normal, From: from, To: sq, Piece: p, Flags: board.FlagIgnoresBlockers})
				}
				continue
			}
			if target.Color == p.Color {
				if mv, ok := tryCombine(from, sq, p, target); ok {
					moves = append(moves, mv)
				}
				continue
			}
			kind := board.CaptureMove
			if count == 1 {
				kind = board.SuicideCapture
			}
			moves = append(moves, board.Move{Kind: kind, From: from, To: sq, Piece: p, Capture: target, Flags: board.FlagIgnoresBlockers})
		}
	}
	return moves
}
