package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// GenerateFrom returns the pseudo-legal moves available to the piece standing on `from`,
// dispatching on its type. It returns nil for an empty square or a piece that cannot move
// (a non-heroic Headquarter).
func GenerateFrom(pos *board.Position, terr *terrain.Map, from board.Square) []board.Move {
	p := pos.Get(from)
	if p.IsZero() || !p.CanMove() {
		return nil
	}
	switch p.Type {
	case board.Commander:
		return Commander(pos, terr, from, p)
	case board.Infantry:
		return Infantry(pos, terr, from, p)
	case board.Tank:
		return Tank(pos, terr, from, p)
	case board.Militia:
		return Militia(pos, terr, from, p)
	case board.Engineer:
		return Engineer(pos, terr, from, p)
	case board.Artillery:
		return Artillery(pos, terr, from, p)
	case board.AntiAir:
		return AntiAir(pos, terr, from, p)
	case board.Missile:
		return Missile(pos, terr, from, p)
	case board.AirForce:
		return AirForce(pos, terr, from, p)
	case board.Navy:
		return Navy(pos, terr, from, p)
	case board.Headquarter:
		return Headquarter(pos, terr, from, p)
	default:
		return nil
	}
}

// GenerateAll returns every pseudo-legal move for the side to move, in canonical order.
func GenerateAll(pos *board.Position, terr *terrain.Map, side board.Color) []board.Move {
	var moves []board.Move
	for _, pl := range pos.AllPlacements() {
		if pl.Piece.Color != side {
			continue
		}
		moves = append(moves, GenerateFrom(pos, terr, pl.Square)...)
	}
	board.CanonicalOrder(moves)
	return moves
}

// IsAttacked reports whether any piece of color `by` pseudo-legally attacks sq -- used by
// the legality filter to test commander safety without generating full move lists.
func IsAttacked(pos *board.Position, terr *terrain.Map, sq board.Square, by board.Color) bool {
	for _, pl := range pos.AllPlacements() {
		if pl.Piece.Color != by {
			continue
		}
		for _, mv := range GenerateFrom(pos, terr, pl.Square) {
			if (mv.Kind == board.CaptureMove || mv.Kind == board.StayCapture || mv.Kind == board.SuicideCapture) && mv.To == sq {
				return true
			}
		}
	}
	return false
}
