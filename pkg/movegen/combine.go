package movegen

import "github.com/mnoyd/cotulenh-engine/pkg/board"

// tryCombine builds a Combine move if mover (a carrier, possibly already a stack) may
// absorb the friendly piece sitting at `to`, per spec.md section 4.3.
func tryCombine(from, to board.Square, mover, target board.Piece) (board.Move, bool) {
	if !board.IsCarrier(mover.Type) || target.IsStack() {
		return board.Move{}, false
	}
	carrying := append(append([]board.Piece{}, mover.Carrying...), board.Piece{
		Type: target.Type, Color: target.Color, Heroic: target.Heroic,
	})
	candidate := board.Piece{Type: mover.Type, Color: mover.Color, Heroic: mover.Heroic, Carrying: carrying}
	if err := board.ValidateStack(candidate); err != nil {
		return board.Move{}, false
	}
	return board.Move{Kind: board.Combine, From: from, To: to, Piece: candidate, CombineWith: target}, true
}
