package board

import (
	"sort"
)

// CanonicalOrder is the deterministic tie-break from spec.md section 4.4: moves are
// ordered stably by (piece-type, from-square, to-square, flags). movegen.GenerateAll returns
// moves in this order and the legality filter keeps its input order, so legal-move lists are
// deterministic; SAN decode matches by rendered string and does not depend on the order.
func CanonicalOrder(moves []Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.Piece.Type != b.Piece.Type {
			return a.Piece.Type < b.Piece.Type
		}
		if a.From != b.From {
			return a.From < b.From
		}
		if a.To != b.To {
			return a.To < b.To
		}
		return a.Flags < b.Flags
	})
}
