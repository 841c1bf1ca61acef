// Package legality filters pseudo-legal moves down to legal ones: the mover's own
// commander must not be left under attack afterward, per spec.md section 4.4.
package legality

import (
	"context"

	"github.com/mnoyd/cotulenh-engine/pkg/apply"
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/movegen"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Filter returns the subset of pseudo that is legal to play from pos, in input order.
// Every candidate, whatever its kind, is simulated on a clone via IsLegal.
func Filter(ctx context.Context, pos *board.Position, terr *terrain.Map, pseudo []board.Move) []board.Move {
	var legal []board.Move
	for _, mv := range pseudo {
		if IsLegal(ctx, pos, terr, mv) {
			legal = append(legal, mv)
		}
	}
	return legal
}

// IsLegal simulates mv on a clone of pos and reports whether the mover's commander is safe
// afterward.
func IsLegal(ctx context.Context, pos *board.Position, terr *terrain.Map, mv board.Move) bool {
	clone := pos.Clone()
	if _, err := apply.Apply(ctx, clone, terr, mv); err != nil {
		return false
	}
	mover := mv.Piece.Color
	commanderSq := clone.Commander(mover)
	return !movegen.IsAttacked(clone, terr, commanderSq, mover.Opponent())
}
