package apply

import (
	"context"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/seekerror/logw"
)

// Undo reverses the mutation described by rec, restoring pos to the state it had before
// the corresponding Apply call.
func Undo(ctx context.Context, pos *board.Position, rec UndoRecord) error {
	logw.Infof(ctx, "undo: %v", rec.Move)

	if err := pos.Set(rec.Move.From, rec.FromPiece); err != nil {
		return err
	}
	if err := pos.Set(rec.Move.To, rec.ToPiece); err != nil {
		return err
	}

	pos.SetCommander(board.Red, rec.PriorCommanders[board.Red])
	pos.SetCommander(board.Blue, rec.PriorCommanders[board.Blue])
	pos.SetTurn(rec.PriorTurn)
	pos.SetHalfMoves(rec.PriorHalfMoves)
	pos.SetFullMoves(rec.PriorFullMoves)
	pos.SetDeploy(rec.PriorDeploy)
	pos.InvalidateAirDefenseCache(board.Red)
	pos.InvalidateAirDefenseCache(board.Blue)

	return nil
}
