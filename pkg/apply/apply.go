// Package apply mutates a board.Position according to a board.Move, and reverses that
// mutation given the UndoRecord it returns. It handles normal, capture, stay-capture,
// suicide-capture and combine moves; deploy moves are not applied here (pkg/deploy
// handles them).
package apply

import (
	"context"
	"fmt"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/movegen"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
	"github.com/seekerror/logw"
)

// UndoRecord captures everything Apply changed, so Undo can restore the position exactly.
type UndoRecord struct {
	Move board.Move

	FromPiece board.Piece // piece that stood on From before the move
	ToPiece   board.Piece // piece that stood on To before the move (captured, or zero)

	PriorCommanders [board.NumColors]board.Square
	PriorTurn       board.Color
	PriorHalfMoves  int
	PriorFullMoves  int

	PriorDeploy *board.DeploySession
}

// Apply mutates pos according to mv and returns an UndoRecord that Undo can later consume.
// It does not check legality; callers are expected to only apply moves returned by
// pkg/legality.
func Apply(ctx context.Context, pos *board.Position, terr *terrain.Map, mv board.Move) (UndoRecord, error) {
	logw.Infof(ctx, "apply: %v", mv)

	rec := UndoRecord{
		Move:            mv,
		FromPiece:       pos.Get(mv.From),
		ToPiece:         pos.Get(mv.To),
		PriorCommanders: [board.NumColors]board.Square{pos.Commander(board.Red), pos.Commander(board.Blue)},
		PriorTurn:       pos.Turn(),
		PriorHalfMoves:  pos.HalfMoves(),
		PriorFullMoves:  pos.FullMoves(),
		PriorDeploy:     pos.Deploy().Clone(),
	}

	switch mv.Kind {
	case board.Normal, board.CaptureMove:
		if err := relocate(pos, terr, mv); err != nil {
			return rec, err
		}
	case board.StayCapture, board.SuicideCapture:
		if err := pos.Set(mv.To, board.Piece{}); err != nil {
			return rec, err
		}
		if mv.Kind == board.SuicideCapture {
			if err := pos.Set(mv.From, board.Piece{}); err != nil {
				return rec, err
			}
		}
	case board.Combine:
		if err := pos.Set(mv.From, board.Piece{}); err != nil {
			return rec, err
		}
		if err := pos.Set(mv.To, mv.Piece); err != nil {
			return rec, err
		}
	default:
		return rec, fmt.Errorf("apply: unsupported move kind %v outside a deploy session", mv.Kind)
	}

	if mv.Piece.Type == board.Commander && (mv.Kind == board.Normal || mv.Kind == board.CaptureMove || mv.Kind == board.Combine) {
		pos.SetCommander(mv.Piece.Color, mv.To)
	}

	if mv.Piece.Color == board.Blue {
		pos.SetFullMoves(pos.FullMoves() + 1)
	}
	pos.SetTurn(pos.Turn().Opponent())

	logw.Debugf(ctx, "apply: resulting turn %v", pos.Turn())
	return rec, nil
}

// relocate performs the common "mover leaves From, lands on To" mutation, applying
// heroic promotion before writing the final piece, per spec.md section 4.1's promotion
// rules: a piece becomes heroic the move it gives check to the enemy commander, or the
// move that leaves the opponent with nothing but their commander.
func relocate(pos *board.Position, terr *terrain.Map, mv board.Move) error {
	mover := mv.Piece
	if err := pos.Set(mv.From, board.Piece{}); err != nil {
		return err
	}
	if err := pos.Set(mv.To, mover); err != nil {
		return err
	}

	if promotes(pos, terr, mv, mover) {
		mover.Heroic = true
		if err := pos.Set(mv.To, mover); err != nil {
			return err
		}
	}
	return nil
}

func promotes(pos *board.Position, terr *terrain.Map, mv board.Move, mover board.Piece) bool {
	if mover.Heroic {
		return false
	}
	enemy := mover.Color.Opponent()
	if givesCheck(pos, terr, mv.To, mover, enemy) {
		return true
	}
	return opponentDownToCommander(pos, enemy)
}

func givesCheck(pos *board.Position, terr *terrain.Map, from board.Square, mover board.Piece, enemy board.Color) bool {
	for _, mv := range movegen.GenerateFrom(pos, terr, from) {
		if mv.To == pos.Commander(enemy) {
			switch mv.Kind {
			case board.CaptureMove, board.StayCapture, board.SuicideCapture:
				return true
			}
		}
	}
	return false
}

func opponentDownToCommander(pos *board.Position, enemy board.Color) bool {
	for _, pl := range pos.AllPlacements() {
		if pl.Piece.Color != enemy {
			continue
		}
		for _, piece := range pl.Piece.Flatten() {
			if piece.Type != board.Commander {
				return false
			}
		}
	}
	return true
}
