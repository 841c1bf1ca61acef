// Package deploy orchestrates the multi-step stack-dispersion sequence described in
// spec.md section 4.6: a carrier and its passengers leave their shared square one at a
// time, each either moving to its own destination or declaring it is staying put, until
// every piece in the original stack is accounted for and the side commits or cancels.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/movegen"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
	"github.com/seekerror/logw"
)

var (
	ErrNoStackHere          = errors.New("no stack to deploy on that square")
	ErrDeployAlreadyActive  = errors.New("a deploy session is already active")
	ErrNoActiveDeploy       = errors.New("no active deploy session")
	ErrPieceNotAtOrigin     = errors.New("piece is not part of the remaining stack")
	ErrIllegalDeployStep    = errors.New("illegal deploy step")
	ErrIllegalDeployCommit  = errors.New("committing would leave the commander unsafe")
)

// Start begins a deploy session on the stack at sq, which must belong to color `side` and
// carry at least one passenger.
func Start(ctx context.Context, pos *board.Position, side board.Color, sq board.Square) error {
	if pos.Deploy() != nil {
		return ErrDeployAlreadyActive
	}
	stack := pos.Get(sq)
	if stack.IsZero() || stack.Color != side || !stack.IsStack() {
		return ErrNoStackHere
	}

	composition := stack.Flatten()
	pos.SetDeploy(&board.DeploySession{
		Origin:              sq,
		OriginalComposition: composition,
		Remaining:           append([]board.Piece(nil), composition...),
	})
	logw.Infof(ctx, "deploy: started at %v with %v pieces", sq, len(composition))
	return nil
}

// virtualPosition clones pos with the origin square holding only `piece`, so movegen sees
// that single piece moving in isolation while the rest of the board stays put.
func virtualPosition(pos *board.Position, origin board.Square, piece board.Piece) *board.Position {
	clone := pos.Clone()
	_ = clone.Set(origin, board.Piece{Type: piece.Type, Color: piece.Color, Heroic: piece.Heroic})
	return clone
}

// LegalSteps returns the legal destinations for the remaining piece of type t, computed
// on a virtual board where it alone occupies the origin square.
func LegalSteps(ctx context.Context, pos *board.Position, terr *terrain.Map, t board.PieceType) ([]board.Move, error) {
	s := pos.Deploy()
	if s == nil {
		return nil, ErrNoActiveDeploy
	}
	idx := s.RemainingIndex(t)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %v", ErrPieceNotAtOrigin, t)
	}
	piece := s.Remaining[idx]
	vp := virtualPosition(pos, s.Origin, piece)
	return movegen.GenerateFrom(vp, terr, s.Origin), nil
}

// Step moves the remaining piece of type t to dest, recording the step in the session.
// Legality (commander safety) is deferred to Commit, which validates the final position.
func Step(ctx context.Context, pos *board.Position, terr *terrain.Map, t board.PieceType, dest board.Square) error {
	s := pos.Deploy()
	if s == nil {
		return ErrNoActiveDeploy
	}
	idx := s.RemainingIndex(t)
	if idx < 0 {
		return fmt.Errorf("%w: %v", ErrPieceNotAtOrigin, t)
	}
	piece := s.Remaining[idx]

	steps, err := LegalSteps(ctx, pos, terr, t)
	if err != nil {
		return err
	}
	var chosen *board.Move
	for i := range steps {
		if steps[i].To == dest {
			chosen = &steps[i]
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("%w: %v has no move to %v", ErrIllegalDeployStep, t, dest)
	}

	entry := board.DeployMovedEntry{Piece: piece, Dest: dest}
	captured := pos.Get(dest)
	if chosen.Kind == board.CaptureMove || chosen.Kind == board.StayCapture || chosen.Kind == board.SuicideCapture {
		entry.Captured = captured
		entry.HasCapture = true
	}
	switch chosen.Kind {
	case board.StayCapture:
		// The attacker fires on dest but never leaves Origin.
		entry.StaysAtOrigin = true
		if err := pos.Set(dest, board.Piece{}); err != nil {
			return err
		}
	case board.SuicideCapture:
		// Both attacker and victim are destroyed; dest ends up empty, same as apply.Apply.
		if err := pos.Set(dest, board.Piece{}); err != nil {
			return err
		}
	default:
		if err := pos.Set(dest, piece); err != nil {
			return err
		}
		if piece.Type == board.Commander {
			pos.SetCommander(piece.Color, dest)
		}
	}

	s.Remaining = append(s.Remaining[:idx], s.Remaining[idx+1:]...)
	s.Moved = append(s.Moved, entry)
	s.HasMoved = true
	if err := refreshOrigin(pos, s); err != nil {
		return err
	}
	logw.Infof(ctx, "deploy: %v steps %v -> %v", t, s.Origin, dest)
	return nil
}

// Stay declares that the remaining piece of type t will not move and stays at the origin.
func Stay(ctx context.Context, pos *board.Position, t board.PieceType) error {
	s := pos.Deploy()
	if s == nil {
		return ErrNoActiveDeploy
	}
	idx := s.RemainingIndex(t)
	if idx < 0 {
		return fmt.Errorf("%w: %v", ErrPieceNotAtOrigin, t)
	}
	piece := s.Remaining[idx]
	s.Remaining = append(s.Remaining[:idx], s.Remaining[idx+1:]...)
	s.Staying = append(s.Staying, piece)
	logw.Infof(ctx, "deploy: %v stays at %v", t, s.Origin)
	return nil
}

// CanCommit reports whether every piece in the stack has been accounted for and the
// resulting position would leave the mover's commander safe.
func CanCommit(ctx context.Context, pos *board.Position, terr *terrain.Map) bool {
	s := pos.Deploy()
	if s == nil || !s.IsFullyAccountedFor() {
		return false
	}
	side := s.OriginalComposition[0].Color
	return !movegen.IsAttacked(pos, terr, pos.Commander(side), side.Opponent())
}

// Commit finalizes the session: the origin square holds whatever pieces never left it —
// explicit stays plus stay-captures — rebuilt as a carrier stack if more than one, a lone
// piece otherwise, or cleared if nothing remains. The turn passes and the session clears.
func Commit(ctx context.Context, pos *board.Position, terr *terrain.Map) error {
	s := pos.Deploy()
	if s == nil {
		return ErrNoActiveDeploy
	}
	if !s.IsFullyAccountedFor() {
		return fmt.Errorf("%w: pieces remain undecided at %v", ErrIllegalDeployStep, s.Origin)
	}
	if !CanCommit(ctx, pos, terr) {
		return ErrIllegalDeployCommit
	}

	if err := refreshOrigin(pos, s); err != nil {
		return err
	}
	pos.SetDeploy(nil)
	pos.SetTurn(pos.Turn().Opponent())
	if pos.Turn() == board.Red {
		pos.SetFullMoves(pos.FullMoves() + 1)
	}
	logw.Infof(ctx, "deploy: committed from %v", s.Origin)
	return nil
}

// originPieces returns the pieces of the original composition that are still physically
// standing on Origin: undecided, explicitly staying, or stay-captured in place. Order
// follows OriginalComposition, so the carrier (always first there) sorts first here too
// as long as it hasn't itself stepped away.
func originPieces(s *board.DeploySession) []board.Piece {
	present := make(map[board.PieceType]board.Piece, len(s.OriginalComposition))
	for _, p := range s.Remaining {
		present[p.Type] = p
	}
	for _, p := range s.Staying {
		present[p.Type] = p
	}
	for _, m := range s.Moved {
		if m.StaysAtOrigin {
			present[m.Piece.Type] = m.Piece
		}
	}
	var ordered []board.Piece
	for _, p := range s.OriginalComposition {
		if found, ok := present[p.Type]; ok {
			ordered = append(ordered, found)
		}
	}
	return ordered
}

// stackFrom builds the single board.Piece standing for pieces together on one square: the
// zero piece if empty, the lone piece if one, otherwise a validated carrier stack with
// pieces[0] as carrier.
func stackFrom(pieces []board.Piece) (board.Piece, error) {
	if len(pieces) == 0 {
		return board.Piece{}, nil
	}
	carrier := pieces[0]
	carrier.Carrying = nil
	for _, p := range pieces[1:] {
		carrier.Carrying = append(carrier.Carrying, board.Piece{Type: p.Type, Color: p.Color, Heroic: p.Heroic})
	}
	if err := board.ValidateStack(carrier); err != nil {
		return board.Piece{}, err
	}
	return carrier, nil
}

// refreshOrigin rewrites Origin's physical piece to match whatever of the original
// composition hasn't actually left yet, so the board reflects the session mid-deploy
// instead of only once it is committed.
func refreshOrigin(pos *board.Position, s *board.DeploySession) error {
	piece, err := stackFrom(originPieces(s))
	if err != nil {
		return err
	}
	if err := pos.Set(s.Origin, piece); err != nil {
		return err
	}
	if piece.Type == board.Commander {
		pos.SetCommander(piece.Color, s.Origin)
	}
	return nil
}

// Cancel reverses every step taken so far and restores the stack at its origin, aborting
// the session atomically.
func Cancel(ctx context.Context, pos *board.Position) error {
	s := pos.Deploy()
	if s == nil {
		return ErrNoActiveDeploy
	}
	for i := len(s.Moved) - 1; i >= 0; i-- {
		m := s.Moved[i]
		if err := pos.Set(m.Dest, m.Captured); err != nil {
			return err
		}
		if m.Piece.Type == board.Commander {
			pos.SetCommander(m.Piece.Color, s.Origin)
		}
	}
	carrier := s.OriginalComposition[0]
	carrier.Carrying = append([]board.Piece(nil), s.OriginalComposition[1:]...)
	if err := pos.Set(s.Origin, carrier); err != nil {
		return err
	}
	pos.SetDeploy(nil)
	logw.Infof(ctx, "deploy: cancelled at %v", s.Origin)
	return nil
}
