// Package engine implements the public facade described in spec.md section 6: a
// single-writer rules engine over one game at a time, wrapping pkg/board, pkg/movegen,
// pkg/legality, pkg/apply, pkg/deploy, and pkg/status behind typed errors and structured
// logging.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/mnoyd/cotulenh-engine/pkg/apply"
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/board/fen"
	"github.com/mnoyd/cotulenh-engine/pkg/board/san"
	"github.com/mnoyd/cotulenh-engine/pkg/deploy"
	"github.com/mnoyd/cotulenh-engine/pkg/legality"
	"github.com/mnoyd/cotulenh-engine/pkg/movegen"
	"github.com/mnoyd/cotulenh-engine/pkg/status"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Engine holds one game's state and serializes every mutation behind a mutex, matching
// spec.md section 5's single-writer concurrency model.
type Engine struct {
	name string

	terr *terrain.Map
	zt   *board.ZobristTable
	seed int64

	pos     *board.Position
	history []entry

	mu sync.Mutex
}

// New creates an engine starting from the canonical opening position.
func New(ctx context.Context, name string, opts ...Option) *Engine {
	e := &Engine{
		name: name,
		terr: terrain.NewMap(),
	}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)

	if err := e.newGame(ctx, lang.None[string]()); err != nil {
		panic(err) // fen.Initial is a constant; a decode failure here is a programming error.
	}

	logw.Infof(ctx, "initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// NewGame resets the engine to the given FEN, or the canonical opening position if absent.
func (e *Engine) NewGame(ctx context.Context, position lang.Optional[string]) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.newGame(ctx, position)
}

func (e *Engine) newGame(ctx context.Context, position lang.Optional[string]) error {
	record := fen.Initial
	if v, ok := position.V(); ok {
		record = v
	}

	logw.Infof(ctx, "new game: %v", record)

	pos, err := fen.Decode(record)
	if err != nil {
		return newError(InvalidFEN, record, err)
	}
	e.pos = pos
	e.history = nil
	return nil
}

// Fen returns the current position encoded as FEN.
func (e *Engine) Fen() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos)
}

// Board returns a deep copy of the current position, safe for the caller to inspect or
// mutate without affecting the engine.
func (e *Engine) Board() *board.Position {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.Clone()
}

// Turn returns the side to move.
func (e *Engine) Turn() board.Color {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.Turn()
}

// LegalMoves returns the legal moves for the side to move, or only those originating from
// `from` if present.
func (e *Engine) LegalMoves(ctx context.Context, from lang.Optional[board.Square]) []board.Move {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.legalMoves(ctx, from)
}

func (e *Engine) legalMoves(ctx context.Context, from lang.Optional[board.Square]) []board.Move {
	var pseudo []board.Move
	if sq, ok := from.V(); ok {
		pseudo = movegen.GenerateFrom(e.pos, e.terr, sq)
	} else {
		pseudo = movegen.GenerateAll(e.pos, e.terr, e.pos.Turn())
	}
	return legality.Filter(ctx, e.pos, e.terr, pseudo)
}

// Apply plays a move given in SAN against the current position.
func (e *Engine) Apply(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "apply %v", move)

	mv, err := san.Decode(ctx, move, e.pos, e.terr)
	if err != nil {
		return newError(IllegalMove, move, err)
	}

	rec, err := apply.Apply(ctx, e.pos, e.terr, mv)
	if err != nil {
		return newError(IllegalMove, move, err)
	}
	e.history = append(e.history, entry{move: mv, undo: rec})
	return nil
}

// Undo reverses the most recently applied move.
func (e *Engine) Undo(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return newError(IllegalMove, "undo", fmt.Errorf("no move to undo"))
	}
	last := e.history[len(e.history)-1]
	if err := apply.Undo(ctx, e.pos, last.undo); err != nil {
		return newError(IllegalMove, "undo", err)
	}
	e.history = e.history[:len(e.history)-1]
	return nil
}

// History returns every move applied since the current game began.
func (e *Engine) History() History {
	e.mu.Lock()
	defer e.mu.Unlock()

	ret := make(History, len(e.history))
	for i, en := range e.history {
		ret[i] = en.move
	}
	return ret
}

// StartDeploy begins a deploy session on the stack standing at sq.
func (e *Engine) StartDeploy(ctx context.Context, sq board.Square) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pos.Deploy() != nil {
		return newError(DeployAlreadyActive, sq.String(), nil)
	}
	if err := deploy.Start(ctx, e.pos, e.pos.Turn(), sq); err != nil {
		return newError(NoStackHere, sq.String(), err)
	}
	return nil
}

// DeploySession returns the active deploy session, or nil.
func (e *Engine) DeploySession() *board.DeploySession {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pos.Deploy().Clone()
}

// DeployStep moves the remaining piece of type t, within the active deploy session, to dest.
func (e *Engine) DeployStep(ctx context.Context, t board.PieceType, dest board.Square) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := deploy.Step(ctx, e.pos, e.terr, t, dest); err != nil {
		return newError(IllegalMove, dest.String(), err)
	}
	return nil
}

// DeployStay declares that the remaining piece of type t stays at the deploy origin.
func (e *Engine) DeployStay(ctx context.Context, t board.PieceType) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := deploy.Stay(ctx, e.pos, t); err != nil {
		return newError(IllegalMove, t.String(), err)
	}
	return nil
}

// CanCommitDeploy reports whether the active session is complete and safe to commit.
func (e *Engine) CanCommitDeploy(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return deploy.CanCommit(ctx, e.pos, e.terr)
}

// CommitDeploy finalizes the active deploy session and passes the turn.
func (e *Engine) CommitDeploy(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := deploy.Commit(ctx, e.pos, e.terr); err != nil {
		return newError(IllegalDeployCommit, "commit", err)
	}
	return nil
}

// CancelDeploy aborts the active deploy session, restoring the stack to its origin.
func (e *Engine) CancelDeploy(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := deploy.Cancel(ctx, e.pos); err != nil {
		return newError(NoActiveDeploy, "cancel", err)
	}
	return nil
}

// Status returns the termination status of the current position.
func (e *Engine) Status(ctx context.Context) status.Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	legal := e.legalMoves(ctx, lang.None[board.Square]())
	return status.Of(e.pos, e.terr, legal)
}
