package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Driver pumps lines from in to the engine facade and writes replies to its own output
// channel, closing itself once the input stream ends.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine
}

// NewDriver starts the REPL loop over in and returns the driver and its output channel.
func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
	}
	go d.process(ctx, in, out)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string, out chan<- string) {
	defer d.Close()
	defer close(out)

	out <- d.e.Name()

	for line := range in {
		reply := d.dispatch(ctx, line)
		if reply != "" {
			out <- reply
		}
	}
	logw.Infof(ctx, "cotulenh-console: input stream closed, exiting")
}

func (d *Driver) dispatch(ctx context.Context, line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "fen":
		if len(fields) > 1 {
			if err := d.e.NewGame(ctx, lang.Some(strings.Join(fields[1:], " "))); err != nil {
				return err.Error()
			}
			return ""
		}
		return d.e.Fen()

	case "board":
		return d.e.Board().String()

	case "move":
		if len(fields) != 2 {
			return "usage: move <san>"
		}
		if err := d.e.Apply(ctx, fields[1]); err != nil {
			return err.Error()
		}
		return d.e.Fen()

	case "undo":
		if err := d.e.Undo(ctx); err != nil {
			return err.Error()
		}
		return d.e.Fen()

	case "moves":
		var from lang.Optional[board.Square]
		if len(fields) == 2 {
			sq, err := board.ParseSquareStr(fields[1])
			if err != nil {
				return err.Error()
			}
			from = lang.Some(sq)
		}
		var sb strings.Builder
		for _, mv := range d.e.LegalMoves(ctx, from) {
			sb.WriteString(mv.String())
			sb.WriteByte(' ')
		}
		return sb.String()

	case "deploy":
		return d.dispatchDeploy(ctx, fields[1:])

	case "status":
		return d.e.Status(ctx).String()

	case "quit":
		logw.Exitf(ctx, "cotulenh-console exited")
		return ""

	default:
		return fmt.Sprintf("unknown command: %v", fields[0])
	}
}

func (d *Driver) dispatchDeploy(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "usage: deploy start <sq> | step <type> <sq> | stay <type> | commit | cancel"
	}
	switch args[0] {
	case "start":
		if len(args) != 2 {
			return "usage: deploy start <sq>"
		}
		sq, err := board.ParseSquareStr(args[1])
		if err != nil {
			return err.Error()
		}
		if err := d.e.StartDeploy(ctx, sq); err != nil {
			return err.Error()
		}
		return ""
	case "step":
		if len(args) != 3 {
			return "usage: deploy step <type> <sq>"
		}
		t, ok := board.ParsePieceType(rune(args[1][0]))
		if !ok {
			return "invalid piece type"
		}
		sq, err := board.ParseSquareStr(args[2])
		if err != nil {
			return err.Error()
		}
		if err := d.e.DeployStep(ctx, t, sq); err != nil {
			return err.Error()
		}
		return ""
	case "stay":
		if len(args) != 2 {
			return "usage: deploy stay <type>"
		}
		t, ok := board.ParsePieceType(rune(args[1][0]))
		if !ok {
			return "invalid piece type"
		}
		if err := d.e.DeployStay(ctx, t); err != nil {
			return err.Error()
		}
		return ""
	case "commit":
		if err := d.e.CommitDeploy(ctx); err != nil {
			return err.Error()
		}
		return d.e.Fen()
	case "cancel":
		if err := d.e.CancelDeploy(ctx); err != nil {
			return err.Error()
		}
		return d.e.Fen()
	default:
		return fmt.Sprintf("unknown deploy subcommand: %v", args[0])
	}
}
