// cotulenh-console is a line-oriented REPL over the engine facade, used during
// development to drive a game by hand: load a position, apply moves, inspect the board,
// and step through deploy sessions.
package main

import (
	"context"
	"flag"

	"github.com/mnoyd/cotulenh-engine/pkg/engine"
)

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "cotulenh")
	in := engine.ReadStdinLines(ctx)

	_, out := NewDriver(ctx, e, in)
	engine.WriteStdoutLines(ctx, out)
}
