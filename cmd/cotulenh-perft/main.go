// cotulenh-perft is a move generator regression tool: it counts leaf positions reachable
// at a given depth, exercising move generation, application, and undo. The walk itself
// applies and undoes in place, like real play; legality.Filter still simulates each
// candidate on a clone.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/mnoyd/cotulenh-engine/pkg/apply"
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/board/fen"
	"github.com/mnoyd/cotulenh-engine/pkg/legality"
	"github.com/mnoyd/cotulenh-engine/pkg/movegen"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 3, "search depth")
	position = flag.String("fen", "", "start position (default to the opening position)")
	divide   = flag.Bool("divide", false, "print node counts per root move at the final depth")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	record := *position
	if record == "" {
		record = fen.Initial
	}

	pos, err := fen.Decode(record)
	if err != nil {
		logw.Exitf(ctx, "invalid fen %q: %v", record, err)
	}
	terr := terrain.NewMap()

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(ctx, pos, terr, i, *divide && i == *depth)
		elapsed := time.Since(start)
		fmt.Printf("perft,%v,%v,%v,%v\n", record, i, nodes, elapsed.Microseconds())
	}
}

func perft(ctx context.Context, pos *board.Position, terr *terrain.Map, depth int, divide bool) int64 {
	if depth == 0 {
		return 1
	}

	pseudo := movegen.GenerateAll(pos, terr, pos.Turn())
	legal := legality.Filter(ctx, pos, terr, pseudo)

	var nodes int64
	for _, mv := range legal {
		rec, err := apply.Apply(ctx, pos, terr, mv)
		if err != nil {
			logw.Exitf(ctx, "perft: apply failed for %v: %v", mv, err)
		}
		count := perft(ctx, pos, terr, depth-1, false)
		if err := apply.Undo(ctx, pos, rec); err != nil {
			logw.Exitf(ctx, "perft: undo failed for %v: %v", mv, err)
		}

		if divide {
			fmt.Printf("%v: %v\n", mv, count)
		}
		nodes += count
	}
	return nodes
}
