package status_test

import (
	"context"
	"testing"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/legality"
	"github.com/mnoyd/cotulenh-engine/pkg/movegen"
	"github.com/mnoyd/cotulenh-engine/pkg/status"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(f board.File, r int) board.Square {
	return board.NewSquare(f, board.Rank(r))
}

func legalMovesFor(t *testing.T, pos *board.Position, terr *terrain.Map, side board.Color) []board.Move {
	t.Helper()
	return legality.Filter(context.Background(), pos, terr, movegen.GenerateAll(pos, terr, side))
}

func TestStatusOngoing(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq(board.FileA, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileK, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
		{Square: sq(board.FileD, 3), Piece: board.Piece{Type: board.Infantry, Color: board.Red}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	moves := legalMovesFor(t, pos, terr, board.Red)
	assert.Equal(t, status.Ongoing, status.Of(pos, terr, moves))
}

func TestStatusCheck(t *testing.T) {
	redCmd := sq(board.FileF, 0)
	blueAttacker := sq(board.FileF, 11)
	pos, err := board.NewPosition([]board.Placement{
		{Square: redCmd, Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: blueAttacker, Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
		{Square: sq(board.FileA, 3), Piece: board.Piece{Type: board.Infantry, Color: board.Red}},
	}, board.Blue, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	pos.SetTurn(board.Red)
	redMoves := legalMovesFor(t, pos, terr, board.Red)
	assert.Equal(t, status.Check, status.Of(pos, terr, redMoves))
}

func TestStatusStalemateWhenNoLegalMoves(t *testing.T) {
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq(board.FileA, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileK, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	assert.Equal(t, status.Stalemate, status.Of(pos, terr, nil))
}
