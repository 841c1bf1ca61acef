package apply_test

import (
	"context"
	"testing"

	"github.com/mnoyd/cotulenh-engine/pkg/apply"
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(f board.File, r int) board.Square {
	return board.NewSquare(f, board.Rank(r))
}

func TestApplyNormalMoveAndUndo(t *testing.T) {
	from := sq(board.FileF, 0)
	to := sq(board.FileE, 0)
	pos, err := board.NewPosition([]board.Placement{
		{Square: from, Piece: board.Piece{Type: board.Infantry, Color: board.Red}},
		{Square: sq(board.FileF, 1), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileF, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	mv := board.Move{Kind: board.Normal, From: from, To: to, Piece: pos.Get(from)}
	rec, err := apply.Apply(context.Background(), pos, terr, mv)
	require.NoError(t, err)

	assert.True(t, pos.IsEmpty(from))
	assert.Equal(t, board.Infantry, pos.Get(to).Type)
	assert.Equal(t, board.Blue, pos.Turn())

	require.NoError(t, apply.Undo(context.Background(), pos, rec))
	assert.True(t, pos.IsEmpty(to))
	assert.Equal(t, board.Infantry, pos.Get(from).Type)
	assert.Equal(t, board.Red, pos.Turn())
}

func TestApplyCaptureRemovesDefender(t *testing.T) {
	from := sq(board.FileF, 0)
	to := sq(board.FileE, 0)
	pos, err := board.NewPosition([]board.Placement{
		{Square: from, Piece: board.Piece{Type: board.Infantry, Color: board.Red}},
		{Square: to, Piece: board.Piece{Type: board.Infantry, Color: board.Blue}},
		{Square: sq(board.FileF, 1), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileF, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	mv := board.Move{Kind: board.CaptureMove, From: from, To: to, Piece: pos.Get(from), Capture: pos.Get(to)}
	rec, err := apply.Apply(context.Background(), pos, terr, mv)
	require.NoError(t, err)
	assert.Equal(t, board.Red, pos.Get(to).Color)

	require.NoError(t, apply.Undo(context.Background(), pos, rec))
	assert.Equal(t, board.Blue, pos.Get(to).Color)
	assert.Equal(t, board.Red, pos.Get(from).Color)
}

func TestApplyStayCaptureRemovesDefenderButAttackerStays(t *testing.T) {
	attackerSq := sq(board.FileB, 5) // water
	targetSq := sq(board.FileC, 5)   // coastal land
	pos, err := board.NewPosition([]board.Placement{
		{Square: attackerSq, Piece: board.Piece{Type: board.Navy, Color: board.Red}},
		{Square: targetSq, Piece: board.Piece{Type: board.Infantry, Color: board.Blue}},
		{Square: sq(board.FileA, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileA, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	mv := board.Move{Kind: board.StayCapture, From: attackerSq, To: targetSq, Piece: pos.Get(attackerSq), Capture: pos.Get(targetSq)}
	rec, err := apply.Apply(context.Background(), pos, terr, mv)
	require.NoError(t, err)

	assert.True(t, pos.IsEmpty(targetSq))
	assert.Equal(t, board.Navy, pos.Get(attackerSq).Type)

	require.NoError(t, apply.Undo(context.Background(), pos, rec))
	assert.Equal(t, board.Infantry, pos.Get(targetSq).Type)
	assert.Equal(t, board.Navy, pos.Get(attackerSq).Type)
}

func TestApplySuicideCaptureRemovesBothPieces(t *testing.T) {
	attackerSq := sq(board.FileF, 3)
	targetSq := sq(board.FileF, 5)
	pos, err := board.NewPosition([]board.Placement{
		{Square: attackerSq, Piece: board.Piece{Type: board.AirForce, Color: board.Red}},
		{Square: targetSq, Piece: board.Piece{Type: board.Infantry, Color: board.Blue}},
		{Square: sq(board.FileA, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileA, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	mv := board.Move{Kind: board.SuicideCapture, From: attackerSq, To: targetSq, Piece: pos.Get(attackerSq), Capture: pos.Get(targetSq)}
	rec, err := apply.Apply(context.Background(), pos, terr, mv)
	require.NoError(t, err)

	assert.True(t, pos.IsEmpty(targetSq))
	assert.True(t, pos.IsEmpty(attackerSq))

	require.NoError(t, apply.Undo(context.Background(), pos, rec))
	assert.Equal(t, board.AirForce, pos.Get(attackerSq).Type)
	assert.Equal(t, board.Infantry, pos.Get(targetSq).Type)
}

func TestApplyPromotesOnGivingCheck(t *testing.T) {
	redCmd := sq(board.FileF, 0)
	blueCmd := sq(board.FileH, 11)
	from := sq(board.FileH, 5)
	to := sq(board.FileH, 10)
	pos, err := board.NewPosition([]board.Placement{
		{Square: redCmd, Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: blueCmd, Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
		{Square: from, Piece: board.Piece{Type: board.Artillery, Color: board.Red}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	mv := board.Move{Kind: board.Normal, From: from, To: to, Piece: pos.Get(from)}
	_, err = apply.Apply(context.Background(), pos, terr, mv)
	require.NoError(t, err)

	assert.True(t, pos.Get(to).Heroic, "artillery delivering check should be promoted to heroic")
}

func TestApplyPromotesWhenOpponentDownToCommander(t *testing.T) {
	redCmd := sq(board.FileF, 0)
	blueCmd := sq(board.FileF, 11)
	attacker := sq(board.FileG, 5)
	lastBluePiece := sq(board.FileG, 6)
	pos, err := board.NewPosition([]board.Placement{
		{Square: redCmd, Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: blueCmd, Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
		{Square: attacker, Piece: board.Piece{Type: board.Infantry, Color: board.Red}},
		{Square: lastBluePiece, Piece: board.Piece{Type: board.Infantry, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	mv := board.Move{Kind: board.CaptureMove, From: attacker, To: lastBluePiece, Piece: pos.Get(attacker), Capture: pos.Get(lastBluePiece)}
	_, err = apply.Apply(context.Background(), pos, terr, mv)
	require.NoError(t, err)

	assert.True(t, pos.Get(lastBluePiece).Heroic, "capturing the opponent's last non-commander piece should promote the capturer")
}

func TestApplyCombineBuildsStack(t *testing.T) {
	from := sq(board.FileD, 3)
	to := sq(board.FileD, 4)
	pos, err := board.NewPosition([]board.Placement{
		{Square: from, Piece: board.Piece{Type: board.Tank, Color: board.Red}},
		{Square: to, Piece: board.Piece{Type: board.Infantry, Color: board.Red}},
		{Square: sq(board.FileA, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileA, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()

	stack := board.Piece{Type: board.Tank, Color: board.Red, Carrying: []board.Piece{{Type: board.Infantry, Color: board.Red}}}
	require.NoError(t, board.ValidateStack(stack))
	mv := board.Move{Kind: board.Combine, From: from, To: to, Piece: stack}

	rec, err := apply.Apply(context.Background(), pos, terr, mv)
	require.NoError(t, err)
	assert.True(t, pos.IsEmpty(from))
	assert.True(t, pos.Get(to).IsStack())

	require.NoError(t, apply.Undo(context.Background(), pos, rec))
	assert.Equal(t, board.Tank, pos.Get(from).Type)
	assert.Equal(t, board.Infantry, pos.Get(to).Type)
}

func TestApplyFullMoveCounterIncrementsAfterBlue(t *testing.T) {
	from := sq(board.FileF, 11)
	to := sq(board.FileE, 11)
	pos, err := board.NewPosition([]board.Placement{
		{Square: sq(board.FileF, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: from, Piece: board.Piece{Type: board.Infantry, Color: board.Blue}},
	}, board.Blue, 0, 3)
	require.NoError(t, err)
	terr := terrain.NewMap()

	mv := board.Move{Kind: board.Normal, From: from, To: to, Piece: pos.Get(from)}
	_, err = apply.Apply(context.Background(), pos, terr, mv)
	require.NoError(t, err)

	assert.Equal(t, 4, pos.FullMoves())
	assert.Equal(t, board.Red, pos.Turn())
}
