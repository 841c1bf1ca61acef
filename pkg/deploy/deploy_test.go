package deploy_test

import (
	"context"
	"testing"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/deploy"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sq(f board.File, r int) board.Square {
	return board.NewSquare(f, board.Rank(r))
}

func stackedPosition(t *testing.T) (*board.Position, board.Square) {
	t.Helper()
	origin := sq(board.FileG, 3)
	stack := board.Piece{
		Type:     board.Tank,
		Color:    board.Red,
		Carrying: []board.Piece{{Type: board.Infantry, Color: board.Red}},
	}
	require.NoError(t, board.ValidateStack(stack))
	pos, err := board.NewPosition([]board.Placement{
		{Square: origin, Piece: stack},
		{Square: sq(board.FileA, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileK, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	return pos, origin
}

func TestDeployFullLifecycleCommit(t *testing.T) {
	pos, origin := stackedPosition(t)
	terr := terrain.NewMap()
	ctx := context.Background()

	require.NoError(t, deploy.Start(ctx, pos, board.Red, origin))
	require.NotNil(t, pos.Deploy())

	dest := sq(board.FileG, 4)
	require.NoError(t, deploy.Step(ctx, pos, terr, board.Tank, dest))
	require.NoError(t, deploy.Stay(ctx, pos, board.Infantry))

	assert.True(t, pos.Deploy().IsFullyAccountedFor())
	assert.True(t, deploy.CanCommit(ctx, pos, terr))

	require.NoError(t, deploy.Commit(ctx, pos, terr))
	assert.Nil(t, pos.Deploy())
	assert.Equal(t, board.Tank, pos.Get(dest).Type)
	assert.Equal(t, board.Infantry, pos.Get(origin).Type)
	assert.False(t, pos.Get(origin).IsStack())
	assert.Equal(t, board.Blue, pos.Turn())
}

func TestDeployCancelRestoresOriginalStack(t *testing.T) {
	pos, origin := stackedPosition(t)
	terr := terrain.NewMap()
	ctx := context.Background()

	require.NoError(t, deploy.Start(ctx, pos, board.Red, origin))
	dest := sq(board.FileG, 4)
	require.NoError(t, deploy.Step(ctx, pos, terr, board.Tank, dest))

	require.NoError(t, deploy.Cancel(ctx, pos))
	assert.Nil(t, pos.Deploy())
	assert.True(t, pos.IsEmpty(dest))
	restored := pos.Get(origin)
	assert.Equal(t, board.Tank, restored.Type)
	require.Len(t, restored.Carrying, 1)
	assert.Equal(t, board.Infantry, restored.Carrying[0].Type)
}

func TestDeployStartRejectsNonStack(t *testing.T) {
	origin := sq(board.FileG, 3)
	pos, err := board.NewPosition([]board.Placement{
		{Square: origin, Piece: board.Piece{Type: board.Tank, Color: board.Red}},
		{Square: sq(board.FileA, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileA, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, deploy.Start(context.Background(), pos, board.Red, origin), deploy.ErrNoStackHere)
}

func TestDeployCommitRejectsPartialAccounting(t *testing.T) {
	pos, origin := stackedPosition(t)
	terr := terrain.NewMap()
	ctx := context.Background()

	require.NoError(t, deploy.Start(ctx, pos, board.Red, origin))
	require.NoError(t, deploy.Step(ctx, pos, terr, board.Tank, sq(board.FileG, 4)))

	err := deploy.Commit(ctx, pos, terr)
	assert.Error(t, err)
}

func TestDeployStepRejectsUnknownPieceType(t *testing.T) {
	pos, origin := stackedPosition(t)
	terr := terrain.NewMap()
	ctx := context.Background()

	require.NoError(t, deploy.Start(ctx, pos, board.Red, origin))
	err := deploy.Step(ctx, pos, terr, board.Navy, sq(board.FileG, 4))
	assert.ErrorIs(t, err, deploy.ErrPieceNotAtOrigin)
}

func TestDeployStepUpdatesOriginImmediately(t *testing.T) {
	pos, origin := stackedPosition(t)
	terr := terrain.NewMap()
	ctx := context.Background()

	require.NoError(t, deploy.Start(ctx, pos, board.Red, origin))
	dest := sq(board.FileG, 4)
	require.NoError(t, deploy.Step(ctx, pos, terr, board.Tank, dest))

	// The Tank has left; Origin must show only the Infantry left behind, not a stale
	// duplicate of the original stack, and the Tank itself must appear only at dest.
	at := pos.Get(origin)
	assert.Equal(t, board.Infantry, at.Type)
	assert.False(t, at.IsStack())
	assert.Equal(t, board.Tank, pos.Get(dest).Type)
}

func TestDeployStayCaptureSurvivesCommit(t *testing.T) {
	origin := sq(board.FileB, 5)
	target := sq(board.FileC, 5)
	stack := board.Piece{
		Type:     board.Navy,
		Color:    board.Red,
		Carrying: []board.Piece{{Type: board.Infantry, Color: board.Red}},
	}
	require.NoError(t, board.ValidateStack(stack))
	pos, err := board.NewPosition([]board.Placement{
		{Square: origin, Piece: stack},
		{Square: target, Piece: board.Piece{Type: board.Infantry, Color: board.Blue}},
		{Square: sq(board.FileA, 0), Piece: board.Piece{Type: board.Commander, Color: board.Red}},
		{Square: sq(board.FileK, 11), Piece: board.Piece{Type: board.Commander, Color: board.Blue}},
	}, board.Red, 0, 1)
	require.NoError(t, err)
	terr := terrain.NewMap()
	ctx := context.Background()

	require.NoError(t, deploy.Start(ctx, pos, board.Red, origin))
	steps, err := deploy.LegalSteps(ctx, pos, terr, board.Navy)
	require.NoError(t, err)
	var found bool
	for _, mv := range steps {
		if mv.To == target {
			found = true
			assert.Equal(t, board.StayCapture, mv.Kind)
		}
	}
	require.True(t, found, "expected a stay-capture move against the coastal target")

	require.NoError(t, deploy.Step(ctx, pos, terr, board.Navy, target))
	require.NoError(t, deploy.Stay(ctx, pos, board.Infantry))
	require.NoError(t, deploy.Commit(ctx, pos, terr))

	assert.True(t, pos.IsEmpty(target))
	at := pos.Get(origin)
	assert.Equal(t, board.Navy, at.Type)
	require.Len(t, at.Carrying, 1)
	assert.Equal(t, board.Infantry, at.Carrying[0].Type)
}
