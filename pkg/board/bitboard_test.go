package board_test

import (
	"testing"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBitboardSetIsSet(t *testing.T) {
	var bb board.Bitboard
	sq := board.NewSquare(board.FileK, board.Rank(11))
	assert.False(t, bb.IsSet(sq))

	bb = bb.Set(sq)
	assert.True(t, bb.IsSet(sq))
	assert.Equal(t, 1, bb.PopCount())
}

func TestBitboardClearAndOr(t *testing.T) {
	a := board.EmptyBitboard.Set(board.NewSquare(board.FileA, 0))
	b := board.EmptyBitboard.Set(board.NewSquare(board.FileK, 11))

	u := a.Or(b)
	assert.Equal(t, 2, u.PopCount())

	u = u.Clear(board.NewSquare(board.FileA, 0))
	assert.Equal(t, 1, u.PopCount())
}

func TestBitboardSquaresCoversFullBoard(t *testing.T) {
	var bb board.Bitboard
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		bb = bb.Set(sq)
	}
	assert.Equal(t, int(board.NumSquares), bb.PopCount())
	assert.Len(t, bb.Squares(), int(board.NumSquares))
}
