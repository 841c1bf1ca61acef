package movegen

import (
	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// Slide generates direct movement and blocked captures/combines for a piece that moves
// along dirs up to moveRange squares, stopping at the first occupied square or the first
// square its own terrain rules forbid it from entering. This covers every piece whose
// attack range equals its movement range and does not ignore blockers.
func Slide(pos *board.Position, from board.Square, mover board.Piece, dirs []Direction, moveRange int, movePassable func(board.Square) bool, heavy bool) []board.Move {
	var moves []board.Move
	for _, dir := range dirs {
		for _, sq := range Ray(from, dir, moveRange) {
			if heavy && terrain.NeedsBridge(from, sq) && !terrain.AllowsHeavyCrossing(sq.File()) {
				break
			}
			if !movePassable(sq) {
				break
			}
			target := pos.Get(sq)
			if target.IsZero() {
				moves = append(moves, board.Move{Kind: board.Normal, From: from, To: sq, Piece: mover})
				continue
			}
			if target.Color == mover.Color {
				if mv, ok := tryCombine(from, sq, mover, target); ok {
					moves = append(moves, mv)
				}
				break
			}
			moves = append(moves, board.Move{Kind: board.CaptureMove, From: from, To: sq, Piece: mover, Capture: target})
			break
		}
	}
	return moves
}

// MoveOnly generates direct movement and combines for a piece whose captures are handled
// separately by RangedAttack (Artillery, Missile, Tank, Navy): it stops at the first
// occupied square without ever generating a CaptureMove there.
func MoveOnly(pos *board.Position, from board.Square, mover board.Piece, dirs []Direction, moveRange int, movePassable func(board.Square) bool, heavy bool) []board.Move {
	var moves []board.Move
	for _, dir := range dirs {
		for _, sq := range Ray(from, dir, moveRange) {
			if heavy && terrain.NeedsBridge(from, sq) && !terrain.AllowsHeavyCrossing(sq.File()) {
				break
			}
			if !movePassable(sq) {
				break
			}
			target := pos.Get(sq)
			if target.IsZero() {
				moves = append(moves, board.Move{Kind: board.Normal, From: from, To: sq, Piece: mover})
				continue
			}
			if target.Color == mover.Color {
				if mv, ok := tryCombine(from, sq, mover, target); ok {
					moves = append(moves, mv)
				}
			}
			break
		}
	}
	return moves
}

// RangedAttack generates capture-only moves for a piece whose attack ignores blockers
// along its ray (Tank shoot-over, Artillery/Missile indirect fire, Navy's orthogonal
// bombardment). Every enemy within range along each direction is a candidate, regardless
// of what else sits between. If the mover's own terrain rules forbid standing on the
// target square, the capture becomes a StayCapture instead of a CaptureMove, per
// spec.md's Artillery/Navy water-vs-land rules.
func RangedAttack(pos *board.Position, from board.Square, mover board.Piece, dirs []Direction, attackRange int, movePassable func(board.Square) bool, ignoreTerrain bool, terrainGate func(board.Square) bool, extraFilter func(board.Square) bool) []board.Move {
	var moves []board.Move
	for _, dir := range dirs {
		for _, sq := range Ray(from, dir, attackRange) {
			if !ignoreTerrain && !terrainGate(sq) {
				break
			}
			target := pos.Get(sq)
			if target.IsZero() || target.Color == mover.Color {
				continue
			}
			if extraFilter != nil && !extraFilter(sq) {
				continue
			}
			kind := board.CaptureMove
			if !movePassable(sq) {
				kind = board.StayCapture
			}
			moves = append(moves, board.Move{Kind: kind, From: from, To: sq, Piece: mover, Capture: target, Flags: board.FlagIgnoresBlockers})
		}
	}
	return moves
}
