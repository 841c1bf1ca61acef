// Package terrain computes the static terrain classification of the board and the
// derived air-defense zones, per spec.md sections 3 and 4.2.
package terrain

import "github.com/mnoyd/cotulenh-engine/pkg/board"

// Class is the terrain classification of a square.
type Class uint8

const (
	Land Class = iota
	Water
	Mixed
	Bridge
)

func (c Class) String() string {
	switch c {
	case Land:
		return "land"
	case Water:
		return "water"
	case Mixed:
		return "mixed"
	case Bridge:
		return "bridge"
	default:
		return "?"
	}
}

// Map is a precomputed terrain classification for every square, built once.
type Map struct {
	class [board.NumSquares]Class
}

// NewMap builds the terrain map from the static layout in spec.md section 3.
func NewMap() *Map {
	m := &Map{}
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		m.class[sq] = classify(sq.File(), sq.Rank())
	}
	return m
}

func classify(f board.File, r board.Rank) Class {
	if isBridgeSquare(f, r) {
		return Bridge
	}
	if isMixedSquare(f, r) {
		return Mixed
	}
	if f == board.FileA || f == board.FileB {
		return Water
	}
	return Land
}

func isMixedSquare(f board.File, r board.Rank) bool {
	return (f == board.FileD || f == board.FileE) && (r == rank6 || r == rank7)
}

func isBridgeSquare(f board.File, r board.Rank) bool {
	return (f == board.FileF || f == board.FileH) && (r == rank6 || r == rank7)
}

const (
	rank6 board.Rank = 5 // 0-indexed rank6
	rank7 board.Rank = 6 // 0-indexed rank7
)

func (m *Map) ClassOf(sq board.Square) Class {
	return m.class[sq]
}

func (m *Map) IsWater(sq board.Square) bool {
	return m.class[sq] == Water
}

func (m *Map) IsLand(sq board.Square) bool {
	return m.class[sq] == Land
}

func (m *Map) IsMixed(sq board.Square) bool {
	return m.class[sq] == Mixed
}

func (m *Map) IsBridge(sq board.Square) bool {
	return m.class[sq] == Bridge
}

// NavyPassable returns true iff a Navy piece (or stack carried by Navy) may occupy sq.
func (m *Map) NavyPassable(sq board.Square) bool {
	c := m.class[sq]
	return c == Water || c == Mixed || c == Bridge
}

// LandPassable returns true iff a land piece (anything but Navy/Air Force) may occupy sq.
func (m *Map) LandPassable(sq board.Square) bool {
	c := m.class[sq]
	return c == Land || c == Mixed || c == Bridge
}

// NeedsBridge returns true iff moving between from and to, along the same file, crosses
// the rank-6/rank-7 boundary -- the crossing heavy pieces (Artillery, Missile, Anti-Air)
// may only make through a Bridge square (spec.md section 3, "Movement gates").
func NeedsBridge(from, to board.Square) bool {
	if from.File() != to.File() {
		return false
	}
	fromLower := from.Rank() <= rank6
	toLower := to.Rank() <= rank6
	return fromLower != toLower
}

// AllowsHeavyCrossing returns true iff the given file has a bridge, i.e. a heavy piece
// may cross the rank-6/rank-7 boundary along it.
func AllowsHeavyCrossing(f board.File) bool {
	return f == board.FileF || f == board.FileH
}

// IsCoastal returns true iff sq is a pure Land square within one square (Chebyshev) of
// a Water square -- Navy may bombard enemy land pieces standing on such squares, per
// spec.md section 4.3's coastal-attack rule.
func (m *Map) IsCoastal(sq board.Square) bool {
	if m.class[sq] != Land {
		return false
	}
	f, r := int(sq.File()), int(sq.Rank())
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			nf, nr := f+df, r+dr
			if nf < 0 || nf >= int(board.NumFiles) || nr < 0 || nr >= int(board.NumRanks) {
				continue
			}
			if m.class[board.NewSquare(board.File(nf), board.Rank(nr))] == Water {
				return true
			}
		}
	}
	return false
}
