// Package movegen produces pseudo-legal moves for every CoTuLenh piece type, per
// spec.md section 4.3. Legality (commander safety, flying-general) is applied
// separately by pkg/legality.
package movegen

import "github.com/mnoyd/cotulenh-engine/pkg/board"

// Direction is a single-step file/rank delta.
type Direction struct {
	DF, DR int
}

var (
	North     = Direction{0, 1}
	South     = Direction{0, -1}
	East      = Direction{1, 0}
	West      = Direction{-1, 0}
	NorthEast = Direction{1, 1}
	NorthWest = Direction{-1, 1}
	SouthEast = Direction{1, -1}
	SouthWest = Direction{-1, -1}
)

// Orthogonal4 is the four orthogonal directions, shared by every non-heroic piece
// except Air Force.
var Orthogonal4 = []Direction{North, South, East, West}

// Diagonal4 is the four diagonal directions heroic status adds.
var Diagonal4 = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}

// All8 is every direction, used by Air Force and any heroic piece.
var All8 = append(append([]Direction{}, Orthogonal4...), Diagonal4...)

// DirectionsFor returns the direction set for a piece: Orthogonal4 normally, All8 once
// heroic (or already omnidirectional), per spec.md section 3's heroic bonus.
func DirectionsFor(p board.Piece) []Direction {
	if p.IsOmnidirectional() {
		return All8
	}
	return Orthogonal4
}

// Ray walks up to maxRange squares from `from` in direction dir, stopping at the board
// edge. It does not consider occupancy; callers decide where to stop based on piece rules.
func Ray(from board.Square, dir Direction, maxRange int) []board.Square {
	var ret []board.Square
	f, r := int(from.File()), int(from.Rank())
	for i := 1; i <= maxRange; i++ {
		f += dir.DF
		r += dir.DR
		if f < 0 || f >= int(board.NumFiles) || r < 0 || r >= int(board.NumRanks) {
			break
		}
		ret = append(ret, board.NewSquare(board.File(f), board.Rank(r)))
	}
	return ret
}
