package terrain

import "github.com/mnoyd/cotulenh-engine/pkg/board"

// radiusTable holds the base and heroic Chebyshev radii for each air-defense source
// piece type, per spec.md section 3's table.
var radiusTable = map[board.PieceType][2]int{
	board.AntiAir: {1, 2},
	board.Missile: {2, 3},
	board.Navy:    {1, 1}, // no heroic bonus
}

// IsAirDefenseSource returns true iff the piece type contributes to its color's
// air-defense zone.
func IsAirDefenseSource(t board.PieceType) bool {
	_, ok := radiusTable[t]
	return ok
}

// RadiusOf returns the Chebyshev radius a piece projects into its color's air-defense
// zone, accounting for heroic status. Returns 0, false if the piece is not a source.
func RadiusOf(p board.Piece) (int, bool) {
	r, ok := radiusTable[p.Type]
	if !ok {
		return 0, false
	}
	if p.Heroic {
		return r[1], true
	}
	return r[0], true
}

// Zone computes the air-defense zone for color c: the union, over every contributing
// piece of that color (including ones carried inside a stack), of squares within
// Chebyshev distance <= radius.
func Zone(pos *board.Position, c board.Color) board.Bitboard {
	if cached, ok := pos.AirDefenseCache(c); ok {
		return cached
	}

	var zone board.Bitboard
	for _, pl := range pos.AllPlacements() {
		for _, piece := range pl.Piece.Flatten() {
			if piece.Color != c {
				continue
			}
			radius, ok := RadiusOf(piece)
			if !ok {
				continue
			}
			zone = zone.Or(disk(pl.Square, radius))
		}
	}

	pos.SetAirDefenseCache(c, zone)
	return zone
}

// SourceCount returns the number of distinct color-c air-defense sources covering sq --
// used to distinguish Air Force suicide-capture (count == 1) from a forbidden capture
// (count >= 2), per spec.md section 4.3.
func SourceCount(pos *board.Position, c board.Color, sq board.Square) int {
	count := 0
	for _, pl := range pos.AllPlacements() {
		for _, piece := range pl.Piece.Flatten() {
			if piece.Color != c {
				continue
			}
			radius, ok := RadiusOf(piece)
			if !ok {
				continue
			}
			if chebyshev(pl.Square, sq) <= radius {
				count++
			}
		}
	}
	return count
}

func disk(center board.Square, radius int) board.Bitboard {
	var zone board.Bitboard
	cf, cr := int(center.File()), int(center.Rank())
	for f := cf - radius; f <= cf+radius; f++ {
		if f < 0 || f >= int(board.NumFiles) {
			continue
		}
		for r := cr - radius; r <= cr+radius; r++ {
			if r < 0 || r >= int(board.NumRanks) {
				continue
			}
			zone = zone.Set(board.NewSquare(board.File(f), board.Rank(r)))
		}
	}
	return zone
}

func chebyshev(a, b board.Square) int {
	df := abs(int(a.File()) - int(b.File()))
	dr := abs(int(a.Rank()) - int(b.Rank()))
	if df > dr {
		return df
	}
	return dr
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
