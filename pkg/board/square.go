package board

import (
	"fmt"
	"strconv"
)

// Square is a bit-index into the board: A1=0 .. K1=10, A2=11 .. K12=131.
// 11 files (a..k) x 12 ranks (1..12) = 132 valid squares. 8 bits.
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = NumFiles * NumRanks
)

// NewSquare builds a Square from a File and Rank.
func NewSquare(f File, r Rank) Square {
	return Square(r)*Square(NumFiles) + Square(f)
}

func (s Square) IsValid() bool {
	return s < NumSquares
}

func (s Square) File() File {
	return File(s % Square(NumFiles))
}

func (s Square) Rank() Rank {
	return Rank(s / Square(NumFiles))
}

func (s Square) String() string {
	if !s.IsValid() {
		return "??"
	}
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// ParseSquareStr parses algebraic notation, e.g. "a1", "e5", "k12".
func ParseSquareStr(str string) (Square, error) {
	if len(str) < 2 || len(str) > 3 {
		return 0, fmt.Errorf("invalid square: %q", str)
	}
	f, ok := ParseFile(rune(str[0]))
	if !ok {
		return 0, fmt.Errorf("invalid file in square: %q", str)
	}
	n, err := strconv.Atoi(str[1:])
	if err != nil {
		return 0, fmt.Errorf("invalid rank in square: %q", str)
	}
	r, ok := ParseRank(n)
	if !ok {
		return 0, fmt.Errorf("invalid rank in square: %q", str)
	}
	return NewSquare(f, r), nil
}

// Rank represents a board rank, Rank1=0 .. Rank12=11. 4 bits.
type Rank uint8

const (
	ZeroRank Rank = 0
	NumRanks Rank = 12
)

func ParseRank(n int) (Rank, bool) {
	if n < 1 || n > int(NumRanks) {
		return 0, false
	}
	return Rank(n - 1), true
}

func (r Rank) IsValid() bool {
	return r < NumRanks
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	return strconv.Itoa(r.V() + 1)
}

// File represents a board file, FileA=0 .. FileK=10. 4 bits.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileI
	FileJ
	FileK
)

const (
	ZeroFile File = 0
	NumFiles File = 11
)

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	case 'i', 'I':
		return FileI, true
	case 'j', 'J':
		return FileJ, true
	case 'k', 'K':
		return FileK, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f < NumFiles
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	return string(rune('a' + int(f)))
}
