package fen

import (
	"fmt"
	"strings"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
)

// Deploy-session field grammar: "origin:elem,elem,...[,...]" where each elem is either
// "T-" (piece type T stays at the origin) or "T[x]dest" (piece type T moved to dest,
// with an 'x' marking a capture). A trailing "..." element means pieces in the original
// stack remain undecided; its absence means the session is fully accounted for and only
// awaiting commit.

func encodeDeploy(s *board.DeploySession) string {
	var elems []string
	for _, p := range s.Staying {
		elems = append(elems, fmt.Sprintf("%c-", p.Type.Letter()))
	}
	for _, m := range s.Moved {
		x := ""
		if m.HasCapture {
			x = "x"
		}
		elems = append(elems, fmt.Sprintf("%c%s%v", m.Piece.Type.Letter(), x, m.Dest))
	}
	if !s.IsFullyAccountedFor() {
		elems = append(elems, "...")
	}
	return fmt.Sprintf("%v:%s", s.Origin, strings.Join(elems, ","))
}

func decodeDeploy(pos *board.Position, field string) (*board.DeploySession, error) {
	parts := strings.SplitN(field, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid deploy field %q", field)
	}
	origin, err := board.ParseSquareStr(parts[0])
	if err != nil {
		return nil, err
	}

	stack := pos.Get(origin)
	composition := stack.Flatten()
	s := &board.DeploySession{Origin: origin, OriginalComposition: composition}

	decided := map[board.PieceType]bool{}
	if parts[1] != "" {
		for _, elem := range strings.Split(parts[1], ",") {
			if elem == "..." {
				continue
			}
			if strings.HasSuffix(elem, "-") {
				t, ok := board.ParsePieceType(rune(elem[0]))
				if !ok {
					return nil, fmt.Errorf("invalid deploy element %q", elem)
				}
				piece, ok := findByType(composition, t)
				if !ok {
					return nil, fmt.Errorf("deploy element %q not part of stack at %v", elem, origin)
				}
				s.Staying = append(s.Staying, piece)
				decided[t] = true
				continue
			}
			t, ok := board.ParsePieceType(rune(elem[0]))
			if !ok {
				return nil, fmt.Errorf("invalid deploy element %q", elem)
			}
			rest := elem[1:]
			hasCapture := strings.HasPrefix(rest, "x")
			rest = strings.TrimPrefix(rest, "x")
			dest, err := board.ParseSquareStr(rest)
			if err != nil {
				return nil, fmt.Errorf("invalid deploy destination in %q: %w", elem, err)
			}
			piece, ok := findByType(composition, t)
			if !ok {
				return nil, fmt.Errorf("deploy element %q not part of stack at %v", elem, origin)
			}
			entry := board.DeployMovedEntry{Piece: piece, Dest: dest, HasCapture: hasCapture}
			if hasCapture {
				entry.Captured = pos.Get(dest)
			}
			s.Moved = append(s.Moved, entry)
			decided[t] = true
		}
	}

	for _, p := range composition {
		if !decided[p.Type] {
			s.Remaining = append(s.Remaining, p)
		}
	}
	if len(s.Moved) > 0 || len(s.Staying) > 0 {
		s.HasMoved = len(s.Moved) > 0
	}
	return s, nil
}

func findByType(composition []board.Piece, t board.PieceType) (board.Piece, bool) {
	for _, p := range composition {
		if p.Type == t {
			return p, true
		}
	}
	return board.Piece{}, false
}
