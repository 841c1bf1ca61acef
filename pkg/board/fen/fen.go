// Package fen encodes and decodes CoTuLenh positions in the text notation described in
// spec.md section 4.7: piece placement, side to move, halfmove and fullmove counters, and
// an optional trailing deploy-session field.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
)

// Initial is the canonical CoTuLenh starting position.
const Initial = "n2h1c1h2n/1ea1g1g1ae1/t2s3s2t/1i1i1i1i1i1/2f5f2/11/11/2F5F2/1I1I1I1I1I1/T2S3S2T/1EA1G1G1AE1/N2H1C1H2N r 0 1"

// Decode parses a full FEN-like record: piece placement, side to move, halfmove clock,
// fullmove number, and optionally a trailing deploy-session field.
func Decode(fen string) (*board.Position, error) {
	var parts []string
	for _, tok := range strings.Fields(fen) {
		if n := len(parts); n > 0 && strings.Count(parts[n-1], "(") > strings.Count(parts[n-1], ")") {
			parts[n-1] += " " + tok // still inside a stack such as "(T I M)"
			continue
		}
		parts = append(parts, tok)
	}
	if len(parts) < 4 || len(parts) > 5 {
		return nil, fmt.Errorf("%w: invalid number of fields: %q", ErrInvalidFEN, fen)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	turn, ok := board.ParseColor(rune(parts[1][0]))
	if !ok || len(parts[1]) != 1 {
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, parts[1])
	}

	half, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalidFEN, parts[2])
	}
	full, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid fullmove number %q", ErrInvalidFEN, parts[3])
	}

	pos, err := board.NewPosition(placements, turn, half, full)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	if len(parts) == 5 {
		session, err := decodeDeploy(pos, parts[4])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
		}
		pos.SetDeploy(session)
	}

	return pos, nil
}

func decodePlacement(field string) ([]board.Placement, error) {
	rows := strings.Split(field, "/")
	if len(rows) != int(board.NumRanks) {
		return nil, fmt.Errorf("expected %v ranks, got %v", board.NumRanks, len(rows))
	}

	var placements []board.Placement
	for i, row := range rows {
		rank := board.Rank(int(board.NumRanks) - 1 - i)
		file := board.ZeroFile
		runes := []rune(row)
		for j := 0; j < len(runes); j++ {
			r := runes[j]
			switch {
			case r >= '0' && r <= '9':
				n := int(r - '0')
				if j+1 < len(runes) && runes[j+1] >= '0' && runes[j+1] <= '9' {
					n = n*10 + int(runes[j+1]-'0')
					j++
				}
				file += board.File(n)
			case r == '(':
				end := strings.IndexRune(string(runes[j:]), ')')
				if end < 0 {
					return nil, fmt.Errorf("unterminated stack in rank %q", row)
				}
				piece, err := parseStack(string(runes[j+1 : j+end]))
				if err != nil {
					return nil, err
				}
				if !file.IsValid() {
					return nil, fmt.Errorf("file overflow in rank %q", row)
				}
				placements = append(placements, board.Placement{Square: board.NewSquare(file, rank), Piece: piece})
				file++
				j += end
			default:
				piece, consumed, err := parsePiece(runes[j:])
				if err != nil {
					return nil, err
				}
				if !file.IsValid() {
					return nil, fmt.Errorf("file overflow in rank %q", row)
				}
				placements = append(placements, board.Placement{Square: board.NewSquare(file, rank), Piece: piece})
				file++
				j += consumed - 1
			}
		}
		if file != board.NumFiles {
			return nil, fmt.Errorf("rank %q does not cover %v files", row, board.NumFiles)
		}
	}
	return placements, nil
}

// parseStack parses the contents between parentheses: a carrier followed by zero or more
// space-separated carried pieces, e.g. "+T I M".
func parseStack(body string) (board.Piece, error) {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return board.Piece{}, fmt.Errorf("empty stack")
	}
	carrier, _, err := parsePiece([]rune(fields[0]))
	if err != nil {
		return board.Piece{}, err
	}
	for _, f := range fields[1:] {
		carried, _, err := parsePiece([]rune(f))
		if err != nil {
			return board.Piece{}, err
		}
		carrier.Carrying = append(carrier.Carrying, carried)
	}
	return carrier, nil
}

// parsePiece parses a single piece token: an optional leading '+' for heroic status,
// then a case-sensitive letter (uppercase Red, lowercase Blue). Returns the piece and the
// number of runes consumed.
func parsePiece(runes []rune) (board.Piece, int, error) {
	if len(runes) == 0 {
		return board.Piece{}, 0, fmt.Errorf("empty piece token")
	}
	heroic := false
	i := 0
	if runes[0] == '+' {
		heroic = true
		i++
	}
	if i >= len(runes) {
		return board.Piece{}, 0, fmt.Errorf("dangling heroic marker")
	}
	letter := runes[i]
	var color board.Color
	if letter >= 'a' && letter <= 'z' {
		color = board.Blue
	} else {
		color = board.Red
	}
	t, ok := board.ParsePieceType(letter)
	if !ok {
		return board.Piece{}, 0, fmt.Errorf("invalid piece letter %q", letter)
	}
	return board.Piece{Type: t, Color: color, Heroic: heroic}, i + 1, nil
}

// Encode renders pos back into the FEN-like notation, including a trailing deploy field
// when a session is active.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	sb.WriteString(encodePlacement(pos))
	sb.WriteByte(' ')
	sb.WriteString(pos.Turn().String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfMoves()))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullMoves()))
	if s := pos.Deploy(); s != nil {
		sb.WriteByte(' ')
		sb.WriteString(encodeDeploy(s))
	}
	return sb.String()
}

func encodePlacement(pos *board.Position) string {
	var ranks []string
	for r := int(board.NumRanks) - 1; r >= 0; r-- {
		var sb strings.Builder
		empty := 0
		flush := func() {
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
		}
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			piece := pos.Get(board.NewSquare(f, board.Rank(r)))
			if piece.IsZero() {
				empty++
				continue
			}
			flush()
			sb.WriteString(piece.String())
		}
		flush()
		ranks = append(ranks, sb.String())
	}
	return strings.Join(ranks, "/")
}
