package san

import (
	"fmt"
	"strings"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
)

// DeployElement is one piece's disposition within a deploy sequence: either it stays at
// the origin, or it moves to Dest (optionally capturing).
type DeployElement struct {
	Type       board.PieceType
	Stay       bool
	Dest       board.Square
	HasCapture bool
}

// EncodeDeploy renders a completed deploy sequence, e.g. "e5:Nd7,Td5,Ie6" or
// "e5:I-,Nd7" when one piece stays.
func EncodeDeploy(origin board.Square, elems []DeployElement) string {
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		if e.Stay {
			parts = append(parts, fmt.Sprintf("%c-", e.Type.Letter()))
			continue
		}
		x := ""
		if e.HasCapture {
			x = "x"
		}
		parts = append(parts, fmt.Sprintf("%c%s%v", e.Type.Letter(), x, e.Dest))
	}
	return fmt.Sprintf("%v:%s", origin, strings.Join(parts, ","))
}

// DecodeDeploy parses a deploy sequence into its origin square and ordered elements. It
// does not validate legality; callers feed each element through pkg/deploy in order.
func DecodeDeploy(s string) (board.Square, []DeployElement, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, nil, fmt.Errorf("invalid deploy sequence %q", s)
	}
	origin, err := board.ParseSquareStr(parts[0])
	if err != nil {
		return 0, nil, err
	}
	if parts[1] == "" {
		return origin, nil, nil
	}

	var elems []DeployElement
	for _, tok := range strings.Split(parts[1], ",") {
		t, ok := board.ParsePieceType(rune(tok[0]))
		if !ok {
			return 0, nil, fmt.Errorf("invalid piece letter in deploy element %q", tok)
		}
		rest := tok[1:]
		if rest == "-" {
			elems = append(elems, DeployElement{Type: t, Stay: true})
			continue
		}
		hasCapture := strings.HasPrefix(rest, "x")
		rest = strings.TrimPrefix(rest, "x")
		dest, err := board.ParseSquareStr(rest)
		if err != nil {
			return 0, nil, fmt.Errorf("invalid destination in deploy element %q: %w", tok, err)
		}
		elems = append(elems, DeployElement{Type: t, Dest: dest, HasCapture: hasCapture})
	}
	return origin, elems, nil
}
