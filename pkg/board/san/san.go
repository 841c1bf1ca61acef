// Package san encodes and decodes move notation, per spec.md section 4.7. Unlike FEN,
// which is self-contained, decoding SAN requires the position it applies to: the same
// destination square can denote different move kinds depending on what already stands
// there, so Decode resolves ambiguity by matching against the position's legal moves.
package san

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mnoyd/cotulenh-engine/pkg/board"
	"github.com/mnoyd/cotulenh-engine/pkg/legality"
	"github.com/mnoyd/cotulenh-engine/pkg/movegen"
	"github.com/mnoyd/cotulenh-engine/pkg/terrain"
)

// ErrAmbiguous is returned when a SAN string matches more than one legal move.
var ErrAmbiguous = errors.New("ambiguous move notation")

// ErrNoSuchMove is returned when a SAN string matches no legal move.
var ErrNoSuchMove = errors.New("no legal move matches notation")

// Encode renders a single move in SAN, independent of the position it came from.
func Encode(mv board.Move) string {
	var sb strings.Builder
	if mv.Piece.Heroic {
		sb.WriteByte('+')
	}
	if mv.Piece.IsStack() {
		sb.WriteByte('(')
		sb.WriteRune(mv.Piece.Type.Letter())
		for _, c := range mv.Piece.Carrying {
			sb.WriteRune(c.Type.Letter())
		}
		sb.WriteByte(')')
	} else {
		sb.WriteRune(mv.Piece.Type.Letter())
	}
	if mv.Kind == board.CaptureMove || mv.Kind == board.SuicideCapture {
		sb.WriteByte('x')
	}
	sb.WriteString(mv.To.String())
	if mv.Kind == board.Combine {
		sb.WriteByte('(')
		for _, c := range mv.Piece.Carrying {
			sb.WriteRune(c.Type.Letter())
		}
		sb.WriteByte(')')
	} else if (mv.Kind == board.CaptureMove || mv.Kind == board.SuicideCapture) && mv.Capture.IsStack() {
		sb.WriteByte('(')
		for _, c := range mv.Capture.Flatten() {
			sb.WriteRune(c.Type.Letter())
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// Decode resolves a SAN string against pos's legal moves, matching by rendered string.
func Decode(ctx context.Context, san string, pos *board.Position, terr *terrain.Map) (board.Move, error) {
	pseudo := movegen.GenerateAll(pos, terr, pos.Turn())
	legal := legality.Filter(ctx, pos, terr, pseudo)

	var match *board.Move
	for i := range legal {
		if Encode(legal[i]) == san {
			if match != nil {
				return board.Move{}, fmt.Errorf("%w: %q", ErrAmbiguous, san)
			}
			match = &legal[i]
		}
	}
	if match == nil {
		return board.Move{}, fmt.Errorf("%w: %q", ErrNoSuchMove, san)
	}
	return *match, nil
}
