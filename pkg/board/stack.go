package board

import "fmt"

// MaxCarried is the maximum number of pieces a carrier may transport.
const MaxCarried = 3

// carrierTypes are the piece types that can act as a stack carrier: Navy over water,
// Tank over land, Air Force over air.
var carrierTypes = map[PieceType]bool{
	Navy:     true,
	Tank:     true,
	AirForce: true,
}

// IsCarrier returns true iff the piece type may carry other pieces.
func IsCarrier(t PieceType) bool {
	return carrierTypes[t]
}

// ValidateStack checks the stack invariants from spec.md section 3: one carrier, at most
// MaxCarried carried pieces, all one color, all distinct types, carrier is a legal carrier
// type, and no carried piece is itself carrying.
func ValidateStack(p Piece) error {
	if !p.IsStack() {
		return nil
	}
	if !IsCarrier(p.Type) {
		return fmt.Errorf("%w: %v cannot carry other pieces", ErrStackInvariantBroken, p.Type)
	}
	if len(p.Carrying) > MaxCarried {
		return fmt.Errorf("%w: stack carries %v pieces, max %v", ErrStackInvariantBroken, len(p.Carrying), MaxCarried)
	}
	seen := map[PieceType]bool{p.Type: true}
	for _, c := range p.Carrying {
		if c.Color != p.Color {
			return fmt.Errorf("%w: mixed-color stack", ErrStackInvariantBroken)
		}
		if c.IsStack() {
			return fmt.Errorf("%w: carried piece %v cannot itself carry", ErrStackInvariantBroken, c.Type)
		}
		if seen[c.Type] {
			return fmt.Errorf("%w: duplicate carried type %v", ErrStackInvariantBroken, c.Type)
		}
		seen[c.Type] = true
	}
	return nil
}
