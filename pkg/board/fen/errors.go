package fen

import "errors"

// ErrInvalidFEN wraps every parse failure in Decode.
var ErrInvalidFEN = errors.New("invalid FEN")
