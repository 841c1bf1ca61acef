package engine

import "errors"

// Kind identifies the category of an engine error, for callers using errors.Is/As.
type Kind uint8

const (
	InvalidFEN Kind = iota
	InvalidSquare
	InvalidMove
	IllegalMove
	SANAmbiguous
	StackInvariantBroken
	NoStackHere
	WrongColor
	DeployAlreadyActive
	NoActiveDeploy
	IllegalDeployCommit
)

func (k Kind) String() string {
	switch k {
	case InvalidFEN:
		return "invalid-fen"
	case InvalidSquare:
		return "invalid-square"
	case InvalidMove:
		return "invalid-move"
	case IllegalMove:
		return "illegal-move"
	case SANAmbiguous:
		return "san-ambiguous"
	case StackInvariantBroken:
		return "stack-invariant-broken"
	case NoStackHere:
		return "no-stack-here"
	case WrongColor:
		return "wrong-color"
	case DeployAlreadyActive:
		return "deploy-already-active"
	case NoActiveDeploy:
		return "no-active-deploy"
	case IllegalDeployCommit:
		return "illegal-deploy-commit"
	default:
		return "?"
	}
}

// Error is the concrete error type returned by every Engine method, per spec.md section 7.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so errors.Is(err, &Error{Kind: IllegalMove}) works.
func (e *Error) Is(target error) bool {
	var o *Error
	if errors.As(target, &o) {
		return o.Kind == e.Kind
	}
	return false
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
