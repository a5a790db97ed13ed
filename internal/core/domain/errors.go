package domain

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Callers match with errors.Is; the HTTP layer maps each kind
// to a status code.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("profile not found")
	ErrInvalidID          = errors.New("invalid profile ID format")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("access forbidden")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUpstream           = errors.New("upstream classifier failure")
	ErrMalformedEnvelope  = errors.New("malformed intent envelope")
)

// Error pairs a sentinel kind with a client-facing message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds an *Error of the given kind.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Message returns the client-facing text for err: the *Error message when one
// is in the chain, otherwise the error string itself.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return err.Error()
}
