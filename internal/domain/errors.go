package domain

import "errors"

// ErrorKind classifies errors caused by user input or project state.
type ErrorKind string

const (
	KindInvalidEntity      ErrorKind = "invalid_entity"
	KindNotInitialized     ErrorKind = "not_initialized"
	KindAlreadyInitialized ErrorKind = "already_initialized"
	KindIncompatible       ErrorKind = "incompatible_project"
)

// UserError is an error the user can fix. It is reported without a stack
// trace, optionally followed by a hint such as a command to run.
type UserError struct {
	Kind ErrorKind
	Msg  string
	Hint string
}

func (e *UserError) Error() string { return e.Msg }

// NewUserError creates a UserError.
func NewUserError(kind ErrorKind, msg, hint string) *UserError {
	return &UserError{Kind: kind, Msg: msg, Hint: hint}
}

// AsUserError unwraps err to a *UserError if it contains one.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// IsKind reports whether err is a UserError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ue, ok := AsUserError(err)
	return ok && ue.Kind == kind
}
