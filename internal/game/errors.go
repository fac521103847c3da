package game

import "errors"

// Kind classifies an error for the transport layer
type Kind int

const (
	KindInternal      Kind = iota // Unexpected persistence or runtime failure
	KindValidation                // Bad input or a business rule refused the request
	KindNotFound                  // Referenced record does not exist
	KindNotConfigured             // The target number has not been set yet
)

// Error is a game error with a caller-facing message
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrInvalidNumber      = &Error{KindValidation, "Invalid number"}
	ErrInvalidRole        = &Error{KindValidation, "Invalid role"}
	ErrUsernameTaken      = &Error{KindValidation, "Username already taken"}
	ErrEmailTaken         = &Error{KindValidation, "Email already registered"}
	ErrUserCapReached     = &Error{KindValidation, "Maximum number of users reached"}
	ErrInvalidCredentials = &Error{KindValidation, "Invalid credentials"}
	ErrUserNotFound       = &Error{KindNotFound, "User not found"}
	ErrNotConfigured      = &Error{KindNotConfigured, "Admin number not set"}
)

// KindOf returns the Kind of err, KindInternal for anything not raised here
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
