package errorz

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnknownMediaType = errors.New("unknown media type")
)

// AuthError carries the backend's structured {error: reason} body from a
// failed login or signup.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth failed: " + e.Reason
}
