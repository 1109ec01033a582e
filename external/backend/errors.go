package backend

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels for the two authorization classes. Neither is ever retried.
var (
	ErrUnauthenticated = errors.New("backend: not authenticated")
	ErrForbidden       = errors.New("backend: forbidden")
)

// Error carries the failed operation name plus either a transport error or a
// remote status/message.
type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("backend: %s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("backend: %s: %s (status %d)", e.Op, e.Message, e.Status)
	default:
		return fmt.Sprintf("backend: %s: status %d", e.Op, e.Status)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets callers match the auth sentinels with errors.Is.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthenticated:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

// Permanent reports whether retrying cannot help. The cache layer checks this
// before scheduling a retry.
func (e *Error) Permanent() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// IsAuthError reports whether err is an authorization failure (either class).
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrForbidden)
}
