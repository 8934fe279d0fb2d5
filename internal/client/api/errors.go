package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the request with 401.
	// By the time the caller sees it, the expiry handler has already fired.
	ErrUnauthorized = errors.New("unauthorized")
)

// genericMessage is shown when the backend's error payload carries no message.
const genericMessage = "request failed"

// APIError is a non-2xx backend response with its user-facing message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}
