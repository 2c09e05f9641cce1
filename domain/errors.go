package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyPost indicates the user submitted an empty post or edit.
	ErrEmptyPost = errors.New("post cannot be empty")

	// ErrEmptyComment indicates the user submitted an empty comment.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrInvalidView indicates a view that is neither all, following nor a user id.
	ErrInvalidView = errors.New("not a valid post view")

	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("not a valid page")

	// ErrNoCSRFToken indicates the csrftoken cookie has not been issued yet.
	ErrNoCSRFToken = errors.New("csrf token not found")
)

// APIError is a non-2xx response from the server.
// Message holds the {"error": ...} field when the body carried one,
// otherwise the raw body text.
type APIError struct {
	Method     string
	Path       string
	Status     int
	Message    string
	Structured bool // True when Message came from the JSON error field.
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match auth failures.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}

// ErrorText returns what a log line should show for err: the server's
// error field when present, otherwise the error itself.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Structured {
		return apiErr.Message
	}
	return err.Error()
}
