package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/userbinhq/userbin/internal/model"
)

// ErrorResponse is the JSON body sent for every failed request. The message
// is intentionally generic for server-side failures; upstream detail stays in
// the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// httpError combines an HTTP status code with a client-facing message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusConflict, "Username already exists"}
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Invalid credentials"}
	case errors.Is(err, model.ErrStoreUnavailable):
		return &httpError{http.StatusInternalServerError, "Unable to read database"}
	case errors.Is(err, model.ErrStoreWriteFailed):
		return &httpError{http.StatusInternalServerError, "Failed to save user"}
	default:
		return &httpError{http.StatusInternalServerError, "Server error"}
	}
}

// NewInvalidRequestError creates a 400 error with the given message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewMethodNotAllowedError creates a 405 error
func NewMethodNotAllowedError() error {
	return &httpError{http.StatusMethodNotAllowed, "Method not allowed"}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Server error"}
}
