package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/questgate/steamqual/internal/model"
	"github.com/questgate/steamqual/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidSteamID   = "INVALID_STEAM_ID"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeProfilePrivate   = "PROFILE_PRIVATE"
	CodeSteamUnavailable = "STEAM_UNAVAILABLE"
	CodeCheckNotFound    = "CHECK_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidSteamID):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSteamID, "A SteamID is a 17-digit number"}}
	case errors.Is(err, model.ErrProfilePrivate):
		return &httpError{http.StatusForbidden, APIError{CodeProfilePrivate, "Game details are private or the account owns no games"}}
	case errors.Is(err, model.ErrSteamUnavailable):
		return &httpError{http.StatusBadGateway, APIError{CodeSteamUnavailable, "Steam did not answer"}}
	case errors.Is(err, model.ErrCheckNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCheckNotFound, "No check result for this account"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
