package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned for a wrong password, an unknown
	// username, or a non-admin account on the admin login. The cases are
	// deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists is returned when the requested username is taken.
	ErrUserExists = errors.New("username already exists")
	// ErrWeakPassword is returned when a signup password is too short.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	// ErrPostNotFound covers both a missing post and a post owned by
	// someone else; callers cannot tell the two apart.
	ErrPostNotFound = errors.New("post not found")
	// ErrEmptyContent is returned when a comment body is blank.
	ErrEmptyContent = errors.New("content must not be empty")
	// ErrInvalidPeriod is returned for an unknown analytics bucket.
	ErrInvalidPeriod = errors.New("period must be one of day, week, month, year")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUserExists):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "USER_EXISTS")
	case errors.Is(err, ErrWeakPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WEAK_PASSWORD")
	case errors.Is(err, ErrPostNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "POST_NOT_FOUND")
	case errors.Is(err, ErrEmptyContent):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CONTENT")
	case errors.Is(err, ErrInvalidPeriod):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PERIOD")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
