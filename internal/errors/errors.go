package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when login fails, without distinguishing
	// unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole is returned when a role name is outside the hierarchy.
	ErrInvalidRole = errors.New("invalid role")
	// ErrOwnerRoleImmutable is returned when attempting to demote the owner.
	ErrOwnerRoleImmutable = errors.New("cannot change owner role")
	// ErrFileTypeNotAllowed is returned for uploads outside the MIME allow-list.
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	// ErrFileTooLarge is returned for uploads exceeding the per-file cap.
	ErrFileTooLarge = errors.New("file too large")
	// ErrTooManyFiles is returned when an upload batch exceeds the file count cap.
	ErrTooManyFiles = errors.New("too many files")
	// ErrFileNotFound is returned when a requested stored file does not exist.
	ErrFileNotFound = errors.New("file not found")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Storage failures fall
// through to a generic 500 so callers cannot probe the storage layer.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case errors.Is(err, ErrOwnerRoleImmutable):
		return NewHTTPError(http.StatusForbidden, err.Error(), "OWNER_ROLE_IMMUTABLE")
	case errors.Is(err, ErrFileTypeNotAllowed):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FILE_TYPE_NOT_ALLOWED")
	case errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "FILE_TOO_LARGE")
	case errors.Is(err, ErrTooManyFiles):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "TOO_MANY_FILES")
	case errors.Is(err, ErrFileNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FILE_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
