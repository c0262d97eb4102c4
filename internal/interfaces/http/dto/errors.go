package dto

import "net/http"

// Error codes shared by the domain layer and the HTTP surface.
const (
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeInvalidCredentials is the uniform login failure code
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	// ErrCodeForbidden is used when the role is not allowed on the route
	ErrCodeForbidden = "FORBIDDEN"
	// ErrCodeNotFound covers both missing rows and ownership denials
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used on uniqueness violations
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeInvalidInput is used for invalid field values
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeNoFieldsProvided is used when an update carries no fields
	ErrCodeNoFieldsProvided = "NO_FIELDS_PROVIDED"
	// ErrCodeBadRequest is used for malformed request bodies
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeAlreadyExists:      http.StatusConflict,
	ErrCodeInvalidInput:       http.StatusBadRequest,
	ErrCodeNoFieldsProvided:   http.StatusBadRequest,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeInternal:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting
// to 500 for codes the table does not know.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
