package utils

import (
	"errors"
	"net/http"
)

// ErrorCode classifies failures the way the API reports them.
type ErrorCode string

const (
	CodeValidation       ErrorCode = "validation"
	CodePermissionDenied ErrorCode = "permission_denied"
	CodeNotFound         ErrorCode = "not_found"
	CodeConflict         ErrorCode = "conflict"
	CodeInternal         ErrorCode = "internal"
)

// AppError carries a code alongside a user-facing message.
// Anything that is not an AppError is reported as an internal error.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(message string) error {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewPermissionDenied(message string) error {
	return &AppError{Code: CodePermissionDenied, Message: message}
}

func NewNotFound(message string) error {
	return &AppError{Code: CodeNotFound, Message: message}
}

func NewConflict(message string) error {
	return &AppError{Code: CodeConflict, Message: message}
}

// CodeOf extracts the error code, defaulting to internal.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

var statusByCode = map[ErrorCode]int{
	CodeValidation:       http.StatusBadRequest,
	CodePermissionDenied: http.StatusForbidden,
	CodeNotFound:         http.StatusNotFound,
	CodeConflict:         http.StatusConflict,
	CodeInternal:         http.StatusInternalServerError,
}

// ErrorResponse maps an error to the HTTP status and response envelope
// handlers send back. Internal errors keep their details out of the body.
func ErrorResponse(err error) (int, APIResponse) {
	code := CodeOf(err)
	status := statusByCode[code]

	var appErr *AppError
	if errors.As(err, &appErr) {
		return status, BuildResponseFailed(appErr.Message, string(code), nil)
	}
	return status, BuildResponseFailed("Something went wrong, please try again", string(CodeInternal), nil)
}
