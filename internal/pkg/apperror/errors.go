package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrCodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	ErrCodeConflict          ErrorCode = "CONFLICT"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeInvalidTarget     ErrorCode = "INVALID_TARGET"
	ErrCodeDependencyFailure ErrorCode = "DEPENDENCY_FAILURE"
)

// AppError несёт машинный код ошибки и сообщение для клиента.
// Cause остаётся на сервере и никогда не попадает в ответ.
type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeValidation, ErrCodeInvalidTransition, ErrCodeInvalidTarget:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// From извлекает *AppError из цепочки; всё неизвестное маскируется
// как DEPENDENCY_FAILURE с общим сообщением.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrCodeDependencyFailure, "service temporarily unavailable")
}

func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

var (
	ErrRequestNotFound    = New(ErrCodeNotFound, "request not found")
	ErrUnauthorized       = New(ErrCodeUnauthorized, "authorization required")
	ErrInvalidCredentials = New(ErrCodeUnauthorized, "invalid credentials")
	ErrDuplicatePhone     = New(ErrCodeConflict, "an active request already exists for this phone")
	ErrInvalidTransition  = New(ErrCodeInvalidTransition, "request has already been reviewed")
	ErrInvalidTarget      = New(ErrCodeInvalidTarget, "status must be approved or rejected")
	ErrListingNotFound    = New(ErrCodeNotFound, "listing not found")
)
