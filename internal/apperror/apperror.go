package apperror

import (
	"errors"
	"net/http"
)

type Error struct {
	Code       string
	Message    string
	StatusCode int
	Internal   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Internal
}

var (
	ErrUnauthorized = &Error{
		Code:       "unauthorized",
		Message:    "Unauthorized",
		StatusCode: http.StatusUnauthorized,
	}

	ErrInvalidCredentials = &Error{
		Code:       "invalid_credentials",
		Message:    "IDまたはパスワードが違います",
		StatusCode: http.StatusUnauthorized,
	}

	ErrInvalidCode = &Error{
		Code:       "invalid_code",
		Message:    "コードが無効か期限切れです",
		StatusCode: http.StatusUnauthorized,
	}

	ErrInvalidUpload = &Error{
		Code:       "invalid_upload",
		Message:    "File required",
		StatusCode: http.StatusBadRequest,
	}

	ErrInvalidImage = &Error{
		Code:       "invalid_image",
		Message:    "The uploaded file is not a supported image",
		StatusCode: http.StatusUnprocessableEntity,
	}

	ErrFileTooLarge = &Error{
		Code:       "file_too_large",
		Message:    "The uploaded file exceeds the maximum allowed size",
		StatusCode: http.StatusRequestEntityTooLarge,
	}

	ErrTransformFailed = &Error{
		Code:       "transform_failed",
		Message:    "Upload failed",
		StatusCode: http.StatusInternalServerError,
	}

	ErrStorageIO = &Error{
		Code:       "storage_error",
		Message:    "Upload failed",
		StatusCode: http.StatusBadGateway,
	}

	ErrNotFound = &Error{
		Code:       "not_found",
		Message:    "Not found",
		StatusCode: http.StatusNotFound,
	}

	ErrBadRequest = &Error{
		Code:       "bad_request",
		Message:    "Invalid request",
		StatusCode: http.StatusBadRequest,
	}

	ErrConflict = &Error{
		Code:       "conflict",
		Message:    "Used slug",
		StatusCode: http.StatusConflict,
	}

	ErrMailFailed = &Error{
		Code:       "mail_failed",
		Message:    "メール送信に失敗しました",
		StatusCode: http.StatusInternalServerError,
	}

	ErrInternal = &Error{
		Code:       "internal_error",
		Message:    "An unexpected error occurred. Please try again later",
		StatusCode: http.StatusInternalServerError,
	}

	ErrServiceUnavailable = &Error{
		Code:       "service_unavailable",
		Message:    "Service temporarily unavailable. Please try again later",
		StatusCode: http.StatusServiceUnavailable,
	}
)

func New(code, message string, statusCode int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func Wrap(err error, appErr *Error) *Error {
	return &Error{
		Code:       appErr.Code,
		Message:    appErr.Message,
		StatusCode: appErr.StatusCode,
		Internal:   err,
	}
}

func WrapWithMessage(err error, code, message string, statusCode int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Internal:   err,
	}
}

// WithMessage copies appErr with a user-facing message replaced.
func WithMessage(appErr *Error, message string) *Error {
	return &Error{
		Code:       appErr.Code,
		Message:    message,
		StatusCode: appErr.StatusCode,
		Internal:   appErr.Internal,
	}
}

func Is(err error, target *Error) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code == target.Code
	}
	return false
}

func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func SafeMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ErrInternal.Message
}

func Code(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal.Code
}
