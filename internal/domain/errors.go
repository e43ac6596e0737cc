package domain

import (
	"errors"
	"fmt"
)

// AppError is a storage failure. It carries no failure kind, so the HTTP
// layer answers 500 with code InternalServerError.
type AppError struct {
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WrapError tags a repository error. Not-found and conflict outcomes are
// returned as failure errors instead.
func WrapError(err error, message string) *AppError {
	return &AppError{
		Message: message,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
