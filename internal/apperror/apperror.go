// Package apperror defines the application's error taxonomy.
//
// Every failure that can reach the presentation layer is one of the sentinel
// categories below, wrapped in an *AppError whose Message is ready to show
// in a blocking notification. Lower layers wrap driver and filesystem errors
// into these; nothing above the service layer should ever see a raw
// database/sql or os error.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: a lookup matched no row (missing post, unknown username,
	// wrong password — authentication deliberately does not distinguish).
	ErrNotFound = errors.New("not found")

	// ErrDuplicate: a unique constraint was violated (username or email
	// already taken).
	ErrDuplicate = errors.New("duplicate")

	// ErrValidation: the input was rejected before touching storage.
	ErrValidation = errors.New("validation error")

	// ErrImageStore: the image file could not be copied into the managed
	// image directory.
	ErrImageStore = errors.New("image store error")

	// ErrStorage: any other persistence failure, surfaced with the
	// underlying message.
	ErrStorage = errors.New("storage error")
)

type AppError struct {
	Err     error  // sentinel category, checked with errors.Is
	Message string // human-readable, suitable for a dialog box
	Field   string // optional: input field that caused a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string, id int64) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %d", resource, id),
	}
}

func Duplicate(message string) *AppError {
	return &AppError{
		Err:     ErrDuplicate,
		Message: message,
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// ImageStore wraps a filesystem failure during an image copy.
func ImageStore(path string, err error) *AppError {
	return &AppError{
		Err:     ErrImageStore,
		Message: fmt.Sprintf("could not store image %s: %v", path, err),
	}
}

// Storage wraps any other persistence failure. The underlying message is
// kept so the user sees what actually went wrong.
func Storage(err error) *AppError {
	return &AppError{
		Err:     ErrStorage,
		Message: fmt.Sprintf("storage error: %v", err),
	}
}
