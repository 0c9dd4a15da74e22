package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFound(t *testing.T) {
	err := NotFound("post", 7)

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound() should wrap ErrNotFound")
	}
	if err.Error() != "post not found with id 7" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestDuplicate(t *testing.T) {
	err := Duplicate("username or email already exists")

	if !errors.Is(err, ErrDuplicate) {
		t.Error("Duplicate() should wrap ErrDuplicate")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("Duplicate() should not match ErrNotFound")
	}
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("title", "title is required")

	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationFailed() should wrap ErrValidation")
	}
	if err.Field != "title" {
		t.Errorf("Field = %q, want %q", err.Field, "title")
	}
}

func TestStorageKeepsUnderlyingMessage(t *testing.T) {
	underlying := fmt.Errorf("disk I/O error")
	err := Storage(underlying)

	if !errors.Is(err, ErrStorage) {
		t.Error("Storage() should wrap ErrStorage")
	}
	if want := "storage error: disk I/O error"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrappedThroughFmtErrorf(t *testing.T) {
	// Errors wrapped further up the stack must still match their sentinel.
	err := fmt.Errorf("creating post: %w", ImageStore("cat.png", errors.New("permission denied")))

	if !errors.Is(err, ErrImageStore) {
		t.Error("wrapped AppError should still match ErrImageStore")
	}
}
