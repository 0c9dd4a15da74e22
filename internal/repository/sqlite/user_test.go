package sqlite

import (
	"context"
	"errors"
	"testing"

	"deskblog/internal/apperror"
	"deskblog/internal/model"
)

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)

	user := createTestUser(t, db, "alice", "a@x.com")

	if user.ID == 0 {
		t.Error("CreateUser() did not set user.ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreateUser() did not set user.CreatedAt")
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "alice", "a@x.com")

	dup := createTestUserErr(t, db, "alice", "different@x.com")
	if !errors.Is(dup, apperror.ErrDuplicate) {
		t.Errorf("duplicate username error = %v, want ErrDuplicate", dup)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "alice", "a@x.com")

	dup := createTestUserErr(t, db, "different", "a@x.com")
	if !errors.Is(dup, apperror.ErrDuplicate) {
		t.Errorf("duplicate email error = %v, want ErrDuplicate", dup)
	}
}

func createTestUserErr(t *testing.T, db *DB, username, email string) error {
	t.Helper()
	u := &model.User{Username: username, Email: email, FullName: "Test " + username}
	return db.CreateUser(context.Background(), u, "hash")
}

func TestCredentialsByUsername(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "alice", "a@x.com")

	user, hash, err := db.CredentialsByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("CredentialsByUsername() error = %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("ID = %d, want %d", user.ID, created.ID)
	}
	if hash != "hash-alice" {
		t.Errorf("hash = %q, want %q", hash, "hash-alice")
	}
	if user.FullName != "Test alice" {
		t.Errorf("FullName = %q, want %q", user.FullName, "Test alice")
	}
}

func TestCredentialsByUsernameNotFound(t *testing.T) {
	db := newTestDB(t)

	_, _, err := db.CredentialsByUsername(context.Background(), "nobody")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "alice", "a@x.com")

	user, err := db.GetUserByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}
	if user.Email != "a@x.com" {
		t.Errorf("Email = %q, want %q", user.Email, "a@x.com")
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetUserByID(context.Background(), 999)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
