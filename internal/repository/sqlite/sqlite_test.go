package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"deskblog/internal/model"
)

// newTestDB opens a fresh in-memory database with the full schema. Each
// test gets its own; it disappears when the connection closes.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, username, email string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Email: email, FullName: "Test " + username}
	if err := db.CreateUser(context.Background(), user, "hash-"+username); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestPost(t *testing.T, db *DB, userID int64, title string) *model.Post {
	t.Helper()
	post := &model.Post{UserID: userID, Title: title, Content: "body of " + title, Category: "Technology"}
	if err := db.Create(context.Background(), post); err != nil {
		t.Fatalf("failed to create test post: %v", err)
	}
	return post
}

// A database created before image support gains the image_path column on
// open, and existing rows survive.
func TestMigrationAddsImagePathColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.db")

	// Build the pre-image schema by hand.
	old, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening raw db: %v", err)
	}
	stmts := []string{
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`INSERT INTO users (username, email, password_hash, full_name) VALUES ('old', 'old@x.com', 'h', 'Old User')`,
		`INSERT INTO posts (user_id, title, content) VALUES (1, 'pre-image post', 'written before images existed')`,
	}
	for _, s := range stmts {
		if _, err := old.Exec(s); err != nil {
			t.Fatalf("preparing old schema: %v", err)
		}
	}
	if err := old.Close(); err != nil {
		t.Fatalf("closing raw db: %v", err)
	}

	db, err := New(path)
	if err != nil {
		t.Fatalf("New() on old database: %v", err)
	}
	defer db.Close()

	post, err := db.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID() after migration: %v", err)
	}
	if post.Title != "pre-image post" {
		t.Errorf("Title = %q, want %q", post.Title, "pre-image post")
	}
	if post.ImagePath != "" {
		t.Errorf("ImagePath = %q, want empty for migrated row", post.ImagePath)
	}
}

// Opening the same database twice must not error — the schema check is
// idempotent.
func TestMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.db")

	db1, err := New(path)
	if err != nil {
		t.Fatalf("first New(): %v", err)
	}
	db1.Close()

	db2, err := New(path)
	if err != nil {
		t.Fatalf("second New(): %v", err)
	}
	db2.Close()
}

func TestNewBadPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "no-such-dir", "x.db")); err == nil {
		t.Error("New() with an uncreatable path should fail")
	}
}
