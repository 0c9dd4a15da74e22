package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"deskblog/internal/apperror"
	"deskblog/internal/model"
	"deskblog/internal/repository"
)

// compile-time check that *DB implements repository.UserRepository
var _ repository.UserRepository = (*DB)(nil)

// CreateUser inserts a new user. The unique constraints on username and
// email are the source of truth for duplicates — no pre-check SELECT, the
// INSERT either lands or reports the conflict.
func (db *DB) CreateUser(ctx context.Context, user *model.User, passwordHash string) error {
	user.CreatedAt = time.Now()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, full_name, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Username,
		user.Email,
		passwordHash,
		user.FullName,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Duplicate("username or email already exists")
		}
		return fmt.Errorf("sqlite: inserting user %q: %w", user.Username, err)
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new user id: %w", err)
	}
	return nil
}

// CredentialsByUsername loads a user row together with the stored password
// hash. The hash stays inside the repository/auth boundary; callers verify
// and then drop it.
func (db *DB) CredentialsByUsername(ctx context.Context, username string) (*model.User, string, error) {
	var (
		u    model.User
		hash string
	)
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, full_name, created_at
		 FROM users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &hash, &u.FullName, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", &apperror.AppError{
				Err:     apperror.ErrNotFound,
				Message: fmt.Sprintf("no user named %q", username),
			}
		}
		return nil, "", fmt.Errorf("sqlite: getting user %q: %w", username, err)
	}
	return &u, hash, nil
}

// GetUserByID retrieves a user by id, without the password hash.
func (db *DB) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, email, full_name, created_at
		 FROM users WHERE id = ?`,
		id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("user", id)
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}
	return &u, nil
}
