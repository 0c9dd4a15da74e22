// Package repository defines the storage interfaces the service layer
// depends on. The sqlite subpackage is the production implementation; tests
// substitute in-memory fakes.
package repository

import (
	"context"

	"deskblog/internal/model"
)

type UserRepository interface {
	// CreateUser inserts a new user with the given password hash and fills
	// in the user's ID and CreatedAt. Returns apperror.ErrDuplicate when
	// the username or email is already taken.
	CreateUser(ctx context.Context, user *model.User, passwordHash string) error

	// CredentialsByUsername returns the user and stored password hash for
	// a username, or apperror.ErrNotFound.
	CredentialsByUsername(ctx context.Context, username string) (*model.User, string, error)

	GetUserByID(ctx context.Context, id int64) (*model.User, error)
}

type PostRepository interface {
	// Create inserts a new post and fills in ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, post *model.Post) error

	GetByID(ctx context.Context, id int64) (*model.PostDetail, error)

	// ListAll returns every post with author info, newest first.
	ListAll(ctx context.Context) ([]model.PostDetail, error)

	// ListByUser returns one user's posts, newest first.
	ListByUser(ctx context.Context, userID int64) ([]model.Post, error)

	// ListWithImages returns posts that carry an image, newest first.
	ListWithImages(ctx context.Context) ([]model.PostDetail, error)

	// Update rewrites title, content and category and bumps updated_at.
	// The image reference is not updatable.
	Update(ctx context.Context, id int64, title, content, category string) error

	// Delete removes the post; comments go with it via cascade.
	Delete(ctx context.Context, id int64) error
}

type CommentRepository interface {
	// CreateComment inserts a new comment and fills in ID and CreatedAt.
	CreateComment(ctx context.Context, comment *model.Comment) error

	// ListByPost returns a post's comments with commenter usernames,
	// newest first.
	ListByPost(ctx context.Context, postID int64) ([]model.CommentDetail, error)
}
