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

// compile-time check that *DB implements repository.PostRepository
var _ repository.PostRepository = (*DB)(nil)

// Newest first. The id tiebreaker keeps the order deterministic when two
// posts land within the same timestamp granularity.
const postOrder = `ORDER BY posts.created_at DESC, posts.id DESC`

// Create inserts a new post and fills in ID, CreatedAt and UpdatedAt.
// ImagePath is expected to already point into the managed image directory;
// the file copy happens in the service layer before this call.
func (db *DB) Create(ctx context.Context, post *model.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO posts (user_id, title, content, category, image_path, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.UserID,
		post.Title,
		post.Content,
		post.Category,
		post.ImagePath,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting post %q: %w", post.Title, err)
	}

	post.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new post id: %w", err)
	}
	return nil
}

// GetByID retrieves one post joined with its author, as the detail page
// renders it.
func (db *DB) GetByID(ctx context.Context, id int64) (*model.PostDetail, error) {
	var p model.PostDetail
	err := db.conn.QueryRowContext(ctx,
		`SELECT posts.id, posts.user_id, posts.title, posts.content, posts.category,
		        posts.image_path, posts.created_at, posts.updated_at,
		        users.username, users.full_name
		 FROM posts
		 JOIN users ON posts.user_id = users.id
		 WHERE posts.id = ?`,
		id,
	).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Content, &p.Category,
		&p.ImagePath, &p.CreatedAt, &p.UpdatedAt,
		&p.Username, &p.FullName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("post", id)
		}
		return nil, fmt.Errorf("sqlite: getting post %d: %w", id, err)
	}
	return &p, nil
}

// ListAll returns every post with author info, newest first.
func (db *DB) ListAll(ctx context.Context) ([]model.PostDetail, error) {
	return db.listDetails(ctx, ``)
}

// ListWithImages returns only posts that carry an image — the gallery feed.
func (db *DB) ListWithImages(ctx context.Context) ([]model.PostDetail, error) {
	return db.listDetails(ctx, `WHERE posts.image_path != ''`)
}

func (db *DB) listDetails(ctx context.Context, where string) ([]model.PostDetail, error) {
	rows, err := db.conn.QueryContext(ctx, fmt.Sprintf(
		`SELECT posts.id, posts.user_id, posts.title, posts.content, posts.category,
		        posts.image_path, posts.created_at, posts.updated_at,
		        users.username, users.full_name
		 FROM posts
		 JOIN users ON posts.user_id = users.id
		 %s %s`, where, postOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing posts: %w", err)
	}
	defer rows.Close()

	posts := []model.PostDetail{}
	for rows.Next() {
		var p model.PostDetail
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &p.Content, &p.Category,
			&p.ImagePath, &p.CreatedAt, &p.UpdatedAt,
			&p.Username, &p.FullName,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating posts: %w", err)
	}
	return posts, nil
}

// ListByUser returns one user's posts, newest first. No author join — the
// caller already knows whose posts these are.
func (db *DB) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, user_id, title, content, category, image_path, created_at, updated_at
		 FROM posts
		 WHERE user_id = ?
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing posts for user %d: %w", userID, err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &p.Content, &p.Category,
			&p.ImagePath, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating posts: %w", err)
	}
	return posts, nil
}

// Update rewrites the editable fields and bumps updated_at. The image
// reference is left untouched. RowsAffected distinguishes "no such post"
// from success without a second query.
func (db *DB) Update(ctx context.Context, id int64, title, content, category string) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE posts
		 SET title = ?, content = ?, category = ?, updated_at = ?
		 WHERE id = ?`,
		title, content, category, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating post %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("post", id)
	}
	return nil
}

// Delete removes a post. The comments cascade is handled by the schema
// (PRAGMA foreign_keys is on); the stored image file is not touched.
func (db *DB) Delete(ctx context.Context, id int64) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM posts WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting post %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("post", id)
	}
	return nil
}
