package sqlite

import (
	"context"
	"fmt"
	"time"

	"deskblog/internal/model"
	"deskblog/internal/repository"
)

// compile-time check that *DB implements repository.CommentRepository
var _ repository.CommentRepository = (*DB)(nil)

// CreateComment inserts a new comment and fills in ID and CreatedAt.
// A dangling post_id or user_id trips the foreign-key constraint and comes
// back as a plain storage error — the UI only offers commenting on posts it
// just rendered, so that path is a bug, not a user mistake.
func (db *DB) CreateComment(ctx context.Context, comment *model.Comment) error {
	comment.CreatedAt = time.Now()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO comments (post_id, user_id, comment_text, created_at)
		 VALUES (?, ?, ?, ?)`,
		comment.PostID,
		comment.UserID,
		comment.Text,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting comment on post %d: %w", comment.PostID, err)
	}

	comment.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new comment id: %w", err)
	}
	return nil
}

// ListByPost returns a post's comments with commenter usernames, newest
// first.
func (db *DB) ListByPost(ctx context.Context, postID int64) ([]model.CommentDetail, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT comments.id, comments.post_id, comments.user_id,
		        comments.comment_text, comments.created_at, users.username
		 FROM comments
		 JOIN users ON comments.user_id = users.id
		 WHERE comments.post_id = ?
		 ORDER BY comments.created_at DESC, comments.id DESC`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing comments for post %d: %w", postID, err)
	}
	defer rows.Close()

	comments := []model.CommentDetail{}
	for rows.Next() {
		var c model.CommentDetail
		if err := rows.Scan(
			&c.ID, &c.PostID, &c.UserID, &c.Text, &c.CreatedAt, &c.Username,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating comments: %w", err)
	}
	return comments, nil
}
