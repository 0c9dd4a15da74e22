package service

import (
	"context"
	"log/slog"
	"strings"

	"deskblog/internal/apperror"
	"deskblog/internal/model"
	"deskblog/internal/repository"
)

const MaxCommentLength = 2000

// CommentService handles commenting. Comments are write-once: no edit, no
// delete — they only disappear when their post or author does.
type CommentService struct {
	repo   repository.CommentRepository
	logger *slog.Logger
}

func NewCommentService(repo repository.CommentRepository, logger *slog.Logger) *CommentService {
	return &CommentService{
		repo:   repo,
		logger: logger,
	}
}

// Add attaches a comment to a post.
func (s *CommentService) Add(ctx context.Context, postID, userID int64, text string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperror.ValidationFailed("text", "comment text is required")
	}
	if len(text) > MaxCommentLength {
		return nil, apperror.ValidationFailed("text", "comment is too long")
	}

	comment := &model.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		s.logger.Error("failed to add comment",
			slog.Int64("postId", postID),
			slog.String("error", err.Error()),
		)
		return nil, asAppError(err)
	}

	s.logger.Info("comment added",
		slog.Int64("id", comment.ID),
		slog.Int64("postId", postID),
	)
	return comment, nil
}

// List returns a post's comments with commenter usernames, newest first.
func (s *CommentService) List(ctx context.Context, postID int64) ([]model.CommentDetail, error) {
	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		s.logger.Error("failed to list comments",
			slog.Int64("postId", postID),
			slog.String("error", err.Error()),
		)
		return nil, asAppError(err)
	}
	return comments, nil
}
