package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"deskblog/internal/apperror"
	"deskblog/internal/model"
	"deskblog/internal/repository"
)

// UncategorizedLabel is the category-tree group for posts whose author left
// the category blank.
const UncategorizedLabel = "Uncategorized"

// ImageStore is the slice of the image directory the post service needs.
// imagestore.Dir implements it.
type ImageStore interface {
	Store(sourcePath string) (string, error)
}

// PostService handles authoring and browsing of posts.
type PostService struct {
	repo   repository.PostRepository
	images ImageStore
	logger *slog.Logger
}

func NewPostService(repo repository.PostRepository, images ImageStore, logger *slog.Logger) *PostService {
	return &PostService{
		repo:   repo,
		images: images,
		logger: logger,
	}
}

// CreatePostInput is what the compose form submits. SourceImagePath is the
// file the author picked in the file dialog; empty means no image.
type CreatePostInput struct {
	UserID          int64  `validate:"required"`
	Title           string `validate:"required,max=200"`
	Content         string `validate:"required"`
	Category        string `validate:"max=50"`
	SourceImagePath string
}

// Create stores the image copy (if any) and inserts the post. The copy
// happens first: if it fails, no post row is written and the failure
// surfaces as apperror.ErrImageStore.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*model.Post, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)

	if err := checkInput(in); err != nil {
		return nil, err
	}

	storedImage := ""
	if in.SourceImagePath != "" {
		stored, err := s.images.Store(in.SourceImagePath)
		if err != nil {
			s.logger.Error("failed to store post image",
				slog.String("source", in.SourceImagePath),
				slog.String("error", err.Error()),
			)
			return nil, apperror.ImageStore(in.SourceImagePath, err)
		}
		storedImage = stored
	}

	post := &model.Post{
		UserID:    in.UserID,
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		ImagePath: storedImage,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post",
			slog.String("title", in.Title),
			slog.String("error", err.Error()),
		)
		return nil, asAppError(err)
	}

	s.logger.Info("post created",
		slog.Int64("id", post.ID),
		slog.Int64("userId", post.UserID),
		slog.Bool("hasImage", storedImage != ""),
	)
	return post, nil
}

// ListAll returns every post with author info, newest first — the home
// page feed.
func (s *PostService) ListAll(ctx context.Context) ([]model.PostDetail, error) {
	posts, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list posts", slog.String("error", err.Error()))
		return nil, asAppError(err)
	}
	return posts, nil
}

// ListByUser returns one author's posts, newest first — the "my posts"
// page.
func (s *PostService) ListByUser(ctx context.Context, userID int64) ([]model.Post, error) {
	posts, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list user posts",
			slog.Int64("userId", userID),
			slog.String("error", err.Error()),
		)
		return nil, asAppError(err)
	}
	return posts, nil
}

// ListWithImages returns posts carrying an image, newest first — the
// gallery page.
func (s *PostService) ListWithImages(ctx context.Context) ([]model.PostDetail, error) {
	posts, err := s.repo.ListWithImages(ctx)
	if err != nil {
		s.logger.Error("failed to list gallery posts", slog.String("error", err.Error()))
		return nil, asAppError(err)
	}
	return posts, nil
}

// Get loads one post with author info, or apperror.ErrNotFound.
func (s *PostService) Get(ctx context.Context, id int64) (*model.PostDetail, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, asAppError(err)
	}
	return post, nil
}

// UpdatePostInput is what the edit form submits. The image is not
// editable; replacing it was never part of the product.
type UpdatePostInput struct {
	Title    string `validate:"required,max=200"`
	Content  string `validate:"required"`
	Category string `validate:"max=50"`
}

func (s *PostService) Update(ctx context.Context, id int64, in UpdatePostInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)

	if err := checkInput(in); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, in.Title, in.Content, in.Category); err != nil {
		return asAppError(err)
	}

	s.logger.Info("post updated", slog.Int64("id", id))
	return nil
}

// Delete removes a post. Its comments cascade away; its stored image file
// stays on disk — see imagestore.Delete for a frontend that wants cleanup.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return asAppError(err)
	}

	s.logger.Info("post deleted", slog.Int64("id", id))
	return nil
}

// CategoryTree groups all posts by category for the tree page. Groups come
// back alphabetical; posts inside each keep their newest-first order. Posts
// with a blank category group under UncategorizedLabel.
func (s *PostService) CategoryTree(ctx context.Context) ([]model.CategoryGroup, error) {
	posts, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := map[string][]model.PostDetail{}
	for _, p := range posts {
		label := p.Category
		if label == "" {
			label = UncategorizedLabel
		}
		byCategory[label] = append(byCategory[label], p)
	}

	groups := make([]model.CategoryGroup, 0, len(byCategory))
	for label, ps := range byCategory {
		groups = append(groups, model.CategoryGroup{Category: label, Posts: ps})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups, nil
}
