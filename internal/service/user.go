package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"deskblog/internal/apperror"
	"deskblog/internal/auth"
	"deskblog/internal/model"
	"deskblog/internal/repository"
)

// UserService handles registration and authentication.
type UserService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
	logger *slog.Logger
}

func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// RegisterInput is what the signup form submits.
type RegisterInput struct {
	Username string `validate:"required,min=3,max=32"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=72"`
	FullName string `validate:"required,max=100"`
}

// Register validates the input, hashes the password and creates the
// account. A taken username or email comes back as apperror.ErrDuplicate —
// the repository's unique constraints decide, there is no check-then-insert
// race window.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)

	if err := checkInput(in); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, asAppError(err)
	}

	user := &model.User{
		Username: in.Username,
		Email:    in.Email,
		FullName: in.FullName,
	}
	if err := s.repo.CreateUser(ctx, user, hash); err != nil {
		if !errors.Is(err, apperror.ErrDuplicate) {
			s.logger.Error("failed to register user",
				slog.String("username", in.Username),
				slog.String("error", err.Error()),
			)
		}
		return nil, asAppError(err)
	}

	s.logger.Info("user registered",
		slog.Int64("id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// Authenticate verifies a username/password pair and returns the account on
// success.
//
// Wrong username and wrong password both surface as the same
// apperror.ErrNotFound with the same message — the login form must not leak
// which half was wrong.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperror.ValidationFailed("username", "username and password are required")
	}

	user, hash, err := s.repo.CredentialsByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, invalidLogin()
		}
		s.logger.Error("failed to load credentials",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return nil, asAppError(err)
	}

	if err := s.hasher.Verify(hash, password); err != nil {
		if errors.Is(err, auth.ErrMismatch) {
			return nil, invalidLogin()
		}
		return nil, asAppError(err)
	}

	s.logger.Info("user authenticated",
		slog.Int64("id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

func invalidLogin() *apperror.AppError {
	return &apperror.AppError{
		Err:     apperror.ErrNotFound,
		Message: "invalid username or password",
	}
}

// GetByID loads one account, for profile display.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, asAppError(err)
	}
	return user, nil
}
