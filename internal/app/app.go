// Package app wires the application together: configuration in, a ready
// set of services and a navigation controller out. The desktop frontend
// takes an *App and drives it from its event loop.
package app

import (
	"fmt"
	"log/slog"

	"deskblog/internal/auth"
	"deskblog/internal/config"
	"deskblog/internal/imagestore"
	"deskblog/internal/repository/sqlite"
	"deskblog/internal/service"
	"deskblog/internal/session"
)

type App struct {
	Users    *service.UserService
	Posts    *service.PostService
	Comments *service.CommentService
	Session  *session.Controller

	db *sqlite.DB
}

// New opens the database (creating or migrating the schema as needed) and
// builds every layer. On error nothing is left open.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("app: opening store: %w", err)
	}

	hasher, err := newHasher(cfg.PasswordHasher)
	if err != nil {
		db.Close()
		return nil, err
	}

	images := imagestore.New(cfg.ImageDir, cfg.ImageUniqueNames)

	return &App{
		Users:    service.NewUserService(db, hasher, logger),
		Posts:    service.NewPostService(db, images, logger),
		Comments: service.NewCommentService(db, logger),
		Session:  session.New(logger),
		db:       db,
	}, nil
}

func newHasher(name string) (auth.PasswordHasher, error) {
	switch name {
	case config.HasherSHA256:
		return auth.NewSHA256Hasher(), nil
	case config.HasherBcrypt:
		return auth.NewBcryptHasher(), nil
	default:
		return nil, fmt.Errorf("app: unknown password hasher %q", name)
	}
}

// Close releases the database. Call once the frontend's event loop has
// exited.
func (a *App) Close() error {
	return a.db.Close()
}
