// Command deskblog is the process entry point. Its job is small: read
// configuration, build the logger, wire the application, and own process
// lifecycle. The desktop frontend attaches to the built *App and runs the
// event loop; everything interesting lives in internal/.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"deskblog/internal/app"
	"deskblog/internal/config"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to start", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer a.Close()

	logger.Info("deskblog ready",
		slog.String("db", cfg.DBPath),
		slog.String("imageDir", cfg.ImageDir),
		slog.String("page", a.Session.State().Page.String()),
	)

	// The frontend owns the event loop; the process ends on an external
	// signal.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
}
