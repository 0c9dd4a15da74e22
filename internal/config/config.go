// Package config loads application configuration from the environment, with
// optional .env file support for development.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Hasher selection values for PASSWORD_HASHER.
const (
	HasherSHA256 = "sha256"
	HasherBcrypt = "bcrypt"
)

type Config struct {
	// DBPath is the SQLite database file. ":memory:" is valid and useful
	// in tests.
	DBPath string

	// ImageDir is the managed image directory where post images are copied.
	ImageDir string

	// PasswordHasher selects the hashing scheme: "sha256" (compatible
	// with databases from earlier releases) or "bcrypt".
	PasswordHasher string

	// ImageUniqueNames prefixes stored image filenames with a unique id
	// instead of keeping the original filename (which overwrites on
	// collision).
	ImageUniqueNames bool

	// LogLevel for the slog handler.
	LogLevel slog.Level
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func parseLogLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win over
// .env entries.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBPath:           getEnv("DB_PATH", "blog_app.db"),
		ImageDir:         getEnv("IMAGE_DIR", "post_images"),
		PasswordHasher:   getEnv("PASSWORD_HASHER", HasherSHA256),
		ImageUniqueNames: getEnvBool("IMAGE_UNIQUE_NAMES", false),
		LogLevel:         parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}
