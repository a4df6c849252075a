// Package config loads the application configuration from defaults, an optional
// config file, a .env file and the environment.
package config

import (
	"os"
	"path/filepath"

	"fjacquet/kakeibo/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file if one exists in the
// current directory or the user's ~/.kakeibo directory. Existing variables are kept.
func LoadEnv(logger logging.Logger) {
	candidates := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".kakeibo", ".env"))
	}

	for _, envFile := range candidates {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).WithField(logging.FieldFile, envFile).Warn("Error loading .env file")
			return
		}
		logger.WithField(logging.FieldFile, envFile).Debug("Loaded environment variables")
		return
	}
	logger.Debug("No .env file found, using environment variables")
}

// GetEnv returns the value of key, or fallback when it is unset or empty
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DefaultDataDir returns ~/.kakeibo, or .kakeibo when the home directory is unknown
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kakeibo"
	}
	return filepath.Join(home, ".kakeibo")
}
