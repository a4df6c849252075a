// Package factory opens the key-value backend selected by configuration.
package factory

import (
	"context"
	"fmt"
	"path/filepath"

	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/store"
)

// BackendType defines the storage backends available.
type BackendType string

const (
	File   BackendType = "file"
	SQLite BackendType = "sqlite"
	Memory BackendType = "memory"
)

// DefaultFileName returns the data file name used by a backend when none is configured
func DefaultFileName(backend BackendType) string {
	switch backend {
	case SQLite:
		return "kakeibo.db"
	default:
		return "kakeibo.yaml"
	}
}

// IsValid reports whether b names a known backend
func (b BackendType) IsValid() bool {
	switch b {
	case File, SQLite, Memory:
		return true
	default:
		return false
	}
}

// GetStore opens the backend of the given type. The data file is dir/file,
// with file defaulting to DefaultFileName.
func GetStore(ctx context.Context, backend BackendType, dir, file string, logger logging.Logger) (store.KeyValueStore, error) {
	if file == "" {
		file = DefaultFileName(backend)
	}
	path := file
	if !filepath.IsAbs(file) {
		path = filepath.Join(dir, file)
	}

	log := logger.WithFields(
		logging.Field{Key: logging.FieldBackend, Value: string(backend)},
		logging.Field{Key: logging.FieldFile, Value: path},
	)

	switch backend {
	case File:
		s, err := store.NewFileStore(path)
		if err != nil {
			return nil, err
		}
		log.Debug("Opened file store")
		return s, nil
	case SQLite:
		s, err := store.NewSQLiteStore(ctx, path)
		if err != nil {
			return nil, err
		}
		log.Debug("Opened sqlite store")
		return s, nil
	case Memory:
		logger.WithField(logging.FieldBackend, string(backend)).Debug("Using in-memory store, data will not persist")
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
