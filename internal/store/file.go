package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fjacquet/kakeibo/internal/models"

	"gopkg.in/yaml.v3"
)

// FileStore is a KeyValueStore persisted as a YAML mapping in a single file.
// Every Set rewrites the whole file through a temporary file and a rename.
type FileStore struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// NewFileStore opens the store at path. A missing file is an empty store.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: make(map[string]string)}

	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}
	if s.data == nil {
		s.data = make(map[string]string)
	}
	return s, nil
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value under key
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key and flushes the file
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, existed := s.data[key]
	s.data[key] = value
	if err := s.flush(); err != nil {
		if existed {
			s.data[key] = previous
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

func (s *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	out, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(out); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, models.PermissionConfigFile); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// Close is a no-op, every Set is already durable
func (s *FileStore) Close() error {
	return nil
}
