// Package store provides the storage collaborator: a key-value store with
// file, SQLite and in-memory backends, the entry repository built on it, and
// the category file loader.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"

	"gopkg.in/yaml.v3"
)

// DefaultCategoriesFile is the file name looked up when none is configured
const DefaultCategoriesFile = "categories.yaml"

// CategoryStore loads and saves the user's keyword groups
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a new store for the categories file
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".kakeibo", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

func (s *CategoryStore) filename() string {
	if s.CategoriesFile == "" {
		return DefaultCategoriesFile
	}
	return s.CategoriesFile
}

// LoadCategories loads the keyword groups in file order.
// A missing file is not an error and yields an empty slice.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.filename()

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		s.logger.WithField(logging.FieldFile, filename).Debug("Categories file not found, using built-in groups")
		return []models.CategoryConfig{}, nil
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// "categories: [...]"
	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldCount, Value: len(categoriesConfig.Categories)},
			logging.Field{Key: logging.FieldFile, Value: filePath},
		).Debug("Loaded categories")
		return categoriesConfig.Categories, nil
	}

	// top-level list without the "categories" key
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}
	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(categories)},
		logging.Field{Key: logging.FieldFile, Value: filePath},
	).Debug("Loaded categories from top-level list")
	if categories == nil {
		categories = []models.CategoryConfig{}
	}
	return categories, nil
}

// SaveCategories writes groups to the configured file, creating its directory
func (s *CategoryStore) SaveCategories(groups []models.CategoryConfig) error {
	filePath := s.filename()

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating categories directory: %w", err)
		}
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: groups})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(filePath, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(groups)},
		logging.Field{Key: logging.FieldFile, Value: filePath},
	).Info("Saved categories")
	return nil
}
