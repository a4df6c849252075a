package store

import (
	"context"
	"errors"

	"fjacquet/kakeibo/internal/models"
)

// ErrMockUnavailable is returned by a FailingStore
var ErrMockUnavailable = errors.New("storage unavailable")

// MockCategoryStore is a mock implementation of CategoryStore for testing.
type MockCategoryStore struct {
	Categories          []models.CategoryConfig
	LoadCategoriesError error
}

// LoadCategories returns the mock categories.
func (m *MockCategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}

// FailingStore is a KeyValueStore whose reads and writes fail, for testing degradation.
type FailingStore struct {
	GetErr error
	SetErr error
}

// Get returns GetErr, or ErrMockUnavailable when unset
func (f *FailingStore) Get(context.Context, string) (string, bool, error) {
	if f.GetErr != nil {
		return "", false, f.GetErr
	}
	return "", false, ErrMockUnavailable
}

// Set returns SetErr, or ErrMockUnavailable when unset
func (f *FailingStore) Set(context.Context, string, string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	return ErrMockUnavailable
}

// Close is a no-op
func (f *FailingStore) Close() error {
	return nil
}
