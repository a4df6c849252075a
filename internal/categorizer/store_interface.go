package categorizer

import "fjacquet/kakeibo/internal/models"

// CategoryStoreInterface defines the source of user-defined keyword groups.
// This allows for dependency injection and easier testing.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}
