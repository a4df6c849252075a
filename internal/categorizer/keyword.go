package categorizer

import (
	"context"

	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"
)

// KeywordStrategy implements suggestion using the ordered keyword groups,
// loaded from the category store with the built-in groups as fallback.
type KeywordStrategy struct {
	classifier *Classifier
	groups     []models.CategoryConfig
	store      CategoryStoreInterface
	logger     logging.Logger
}

// NewKeywordStrategy creates a new KeywordStrategy instance.
// A nil store uses the default groups.
func NewKeywordStrategy(store CategoryStoreInterface, logger logging.Logger) *KeywordStrategy {
	strategy := &KeywordStrategy{
		store:  store,
		logger: logger,
	}
	strategy.loadCategories()
	return strategy
}

// Name returns the name of this strategy for logging and debugging.
func (s *KeywordStrategy) Name() string {
	return "Keyword"
}

// Suggest returns the label of the first keyword group matching memo.
func (s *KeywordStrategy) Suggest(_ context.Context, memo string) (string, bool, error) {
	label, keyword, ok := s.classifier.match(memo)
	if !ok {
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldKeyword, Value: keyword},
		logging.Field{Key: logging.FieldCategory, Value: label},
	).Debug("Memo categorized using keyword matching")

	return label, true, nil
}

// Classifier returns the classifier backing this strategy
func (s *KeywordStrategy) Classifier() *Classifier {
	return s.classifier
}

// Groups returns a copy of the groups loaded from the store, empty when the built-in groups are used
func (s *KeywordStrategy) Groups() []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(s.groups))
	copy(out, s.groups)
	return out
}

// loadCategories loads the keyword groups from the store.
func (s *KeywordStrategy) loadCategories() {
	var groups []models.CategoryConfig
	if s.store != nil {
		loaded, err := s.store.LoadCategories()
		if err != nil {
			s.logger.WithError(err).Warn("Failed to load categories, using built-in keyword groups")
		} else {
			groups = loaded
		}
	}

	s.groups = groups
	s.classifier = NewClassifier(groups)
	s.logger.WithField(logging.FieldCount, len(s.classifier.groups)).Debug("Loaded keyword groups")
}

// ReloadCategories reloads the groups from the store.
// This can be called when the underlying YAML file has been updated.
func (s *KeywordStrategy) ReloadCategories() {
	s.loadCategories()
}
