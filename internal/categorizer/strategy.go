package categorizer

import (
	"context"
)

// SuggestionStrategy defines one method of suggesting a category for a memo.
type SuggestionStrategy interface {
	// Suggest attempts to find a category label for memo.
	// Returns the label, whether a suggestion was found,
	// and any error encountered during the process.
	Suggest(ctx context.Context, memo string) (string, bool, error)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}
