package categorizer

import (
	"context"
)

// AIClient defines the interface for AI-based category suggestion services.
// This abstraction allows the suggestion logic to be tested independently
// of external API calls.
type AIClient interface {
	// SuggestCategory asks the service to pick one of labels for memo.
	// An empty result means the service had no opinion.
	SuggestCategory(ctx context.Context, memo string, labels []string) (string, error)
}
