package categorizer

import (
	"context"
	"strings"
	"time"

	"fjacquet/kakeibo/internal/logging"
)

// AIStrategy implements suggestion using an AI service.
// Failures are logged and reported as no suggestion.
type AIStrategy struct {
	aiClient AIClient
	labels   []string
	timeout  time.Duration
	logger   logging.Logger
}

// NewAIStrategy creates a new AIStrategy restricted to the given labels.
// A zero timeout means the caller's context deadline applies.
func NewAIStrategy(aiClient AIClient, labels []string, timeout time.Duration, logger logging.Logger) *AIStrategy {
	return &AIStrategy{
		aiClient: aiClient,
		labels:   labels,
		timeout:  timeout,
		logger:   logger,
	}
}

// Name returns the name of this strategy for logging and debugging.
func (s *AIStrategy) Name() string {
	return "AI"
}

// Suggest asks the AI client for a label.
func (s *AIStrategy) Suggest(ctx context.Context, memo string) (string, bool, error) {
	if s.aiClient == nil {
		s.logger.WithField(logging.FieldStrategy, s.Name()).
			Debug("AI client not available, skipping AI suggestion")
		return "", false, nil
	}
	if strings.TrimSpace(memo) == "" {
		return "", false, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	label, err := s.aiClient.SuggestCategory(ctx, memo, s.labels)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldStrategy, s.Name()).
			Warn("AI suggestion failed")
		return "", false, nil
	}

	label = strings.TrimSpace(label)
	if label == "" || !s.allowed(label) {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
			logging.Field{Key: logging.FieldCategory, Value: label},
		).Debug("AI returned no usable category")
		return "", false, nil
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldStrategy, Value: s.Name()},
		logging.Field{Key: logging.FieldCategory, Value: label},
	).Debug("Memo categorized using AI")

	return label, true, nil
}

func (s *AIStrategy) allowed(label string) bool {
	for _, l := range s.labels {
		if l == label {
			return true
		}
	}
	return false
}
