package categorizer

import (
	"context"

	"fjacquet/kakeibo/internal/logging"
)

// Suggestion is the outcome of running the strategy chain on a memo
type Suggestion struct {
	Label    string `json:"label" yaml:"label"`
	Strategy string `json:"strategy" yaml:"strategy"`
	Found    bool   `json:"found" yaml:"found"`
}

// Suggester runs strategies in order and stops at the first suggestion.
type Suggester struct {
	strategies []SuggestionStrategy
	logger     logging.Logger
}

// NewSuggester creates a Suggester over the given strategies.
func NewSuggester(logger logging.Logger, strategies ...SuggestionStrategy) *Suggester {
	return &Suggester{
		strategies: strategies,
		logger:     logger,
	}
}

// Suggest returns the first strategy's suggestion for memo.
// Strategy errors are recorded and never abort the chain.
func (s *Suggester) Suggest(ctx context.Context, memo string) Suggestion {
	var results StrategyResults
	for _, strategy := range s.strategies {
		if ctx.Err() != nil {
			break
		}
		label, found, err := strategy.Suggest(ctx, memo)
		results.Results = append(results.Results, StrategyResult{
			Strategy: strategy.Name(),
			Label:    label,
			Found:    found,
			Error:    err,
		})
		if found && err == nil {
			break
		}
	}

	for _, err := range results.GetErrors() {
		s.logger.WithError(err).Warn("Suggestion strategy failed")
	}

	best, ok := results.GetBestResult()
	s.logger.WithField("strategies", results.Summary()).Debug("Category suggestion finished")
	if !ok {
		return Suggestion{}
	}
	return Suggestion{Label: best.Label, Strategy: best.Strategy, Found: true}
}

// Strategies returns the names of the configured strategies in order
func (s *Suggester) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for _, strategy := range s.strategies {
		names = append(names, strategy.Name())
	}
	return names
}
