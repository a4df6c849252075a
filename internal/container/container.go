// Package container provides dependency injection for the kakeibo application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/kakeibo/internal/advice"
	"fjacquet/kakeibo/internal/aggregator"
	"fjacquet/kakeibo/internal/budget"
	"fjacquet/kakeibo/internal/categorizer"
	"fjacquet/kakeibo/internal/config"
	"fjacquet/kakeibo/internal/dashboard"
	"fjacquet/kakeibo/internal/factory"
	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"
	"fjacquet/kakeibo/internal/store"
	"fjacquet/kakeibo/internal/tracker"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation. Fields are private and only reachable
// through getter methods.
type Container struct {
	logger        logging.Logger
	config        *config.Config
	kv            store.KeyValueStore
	repository    *store.Repository
	categoryStore *store.CategoryStore
	aiClient      *categorizer.GeminiClient
	keywords      *categorizer.KeywordStrategy
	categoryMeta  models.CategoryMetaTable
	suggester     *categorizer.Suggester
	advisor       *advice.Engine
	evaluator     *budget.Evaluator
	dashboard     *dashboard.Dashboard
	tracker       *tracker.Service
}

// NewContainer creates and wires all application dependencies.
// A nil logger builds one from the configuration.
func NewContainer(ctx context.Context, cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	kv, err := factory.GetStore(ctx, factory.BackendType(cfg.Data.Backend), cfg.DataDirectory(), cfg.Data.File, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Data.Backend, err)
	}
	repository := store.NewRepository(kv, logger)

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	keywords := categorizer.NewKeywordStrategy(categoryStore, logger)
	categoryMeta := models.NewCategoryMetaTable(keywords.Groups())
	strategies := []categorizer.SuggestionStrategy{keywords}

	var aiClient *categorizer.GeminiClient
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		aiClient = categorizer.NewGeminiClient(cfg.AI.APIKey, cfg.AI.Model, logger)
		strategies = append(strategies,
			categorizer.NewAIStrategy(aiClient, keywords.Classifier().Labels(), cfg.AITimeout(), logger))
		logger.Debug("AI category suggestion enabled")
	}
	suggester := categorizer.NewSuggester(logger, strategies...)

	evaluator := budget.NewEvaluator(cfg.NearLimitRatio())
	advisor := advice.NewEngine(advice.Thresholds{
		NearLimitRatio: cfg.NearLimitRatio(),
		Food:           cfg.Advice.FoodThreshold,
		Transport:      cfg.Advice.TransportThreshold,
		Utilities:      cfg.Advice.UtilitiesThreshold,
	})
	dash := dashboard.New(aggregator.NewMonthlyAggregator(logger), evaluator, advisor)

	svc := tracker.NewService(repository, suggester, dash, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldBackend, Value: cfg.Data.Backend},
		logging.Field{Key: "ai_enabled", Value: aiClient != nil})

	return &Container{
		logger:        logger,
		config:        cfg,
		kv:            kv,
		repository:    repository,
		categoryStore: categoryStore,
		aiClient:      aiClient,
		keywords:      keywords,
		categoryMeta:  categoryMeta,
		suggester:     suggester,
		advisor:       advisor,
		evaluator:     evaluator,
		dashboard:     dash,
		tracker:       svc,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRepository returns the entry repository.
func (c *Container) GetRepository() *store.Repository {
	return c.repository
}

// GetCategoryStore returns the category file store.
func (c *Container) GetCategoryStore() *store.CategoryStore {
	return c.categoryStore
}

// GetClassifier returns the keyword classifier in use.
func (c *Container) GetClassifier() *categorizer.Classifier {
	return c.keywords.Classifier()
}

// GetCategoryMeta returns the category display metadata, including colors from the categories file.
func (c *Container) GetCategoryMeta() models.CategoryMetaTable {
	return c.categoryMeta
}

// GetSuggester returns the category suggestion chain.
func (c *Container) GetSuggester() *categorizer.Suggester {
	return c.suggester
}

// GetAdviceEngine returns the advice engine.
func (c *Container) GetAdviceEngine() *advice.Engine {
	return c.advisor
}

// GetEvaluator returns the budget evaluator.
func (c *Container) GetEvaluator() *budget.Evaluator {
	return c.evaluator
}

// GetDashboard returns the dashboard.
func (c *Container) GetDashboard() *dashboard.Dashboard {
	return c.dashboard
}

// GetTracker returns the ledger service.
func (c *Container) GetTracker() *tracker.Service {
	return c.tracker
}

// AIEnabled reports whether AI suggestions are wired in.
func (c *Container) AIEnabled() bool {
	return c.aiClient != nil
}

// Close releases the storage backend and the AI client.
func (c *Container) Close() error {
	var firstErr error
	if c.aiClient != nil {
		if err := c.aiClient.Close(); err != nil {
			firstErr = err
		}
	}
	if err := c.repository.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	c.logger.Debug("Container closed")
	return firstErr
}
