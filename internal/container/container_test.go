package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/kakeibo/internal/config"
	"fjacquet/kakeibo/internal/logging"
	"fjacquet/kakeibo/internal/models"
	"fjacquet/kakeibo/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Data.Backend = backend
	cfg.Data.Directory = t.TempDir()
	cfg.Categories.File = filepath.Join(t.TempDir(), "categories.yaml")
	cfg.Advice.NearLimitRatio = 0.8
	cfg.Advice.FoodThreshold = 30000
	cfg.Advice.TransportThreshold = 15000
	cfg.Advice.UtilitiesThreshold = 15000
	cfg.AI.Model = "gemini-2.0-flash"
	cfg.AI.TimeoutSeconds = 30
	cfg.CSV.Delimiter = ","
	return cfg
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.Config
		expectError bool
		errorMsg    string
		expectAI    bool
	}{
		{
			name:        "nil config",
			config:      func(*testing.T) *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "file backend without AI",
			config: func(t *testing.T) *config.Config { return testConfig(t, "file") },
		},
		{
			name:   "sqlite backend",
			config: func(t *testing.T) *config.Config { return testConfig(t, "sqlite") },
		},
		{
			name: "AI enabled",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t, "memory")
				cfg.AI.Enabled = true
				cfg.AI.APIKey = "test-key"
				return cfg
			},
			expectAI: true,
		},
		{
			name: "AI enabled without key stays off",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t, "memory")
				cfg.AI.Enabled = true
				return cfg
			},
		},
		{
			name:        "unknown backend",
			config:      func(t *testing.T) *config.Config { return testConfig(t, "redis") },
			expectError: true,
			errorMsg:    "failed to open redis store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(context.Background(), tt.config(t), logging.NewMockLogger())
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			defer c.Close()

			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetConfig())
			assert.NotNil(t, c.GetRepository())
			assert.NotNil(t, c.GetCategoryStore())
			assert.NotNil(t, c.GetClassifier())
			assert.NotEmpty(t, c.GetCategoryMeta())
			assert.NotNil(t, c.GetSuggester())
			assert.NotNil(t, c.GetAdviceEngine())
			assert.NotNil(t, c.GetEvaluator())
			assert.NotNil(t, c.GetDashboard())
			assert.NotNil(t, c.GetTracker())
			assert.Equal(t, tt.expectAI, c.AIEnabled())
			if tt.expectAI {
				assert.Equal(t, []string{"Keyword", "AI"}, c.GetSuggester().Strategies())
			} else {
				assert.Equal(t, []string{"Keyword"}, c.GetSuggester().Strategies())
			}
		})
	}
}

func TestContainer_UsesCategoriesFile(t *testing.T) {
	cfg := testConfig(t, "memory")
	require.NoError(t, os.WriteFile(cfg.Categories.File, []byte(`- name: Pets
  keywords: ["ペット"]
`), 0600))

	c, err := NewContainer(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()

	label, ok := c.GetClassifier().Classify("ペットフード")
	assert.True(t, ok)
	assert.Equal(t, "Pets", label)
}

func TestContainer_CategoryMetaFromCategoriesFile(t *testing.T) {
	cfg := testConfig(t, "memory")
	require.NoError(t, os.WriteFile(cfg.Categories.File, []byte(`- name: Pets
  keywords: ["ペット"]
  color: "#c8e6c9"
- name: Food
  keywords: ["スーパー"]
`), 0600))

	c, err := NewContainer(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()

	meta := c.GetCategoryMeta()
	assert.Equal(t, "#c8e6c9", meta.Lookup("Pets").Color)
	assert.Equal(t, "#ffe0b2", meta.Lookup(models.CategoryFood).Color)
	assert.Equal(t, "#f5f5f5", models.MetaFor("Pets").Color)
}

func TestContainer_AdviceThresholdsFromConfig(t *testing.T) {
	cfg := testConfig(t, "memory")
	cfg.Advice.FoodThreshold = 1000

	c, err := NewContainer(context.Background(), cfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, int64(1000), c.GetAdviceEngine().Thresholds().Food)
}

func TestContainer_EndToEndPersistence(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "file")

	first, err := NewContainer(ctx, cfg, logging.NewMockLogger())
	require.NoError(t, err)
	state, err := first.GetTracker().Load(ctx, "2024-05")
	require.NoError(t, err)
	_, err = first.GetTracker().AddEntry(ctx, state, tracker.AddRequest{Date: "2024-05-02", Amount: "32000", Memo: "外食"})
	require.NoError(t, err)
	_, err = first.GetTracker().SetBudget(ctx, state, "30000")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewContainer(ctx, cfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer second.Close()

	state, err = second.GetTracker().Load(ctx, "2024-05")
	require.NoError(t, err)
	view := second.GetTracker().View(state)
	assert.Equal(t, int64(32000), view.Summary.Expense)
	assert.Equal(t, models.BudgetOver, view.Budget.State)
	assert.True(t, models.HasAdvice(view.Advice, models.AdviceOverBudget))
	assert.True(t, models.HasAdvice(view.Advice, models.AdviceFood))
}
