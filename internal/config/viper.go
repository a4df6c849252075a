package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
		Backend   string `mapstructure:"backend" yaml:"backend"`
		File      string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"data" yaml:"data"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Advice struct {
		NearLimitRatio     float64 `mapstructure:"near_limit_ratio" yaml:"near_limit_ratio"`
		FoodThreshold      int64   `mapstructure:"food_threshold" yaml:"food_threshold"`
		TransportThreshold int64   `mapstructure:"transport_threshold" yaml:"transport_threshold"`
		UtilitiesThreshold int64   `mapstructure:"utilities_threshold" yaml:"utilities_threshold"`
	} `mapstructure:"advice" yaml:"advice"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// An empty configFile searches the standard locations.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.kakeibo")
		v.AddConfigPath(".kakeibo")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("KAKEIBO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	// 5. API key is also read from the unprefixed variable
	if err := v.BindEnv("ai.api_key", "KAKEIBO_AI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "")
	v.SetDefault("data.backend", "file")
	v.SetDefault("data.file", "")

	v.SetDefault("categories.file", "categories.yaml")

	v.SetDefault("advice.near_limit_ratio", 0.8)
	v.SetDefault("advice.food_threshold", 30000)
	v.SetDefault("advice.transport_threshold", 15000)
	v.SetDefault("advice.utilities_threshold", 15000)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("csv.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	switch config.Data.Backend {
	case "file", "sqlite", "memory":
	default:
		return fmt.Errorf("invalid data backend: %s (must be 'file', 'sqlite' or 'memory')", config.Data.Backend)
	}

	if config.Advice.NearLimitRatio <= 0 || config.Advice.NearLimitRatio > 1 {
		return fmt.Errorf("advice.near_limit_ratio must be in (0, 1], got: %g", config.Advice.NearLimitRatio)
	}
	if config.Advice.FoodThreshold < 0 || config.Advice.TransportThreshold < 0 || config.Advice.UtilitiesThreshold < 0 {
		return fmt.Errorf("advice thresholds must not be negative")
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}

	return nil
}

// NearLimitRatio returns the advice near-limit ratio as a decimal
func (c *Config) NearLimitRatio() decimal.Decimal {
	return decimal.NewFromFloat(c.Advice.NearLimitRatio)
}

// AITimeout returns the AI request timeout
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

// DataDirectory returns the configured data directory or the default one
func (c *Config) DataDirectory() string {
	if c.Data.Directory != "" {
		return c.Data.Directory
	}
	return DefaultDataDir()
}

// CSVDelimiter returns the CSV delimiter as a rune
func (c *Config) CSVDelimiter() rune {
	for _, r := range c.CSV.Delimiter {
		return r
	}
	return ','
}
