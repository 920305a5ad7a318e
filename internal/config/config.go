package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the KPI collector application.
type Config struct {
	// API key for the quote backend
	APIKey string `mapstructure:"api_key"`

	// Base URLs for the backends (configurable for testing)
	FinanceBaseURL string `mapstructure:"finance_base_url"`
	TrendsBaseURL  string `mapstructure:"trends_base_url"`

	// Subjects to collect over
	Tickers  []string `mapstructure:"tickers"`
	Keywords []string `mapstructure:"keywords"`

	// Operations to run per batch (identifiers from the catalogues)
	Operations      []string `mapstructure:"operations"`
	TrendOperations []string `mapstructure:"trend_operations"`

	// Chart history options (empty fields fall back to the catalogue defaults)
	HistoryPeriod   string `mapstructure:"history_period"`
	HistoryInterval string `mapstructure:"history_interval"`

	// Trend search options
	TrendTimeframe string `mapstructure:"trend_timeframe"`
	TrendGeo       string `mapstructure:"trend_geo"`

	// ExportPath is an optional .xlsx destination for collected products
	ExportPath string `mapstructure:"export_path"`
}

// Load reads configuration from environment variables and optional config file.
// Environment variables take precedence over config file values.
//
// Expected environment variables:
//   - KPI_API_KEY
//   - KPI_FINANCE_BASE_URL (optional, defaults to production)
//   - KPI_TRENDS_BASE_URL (optional, defaults to production)
//   - KPI_EXPORT_PATH (optional)
func Load() (*Config, error) {
	v := viper.New()

	// Set up environment variable support
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("finance_base_url", "https://quotes.kpicollector.dev/api")
	v.SetDefault("trends_base_url", "https://trends.kpicollector.dev/api")
	v.SetDefault("operations", []string{
		"get_chart_history",
		"get_dividends",
		"get_splits",
		"get_actions",
		"get_info",
	})
	v.SetDefault("trend_operations", []string{
		"get_interest_over_time",
		"get_interest_by_region",
		"get_related_queries",
	})

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.kpicollector")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	// Bind environment variables
	v.BindEnv("api_key", "KPI_API_KEY")
	v.BindEnv("finance_base_url", "KPI_FINANCE_BASE_URL")
	v.BindEnv("trends_base_url", "KPI_TRENDS_BASE_URL")
	v.BindEnv("export_path", "KPI_EXPORT_PATH")

	// Unmarshal config into struct (handles both simple and complex fields)
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	var missing []string
	if config.APIKey == "" {
		missing = append(missing, "KPI_API_KEY")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return config, nil
}
