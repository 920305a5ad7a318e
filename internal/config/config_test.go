package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	// Set up environment variables
	envVars := map[string]string{
		"KPI_API_KEY":          "test_api_key",
		"KPI_FINANCE_BASE_URL": "http://localhost:8080/api",
		"KPI_TRENDS_BASE_URL":  "http://localhost:8081/api",
		"KPI_EXPORT_PATH":      "/tmp/kpi.xlsx",
	}

	// Set environment variables
	for key, value := range envVars {
		os.Setenv(key, value)
		defer os.Unsetenv(key)
	}

	// Load configuration
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	// Verify all fields are set correctly
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"APIKey", cfg.APIKey, "test_api_key"},
		{"FinanceBaseURL", cfg.FinanceBaseURL, "http://localhost:8080/api"},
		{"TrendsBaseURL", cfg.TrendsBaseURL, "http://localhost:8081/api"},
		{"ExportPath", cfg.ExportPath, "/tmp/kpi.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	// Set only the required environment variable
	os.Setenv("KPI_API_KEY", "test_api_key")
	defer os.Unsetenv("KPI_API_KEY")

	// Ensure optional env vars are unset
	optionalVars := []string{
		"KPI_FINANCE_BASE_URL",
		"KPI_TRENDS_BASE_URL",
		"KPI_EXPORT_PATH",
	}
	for _, key := range optionalVars {
		os.Unsetenv(key)
	}

	// Load configuration
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	// Verify default base URLs are used
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"FinanceBaseURL", cfg.FinanceBaseURL, "https://quotes.kpicollector.dev/api"},
		{"TrendsBaseURL", cfg.TrendsBaseURL, "https://trends.kpicollector.dev/api"},
		{"ExportPath", cfg.ExportPath, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Verify the default operation sets are populated
	if len(cfg.Operations) == 0 || cfg.Operations[0] != "get_chart_history" {
		t.Errorf("Operations = %v, want default set starting with get_chart_history", cfg.Operations)
	}
	if len(cfg.TrendOperations) == 0 {
		t.Errorf("TrendOperations = %v, want a non-empty default set", cfg.TrendOperations)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("KPI_API_KEY")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}

	// Verify error message names the missing variable
	if !strings.Contains(err.Error(), "missing required configuration") ||
		!strings.Contains(err.Error(), "KPI_API_KEY") {
		t.Errorf("Load() error = %q, want error naming KPI_API_KEY", err.Error())
	}
}
