package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"kpicollector/internal/collect"
	"kpicollector/internal/coordinator"
	"kpicollector/internal/exporter"
	"kpicollector/internal/finance"
	"kpicollector/internal/trends"
)

// newQuoteBackend serves the quote API surface: symbol lookup, bulk chart
// history and per-ticker attributes.
func newQuoteBackend(delay time.Duration) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if delay > 0 {
			time.Sleep(delay)
		}
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/v1/lookup":
			if r.URL.Query().Get("symbol") == "NOPE" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`{"resolved": true}`))

		case r.URL.Path == "/v1/history":
			w.Write([]byte(`{
				"columns": ["Date", "Open", "Close"],
				"rows": [["2024-01-02", 185.2, 186.1], ["2024-01-03", 186.0, 184.9]]
			}`))

		case strings.HasPrefix(r.URL.Path, "/v1/ticker/"):
			parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/v1/ticker/"), "/")
			if len(parts) == 2 && parts[1] == "sustainability" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`{"value": 1.25}`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

// newTrendsBackend serves the trends API surface: keyword resolution, combined
// interest tables and per-keyword attributes.
func newTrendsBackend(delay time.Duration) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if delay > 0 {
			time.Sleep(delay)
		}
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/v1/resolve":
			w.Write([]byte(`{"resolved": true}`))

		case strings.HasPrefix(r.URL.Path, "/v1/interest/"):
			w.Write([]byte(`{
				"columns": ["date", "bitcoin"],
				"rows": [["2024-01-01", 71], ["2024-01-08", 64]]
			}`))

		case strings.HasPrefix(r.URL.Path, "/v1/keyword/"):
			w.Write([]byte(`["bitcoin price", "bitcoin etf"]`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

// TestIntegration_FullFlow runs both collection batches concurrently through
// the coordinator and exports the merged product to a workbook.
func TestIntegration_FullFlow(t *testing.T) {
	quoteServer := newQuoteBackend(0)
	defer quoteServer.Close()
	trendsServer := newTrendsBackend(0)
	defer trendsServer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	batches := []coordinator.Batch{
		{
			Name: "finance",
			Run: func(ctx context.Context) (map[string]any, error) {
				client := finance.NewClient("test_key", quoteServer.URL)
				builder, err := finance.NewBuilder(ctx, client, []string{"AAPL", "MSFT"})
				if err != nil {
					return nil, err
				}

				collector := finance.NewCollector()
				collector.SetBuilder(builder)
				if err := collector.FindChartHistory(ctx, nil); err != nil {
					return nil, err
				}
				if err := collector.FindDividends(ctx); err != nil {
					return nil, err
				}
				return collector.Collect()
			},
		},
		{
			Name: "trends",
			Run: func(ctx context.Context) (map[string]any, error) {
				client := trends.NewClient(trendsServer.URL, trends.Options{})
				builder, err := trends.NewBuilder(ctx, client, []string{"bitcoin"})
				if err != nil {
					return nil, err
				}

				collector := trends.NewCollector()
				collector.SetBuilder(builder)
				if err := collector.FindInterestOverTime(ctx); err != nil {
					return nil, err
				}
				if err := collector.FindSuggestions(ctx); err != nil {
					return nil, err
				}
				return collector.Collect()
			},
		},
	}

	results, err := coordinator.New(batches).Run(ctx)
	if err != nil {
		t.Fatalf("coordinator.Run() failed: %v", err)
	}
	for _, result := range results {
		if result.Error != nil {
			t.Fatalf("batch %s failed: %v", result.Name, result.Error)
		}
		if len(result.Product) != 2 {
			t.Errorf("batch %s collected %d results, want 2", result.Name, len(result.Product))
		}
	}

	merged := coordinator.Merge(results)
	for _, key := range []string{
		"finance.get_chart_history",
		"finance.get_dividends",
		"trends.get_interest_over_time",
		"trends.get_suggestions",
	} {
		if _, ok := merged[key]; !ok {
			t.Errorf("merged product missing %q", key)
		}
	}

	path := filepath.Join(t.TempDir(), "kpi.xlsx")
	if err := exporter.Export(path, merged); err != nil {
		t.Fatalf("exporter.Export() failed: %v", err)
	}
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer workbook.Close()
	if got := len(workbook.GetSheetList()); got != 4 {
		t.Errorf("workbook has %d sheets, want 4", got)
	}
}

// TestIntegration_ConcurrentBatches tests that batches run concurrently
func TestIntegration_ConcurrentBatches(t *testing.T) {
	// Every backend request takes 50ms; each batch makes three
	quoteServer := newQuoteBackend(50 * time.Millisecond)
	defer quoteServer.Close()
	trendsServer := newTrendsBackend(50 * time.Millisecond)
	defer trendsServer.Close()

	financeBatch := coordinator.Batch{
		Name: "finance",
		Run: func(ctx context.Context) (map[string]any, error) {
			client := finance.NewClient("test_key", quoteServer.URL)
			builder, err := finance.NewBuilder(ctx, client, []string{"AAPL"})
			if err != nil {
				return nil, err
			}
			collector := finance.NewCollector()
			collector.SetBuilder(builder)
			if err := collector.FindSplits(ctx); err != nil {
				return nil, err
			}
			if err := collector.FindActions(ctx); err != nil {
				return nil, err
			}
			return collector.Collect()
		},
	}
	trendsBatch := coordinator.Batch{
		Name: "trends",
		Run: func(ctx context.Context) (map[string]any, error) {
			client := trends.NewClient(trendsServer.URL, trends.Options{})
			builder, err := trends.NewBuilder(ctx, client, []string{"bitcoin"})
			if err != nil {
				return nil, err
			}
			collector := trends.NewCollector()
			collector.SetBuilder(builder)
			if err := collector.FindRelatedQueries(ctx); err != nil {
				return nil, err
			}
			if err := collector.FindRelatedTopics(ctx); err != nil {
				return nil, err
			}
			return collector.Collect()
		},
	}

	start := time.Now()
	results, err := coordinator.New([]coordinator.Batch{financeBatch, trendsBatch}).Run(context.Background())
	duration := time.Since(start)

	if err != nil {
		t.Fatalf("coordinator.Run() failed: %v", err)
	}
	for _, result := range results {
		if result.Error != nil {
			t.Fatalf("batch %s failed: %v", result.Name, result.Error)
		}
	}

	// Sequential execution would take ~300ms; concurrent should stay near
	// a single batch's ~150ms
	if duration > 250*time.Millisecond {
		t.Errorf("batches likely ran sequentially, duration = %v", duration)
	}
}

// TestIntegration_PartialFailures tests that one failing operation leaves the
// rest of the batch intact
func TestIntegration_PartialFailures(t *testing.T) {
	quoteServer := newQuoteBackend(0)
	defer quoteServer.Close()

	ctx := context.Background()
	client := finance.NewClient("test_key", quoteServer.URL)
	builder, err := finance.NewBuilder(ctx, client, []string{"AAPL"})
	if err != nil {
		t.Fatalf("finance.NewBuilder() failed: %v", err)
	}

	collector := finance.NewCollector()
	collector.SetBuilder(builder)

	if err := collector.FindDividends(ctx); err != nil {
		t.Fatalf("FindDividends() failed: %v", err)
	}
	// The backend has no sustainability data for any ticker
	err = collector.FindSustainability(ctx)
	if collect.KindOf(err) != collect.KindAttributeUnavailable {
		t.Fatalf("FindSustainability() error = %v, want attribute_unavailable", err)
	}
	if err := collector.FindSplits(ctx); err != nil {
		t.Fatalf("FindSplits() after a failed operation failed: %v", err)
	}

	product, err := collector.Collect()
	if err != nil {
		t.Fatalf("Collect() failed: %v", err)
	}
	if len(product) != 2 {
		t.Errorf("product has %d entries, want the 2 successful operations", len(product))
	}
	if _, ok := product[finance.OpSustainability]; ok {
		t.Error("failed operation left a partial product entry")
	}
}

// TestIntegration_ContextTimeout tests that context timeout is respected
func TestIntegration_ContextTimeout(t *testing.T) {
	// Create a server that never responds
	hangingServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer hangingServer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := finance.NewClient("test_key", hangingServer.URL)
	start := time.Now()
	_, err := finance.NewBuilder(ctx, client, []string{"AAPL"})
	duration := time.Since(start)

	if err == nil {
		t.Fatal("NewBuilder() succeeded against a hanging backend")
	}
	// Should fail at the 50ms deadline, not sit out the full retry backoff
	if duration > time.Second {
		t.Errorf("context timeout not respected, duration = %v", duration)
	}
}
