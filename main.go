package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"kpicollector/internal/collect"
	"kpicollector/internal/config"
	"kpicollector/internal/coordinator"
	"kpicollector/internal/dataset"
	"kpicollector/internal/exporter"
	"kpicollector/internal/finance"
	"kpicollector/internal/trends"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Fall back to the DOW sample set when no tickers are configured
	tickers := cfg.Tickers
	if len(tickers) == 0 {
		for _, symbol := range dataset.StockMarket("DOW") {
			tickers = append(tickers, symbol)
		}
		sort.Strings(tickers)
	}

	// Add timeout to prevent hanging indefinitely
	runCtx, runCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer runCancel()

	fmt.Println("Collecting KPI data from multiple sources...")
	fmt.Println("================================================")

	batches := []coordinator.Batch{
		{
			Name: "finance",
			Run: func(ctx context.Context) (map[string]any, error) {
				return runFinanceBatch(ctx, cfg, tickers)
			},
		},
	}
	if len(cfg.Keywords) > 0 {
		batches = append(batches, coordinator.Batch{
			Name: "trends",
			Run: func(ctx context.Context) (map[string]any, error) {
				return runTrendsBatch(ctx, cfg)
			},
		})
	}

	coord := coordinator.New(batches)
	results, err := coord.Run(runCtx)
	if err != nil {
		log.Fatalf("Coordinator failed: %v", err)
	}

	for _, result := range results {
		if result.Error != nil {
			fmt.Printf("%s: ERROR - %v\n", result.Name, result.Error)
		} else {
			fmt.Printf("%s: collected %d results\n", result.Name, len(result.Product))
		}
	}

	if merged := coordinator.Merge(results); cfg.ExportPath != "" && len(merged) > 0 {
		if err := exporter.Export(cfg.ExportPath, merged); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Exported %d results to %s\n", len(merged), cfg.ExportPath)
	}

	fmt.Println("================================================")
	fmt.Println("All batches completed!")
}

// runFinanceBatch installs a finance builder over the tickers, runs the
// configured operations and drains the product.
func runFinanceBatch(ctx context.Context, cfg *config.Config, tickers []string) (map[string]any, error) {
	client := finance.NewClient(cfg.APIKey, cfg.FinanceBaseURL)
	builder, err := finance.NewBuilder(ctx, client, tickers)
	if err != nil {
		return nil, err
	}

	collector := finance.NewCollector()
	collector.SetBuilder(builder)

	var historyOpts *collect.HistoryOptions
	if cfg.HistoryPeriod != "" || cfg.HistoryInterval != "" {
		o := collect.DefaultHistoryOptions()
		if cfg.HistoryPeriod != "" {
			o.Period = cfg.HistoryPeriod
		}
		if cfg.HistoryInterval != "" {
			o.Interval = cfg.HistoryInterval
		}
		historyOpts = &o
	}

	for _, op := range cfg.Operations {
		var opErr error
		if op == finance.OpChartHistory {
			opErr = collector.FindChartHistory(ctx, historyOpts)
		} else {
			opErr = collector.Find(ctx, op)
		}
		if opErr != nil {
			fmt.Printf("%s: ERROR - %v\n", op, opErr)
		}
	}

	summary, err := collector.Summary()
	if err != nil {
		return nil, err
	}
	fmt.Println(summary)

	return collector.Collect()
}

// runTrendsBatch does the same for the configured search keywords.
func runTrendsBatch(ctx context.Context, cfg *config.Config) (map[string]any, error) {
	client := trends.NewClient(cfg.TrendsBaseURL, trends.Options{
		Timeframe: cfg.TrendTimeframe,
		Geo:       cfg.TrendGeo,
	})
	builder, err := trends.NewBuilder(ctx, client, cfg.Keywords)
	if err != nil {
		return nil, err
	}

	collector := trends.NewCollector()
	collector.SetBuilder(builder)

	for _, op := range cfg.TrendOperations {
		if err := collector.Find(ctx, op); err != nil {
			fmt.Printf("%s: ERROR - %v\n", op, err)
		}
	}

	summary, err := collector.Summary()
	if err != nil {
		return nil, err
	}
	fmt.Println(summary)

	return collector.Collect()
}
