package coordinator

import (
	"context"
	"fmt"
	"sync"
)

// Batch is one named collection run. Run installs a builder, executes its
// operations and returns the drained product.
type Batch struct {
	Name string
	Run  func(ctx context.Context) (map[string]any, error)
}

// Result pairs a batch name with its drained product or failure.
type Result struct {
	Name    string
	Product map[string]any
	Error   error
}

// Coordinator manages concurrent collection batches and aggregates results
type Coordinator struct {
	batches []Batch
}

// New creates a new Coordinator with the given batches
func New(batches []Batch) *Coordinator {
	return &Coordinator{
		batches: batches,
	}
}

// Run executes all batches concurrently and returns their results in arrival
// order. Each batch runs in its own goroutine and sends its result to a shared
// channel. A failing batch does not stop the others; its error travels in its
// Result.
func (c *Coordinator) Run(ctx context.Context) ([]Result, error) {
	if len(c.batches) == 0 {
		return nil, fmt.Errorf("no batches configured")
	}

	// Create a channel for collecting results
	resultChan := make(chan Result, len(c.batches))

	// WaitGroup to track all worker goroutines
	var wg sync.WaitGroup

	// Launch a goroutine for each batch
	for _, b := range c.batches {
		wg.Add(1)
		go func(b Batch) {
			defer wg.Done()

			product, err := b.Run(ctx)

			resultChan <- Result{
				Name:    b.Name,
				Product: product,
				Error:   err,
			}
		}(b)
	}

	// Close the result channel when all workers are done
	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]Result, 0, len(c.batches))
	for result := range resultChan {
		results = append(results, result)
	}

	return results, nil
}

// Merge flattens successful batch products into one mapping, prefixing each
// operation key with its batch name.
func Merge(results []Result) map[string]any {
	merged := make(map[string]any)
	for _, result := range results {
		if result.Error != nil {
			continue
		}
		for op, value := range result.Product {
			merged[fmt.Sprintf("%s.%s", result.Name, op)] = value
		}
	}
	return merged
}
