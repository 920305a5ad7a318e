package nullity

import (
	"context"

	"kpicollector/internal/collect"
)

// Collector is the missing-data facade.
type Collector struct {
	collect.Collector
}

// NewCollector creates a nullity collector with no builder installed.
func NewCollector() *Collector {
	return &Collector{}
}

// VisualMissingData runs the full missing-data catalogue in order: matrix,
// bar, heatmap, dendrogram.
func (c *Collector) VisualMissingData(ctx context.Context) error {
	for _, op := range catalogue {
		if err := c.Find(ctx, op); err != nil {
			return err
		}
	}
	return nil
}

// FindNullityMatrix summarizes which cells are missing.
func (c *Collector) FindNullityMatrix(ctx context.Context) error {
	return c.Find(ctx, OpNullityMatrix)
}

// FindNullityBar summarizes the per-column completeness.
func (c *Collector) FindNullityBar(ctx context.Context) error {
	return c.Find(ctx, OpNullityBar)
}

// FindNullityHeatmap summarizes the pairwise nullity correlation.
func (c *Collector) FindNullityHeatmap(ctx context.Context) error {
	return c.Find(ctx, OpNullityHeatmap)
}

// FindNullityDendrogram orders the columns by nullity similarity.
func (c *Collector) FindNullityDendrogram(ctx context.Context) error {
	return c.Find(ctx, OpNullityDendrogram)
}
