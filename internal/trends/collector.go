package trends

import (
	"context"

	"kpicollector/internal/collect"
)

// Collector is the trend-search facade.
type Collector struct {
	collect.Collector
}

// NewCollector creates a trends collector with no builder installed.
func NewCollector() *Collector {
	return &Collector{}
}

type regionGetter interface {
	GetInterestByRegion(ctx context.Context, resolution string) error
}

// FindInterestOverTime searches the interest of the keywords over time.
func (c *Collector) FindInterestOverTime(ctx context.Context) error {
	return c.Find(ctx, OpInterestOverTime)
}

// FindInterestByRegion searches the regional interest of the keywords. An
// empty resolution defaults to a per-country breakdown.
func (c *Collector) FindInterestByRegion(ctx context.Context, resolution string) error {
	b := c.Builder()
	if b == nil {
		return collect.NewNoBuilderError(OpInterestByRegion)
	}
	if getter, ok := b.(regionGetter); ok {
		return getter.GetInterestByRegion(ctx, resolution)
	}
	return b.Get(ctx, OpInterestByRegion)
}

// FindRelatedTopics searches the related topics of every keyword.
func (c *Collector) FindRelatedTopics(ctx context.Context) error {
	return c.Find(ctx, OpRelatedTopics)
}

// FindRelatedQueries searches the related queries of every keyword.
func (c *Collector) FindRelatedQueries(ctx context.Context) error {
	return c.Find(ctx, OpRelatedQueries)
}

// FindSuggestions searches the keyword suggestions of every keyword.
func (c *Collector) FindSuggestions(ctx context.Context) error {
	return c.Find(ctx, OpSuggestions)
}
