package collect

import "context"

// Collector is the director of the collection pattern: it holds at most one
// installed builder and forwards named operations to it. The collector itself
// validates nothing; parameter and subject validation is the builder's (or
// backend's) job.
type Collector struct {
	builder Builder
}

// New creates a collector with no builder installed. Every forwarding call
// fails with a no_builder_installed error until SetBuilder is called.
func New() *Collector {
	return &Collector{}
}

// Builder returns the currently installed builder, or nil.
func (c *Collector) Builder() Builder {
	return c.builder
}

// SetBuilder installs b as the dispatch target for subsequent Find calls.
// Replacing an installed builder does not drain it: any unread product stays
// with the previous builder and the caller must Collect before swapping.
func (c *Collector) SetBuilder(b Builder) {
	c.builder = b
}

// Find forwards the named operation to the installed builder.
func (c *Collector) Find(ctx context.Context, op string) error {
	if c.builder == nil {
		return NewNoBuilderError(op)
	}
	return c.builder.Get(ctx, op)
}

// Summary returns the installed builder's product summary.
func (c *Collector) Summary() (string, error) {
	if c.builder == nil {
		return "", NewNoBuilderError("summary")
	}
	return c.builder.Summary(), nil
}

// Collect drains the installed builder's product.
func (c *Collector) Collect() (map[string]any, error) {
	if c.builder == nil {
		return nil, NewNoBuilderError("collect")
	}
	return c.builder.Collect(), nil
}
