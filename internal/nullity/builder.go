package nullity

import (
	"context"

	"kpicollector/internal/collect"
	"kpicollector/internal/dataset"
)

// Operation identifiers in the missing-data catalogue.
const (
	OpNullityMatrix     = "get_nullity_matrix"
	OpNullityBar        = "get_nullity_bar"
	OpNullityHeatmap    = "get_nullity_heatmap"
	OpNullityDendrogram = "get_nullity_dendrogram"
)

var registry = map[string]func(*dataset.Frame) any{
	OpNullityMatrix:     func(f *dataset.Frame) any { return matrix(f) },
	OpNullityBar:        func(f *dataset.Frame) any { return bar(f) },
	OpNullityHeatmap:    func(f *dataset.Frame) any { return heatmap(f) },
	OpNullityDendrogram: func(f *dataset.Frame) any { return dendrogram(f) },
}

var catalogue = []string{
	OpNullityMatrix,
	OpNullityBar,
	OpNullityHeatmap,
	OpNullityDendrogram,
}

// Builder is the missing-data capability implementation. Its backend is the
// in-memory frame itself: subjects are the frame's column names and every
// operation derives a summary table from the frame's null mask.
type Builder struct {
	frame   *dataset.Frame
	product *collect.Product
}

// NewBuilder creates a builder over the frame under inspection.
func NewBuilder(frame *dataset.Frame) *Builder {
	return &Builder{
		frame:   frame,
		product: collect.NewProduct(),
	}
}

// Subjects returns the column names of the inspected frame.
func (b *Builder) Subjects() []string {
	return append([]string(nil), b.frame.Columns...)
}

// Operations returns the missing-data catalogue in order.
func (b *Builder) Operations() []string {
	return append([]string(nil), catalogue...)
}

// Get executes the named operation and stores its summary in the product.
func (b *Builder) Get(_ context.Context, op string) error {
	compute, ok := registry[op]
	if !ok {
		return collect.NewAttributeUnavailableError(op, "")
	}
	b.product.Add(op, compute(b.frame))
	return nil
}

// Summary lists the identifiers collected so far.
func (b *Builder) Summary() string {
	return b.product.Summary()
}

// Collect drains the product.
func (b *Builder) Collect() map[string]any {
	return b.product.Collect()
}
