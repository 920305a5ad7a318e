package collect

import (
	"fmt"
	"strings"
)

// Product accumulates one result per operation identifier. Each builder owns
// exactly one Product; operations write into it and the caller drains it with
// Collect. A Product is owned by a single in-flight operation at a time and is
// not safe for concurrent writers.
type Product struct {
	parts map[string]any
	order []string
}

// NewProduct creates an empty product.
func NewProduct() *Product {
	return &Product{parts: make(map[string]any)}
}

// Add stores value under the operation identifier op. A repeated Add for the
// same identifier overwrites the prior value; the identifier keeps its
// original position in the insertion order.
func (p *Product) Add(op string, value any) {
	if _, ok := p.parts[op]; !ok {
		p.order = append(p.order, op)
	}
	p.parts[op] = value
}

// Len returns the number of collected parts.
func (p *Product) Len() int {
	return len(p.parts)
}

// Summary returns a human-readable listing of the collected identifiers in
// insertion order, e.g. "Product parts: get_splits, get_actions".
func (p *Product) Summary() string {
	return fmt.Sprintf("Product parts: %s", strings.Join(p.order, ", "))
}

// Collect returns the full current mapping and resets the product to empty.
// A second Collect without intervening Add calls returns an empty map; the
// caller is expected to drain each batch exactly once.
func (p *Product) Collect() map[string]any {
	parts := p.parts
	p.parts = make(map[string]any)
	p.order = nil
	return parts
}
