package finance

import (
	"context"

	"kpicollector/internal/collect"
)

// Builder is the concrete finance capability implementation. It is
// constructed over a fixed ticker list with one live backend session per
// ticker, and accumulates every operation result into its product.
type Builder struct {
	subjects []string
	client   *Client
	sessions map[string]collect.Session
	product  *collect.Product
}

// NewBuilder opens one backend session per ticker and returns a builder over
// them. Opening fails fast on the first unresolvable symbol or unreachable
// backend.
func NewBuilder(ctx context.Context, client *Client, tickers []string) (*Builder, error) {
	sessions := make(map[string]collect.Session, len(tickers))
	for _, ticker := range tickers {
		sess, err := client.Open(ctx, ticker)
		if err != nil {
			return nil, err
		}
		sessions[ticker] = sess
	}

	return &Builder{
		subjects: tickers,
		client:   client,
		sessions: sessions,
		product:  collect.NewProduct(),
	}, nil
}

// Subjects returns the ticker list this builder queries.
func (b *Builder) Subjects() []string {
	return b.subjects
}

// Operations returns the finance catalogue in order.
func (b *Builder) Operations() []string {
	return append([]string(nil), catalogue...)
}

// Get executes the named operation. Fan-out operations fetch one attribute
// per ticker via the shared session map; the chart-history operation runs the
// bulk download with default options.
func (b *Builder) Get(ctx context.Context, op string) error {
	if op == OpChartHistory {
		return b.GetChartHistory(ctx, collect.DefaultHistoryOptions())
	}

	attr, ok := registry[op]
	if !ok {
		return collect.NewAttributeUnavailableError(op, "")
	}

	values, err := collect.AllSubjects(ctx, b.sessions, b.subjects, attr)
	if err != nil {
		return err
	}
	b.product.Add(op, values)
	return nil
}

// GetChartHistory runs the bulk history download across all tickers and
// stores the combined table under get_chart_history.
func (b *Builder) GetChartHistory(ctx context.Context, opts collect.HistoryOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	frame, err := b.client.History(ctx, b.subjects, opts)
	if err != nil {
		return err
	}
	b.product.Add(OpChartHistory, frame)
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
