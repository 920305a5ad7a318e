package trends

import (
	"context"

	"kpicollector/internal/collect"
)

// Builder is the concrete trend-search capability implementation over a fixed
// keyword list.
type Builder struct {
	subjects []string
	client   *Client
	sessions map[string]collect.Session
	product  *collect.Product
}

// NewBuilder opens one backend session per keyword and returns a builder over
// them.
func NewBuilder(ctx context.Context, client *Client, keywords []string) (*Builder, error) {
	sessions := make(map[string]collect.Session, len(keywords))
	for _, keyword := range keywords {
		sess, err := client.Open(ctx, keyword)
		if err != nil {
			return nil, err
		}
		sessions[keyword] = sess
	}

	return &Builder{
		subjects: keywords,
		client:   client,
		sessions: sessions,
		product:  collect.NewProduct(),
	}, nil
}

// Subjects returns the keyword list this builder queries.
func (b *Builder) Subjects() []string {
	return b.subjects
}

// Operations returns the trends catalogue in order.
func (b *Builder) Operations() []string {
	return append([]string(nil), catalogue...)
}

// Get executes the named operation: bulk interest operations run one combined
// request, the rest fan out per keyword.
func (b *Builder) Get(ctx context.Context, op string) error {
	spec, ok := registry[op]
	if !ok {
		return collect.NewAttributeUnavailableError(op, "")
	}

	if spec.bulk {
		resolution := ""
		if op == OpInterestByRegion {
			resolution = DefaultResolution
		}
		return b.getInterest(ctx, op, spec.attr, resolution)
	}

	values, err := collect.AllSubjects(ctx, b.sessions, b.subjects, spec.attr)
	if err != nil {
		return err
	}
	b.product.Add(op, values)
	return nil
}

// GetInterestByRegion runs the regional interest download with an explicit
// resolution (COUNTRY, REGION, CITY, DMA).
func (b *Builder) GetInterestByRegion(ctx context.Context, resolution string) error {
	if resolution == "" {
		resolution = DefaultResolution
	}
	return b.getInterest(ctx, OpInterestByRegion, registry[OpInterestByRegion].attr, resolution)
}

func (b *Builder) getInterest(ctx context.Context, op, attr, resolution string) error {
	frame, err := b.client.Interest(ctx, b.subjects, attr, resolution)
	if err != nil {
		return err
	}
	b.product.Add(op, frame)
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
