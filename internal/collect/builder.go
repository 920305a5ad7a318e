package collect

import "context"

// Builder is the capability contract every concrete collection backend
// implements. A builder is constructed over a fixed subject set (ticker
// symbols, search keywords, column names) with one live backend session per
// subject, and holds the product its operations accumulate into.
//
// Each operation in the builder's catalogue translates to exactly one backend
// call; its only observable effect is an entry in the product, keyed by the
// operation's own identifier. Operations are independent of each other and
// never read back previously stored entries.
type Builder interface {
	// Subjects returns the subject set this builder was constructed over.
	Subjects() []string

	// Operations returns the identifiers in the builder's fixed catalogue,
	// in catalogue order.
	Operations() []string

	// Get executes the named operation and stores its result in the product.
	// Unknown identifiers fail with an attribute_unavailable error.
	Get(ctx context.Context, op string) error

	// Summary lists the identifiers collected so far.
	Summary() string

	// Collect drains the product: it returns everything accumulated since
	// the last drain and resets the product to empty.
	Collect() map[string]any
}

// Session is a live per-subject backend handle, created once at builder
// construction and reused across operations.
type Session interface {
	// Attribute fetches one named sub-attribute of the session's subject.
	// The payload shape is operation-specific: a tabular dataset or a
	// nested mapping.
	Attribute(ctx context.Context, name string) (any, error)
}
