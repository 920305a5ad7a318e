package collect

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AllSubjects fetches one named backend attribute per subject and returns a
// subject -> raw value mapping. This is the shared fan-out used by every
// per-subject operation instead of each operation duplicating the loop.
//
// Subjects are independent, so the fan-out runs them concurrently; each
// goroutine writes into its own slot and the results are merged into a single
// map only after every fetch has returned. A subject without a session fails
// the whole fan-out with an unknown_subject error before any request is made,
// and any attribute failure cancels the remaining fetches.
func AllSubjects(ctx context.Context, sessions map[string]Session, subjects []string, attr string) (map[string]any, error) {
	for _, subject := range subjects {
		if _, ok := sessions[subject]; !ok {
			return nil, NewUnknownSubjectError(subject)
		}
	}

	values := make([]any, len(subjects))
	g, ctx := errgroup.WithContext(ctx)
	for i, subject := range subjects {
		i := i
		sess := sessions[subject]
		g.Go(func() error {
			value, err := sess.Attribute(ctx, attr)
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(subjects))
	for i, subject := range subjects {
		out[subject] = values[i]
	}
	return out, nil
}
