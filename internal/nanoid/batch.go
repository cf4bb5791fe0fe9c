package nanoid

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/eykd/nanoid-go/internal/domain"
)

// GenerateN returns n IDs. With one worker they are generated in order on
// the calling goroutine; otherwise up to the configured number of workers
// run concurrently and the first error cancels the rest.
func (g *Generator) GenerateN(ctx context.Context, n int) ([]string, error) {
	if err := domain.ValidateCount(n); err != nil {
		return nil, err
	}

	ids := make([]string, n)

	if g.workers == 1 {
		for i := range ids {
			id, err := g.GenerateContext(ctx)
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}
		return ids, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i := range ids {
		eg.Go(func() error {
			id, err := g.GenerateContext(ctx)
			if err != nil {
				return err
			}
			ids[i] = id
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}
