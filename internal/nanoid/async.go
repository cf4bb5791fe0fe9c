package nanoid

import (
	"context"
	"crypto/rand"
)

// Result is the outcome of an asynchronous generation.
type Result struct {
	ID  string
	Err error
}

// GenerateAsync generates an ID on a new goroutine. The returned channel
// receives exactly one Result and is then closed.
func (g *Generator) GenerateAsync(ctx context.Context) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		id, err := g.GenerateContext(ctx)
		out <- Result{ID: id, Err: err}
	}()
	return out
}

// GenerateAsync is the asynchronous form of Generate. Argument errors are
// delivered on the channel like any other failure.
func GenerateAsync(ctx context.Context, alphabet string, size int) <-chan Result {
	g, err := newFromArgs(rand.Reader, alphabet, size)
	if err != nil {
		out := make(chan Result, 1)
		out <- Result{Err: err}
		close(out)
		return out
	}
	return g.GenerateAsync(ctx)
}
