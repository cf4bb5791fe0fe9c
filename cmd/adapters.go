package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/eykd/nanoid-go/internal/fs"
	"github.com/eykd/nanoid-go/internal/lock"
	"github.com/eykd/nanoid-go/internal/nanoid"
	"github.com/eykd/nanoid-go/internal/randsrc"
)

// lineAppender abstracts fs.OSAppender for the generate adapter.
type lineAppender interface {
	AppendLines(ctx context.Context, lines []string) error
}

// --- generateAdapter ---

type generateAdapter struct {
	// newAppender overrides how append targets are opened; nil means a
	// locked fs.OSAppender.
	newAppender func(path string) lineAppender
}

func (a *generateAdapter) appender(path string) lineAppender {
	if a.newAppender != nil {
		return a.newAppender(path)
	}
	return &fs.OSAppender{Path: path, Lock: lock.ForFile(path)}
}

// source picks the random source for req. A seeded stream is locked when
// several workers share it.
func (a *generateAdapter) source(req GenerateRequest) io.Reader {
	if req.Seed == nil {
		return randsrc.Crypto()
	}
	var src io.Reader = randsrc.NewSeeded(*req.Seed)
	if req.Workers > 1 {
		src = randsrc.Locked(src)
	}
	return src
}

func (a *generateAdapter) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	src := a.source(req)

	logger := req.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	g, err := nanoid.NewGenerator(
		nanoid.WithAlphabet(req.Alphabet),
		nanoid.WithSize(req.Size),
		nanoid.WithSource(src),
		nanoid.WithWorkers(req.Workers),
		nanoid.WithLogger(logger),
	)
	if err != nil {
		return nil, &UsageError{Err: err}
	}

	logger.Debug("generating",
		slog.Int("count", req.Count),
		slog.Int("size", req.Size),
		slog.Int("alphabet_len", req.Alphabet.Len()),
		slog.Bool("seeded", req.Seed != nil))

	ids, err := g.GenerateN(ctx, req.Count)
	if err != nil {
		return nil, &ContextError{Op: "generate", Err: err}
	}

	result := &GenerateResult{
		IDs:      ids,
		Alphabet: req.Alphabet.String(),
		Size:     req.Size,
	}

	if req.AppendPath != "" {
		if err := a.appender(req.AppendPath).AppendLines(ctx, ids); err != nil {
			return nil, &ContextError{Op: "append", Path: req.AppendPath, Err: err}
		}
		result.AppendedTo = req.AppendPath
	}
	return result, nil
}
