// Package fs provides filesystem adapters for the CLI.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Locker abstracts the advisory lock held while appending.
type Locker interface {
	Acquire(ctx context.Context) error
	Release() error
}

// OSAppender appends lines to a file, holding Lock for the duration of each
// append so concurrent processes never interleave partial batches.
type OSAppender struct {
	Path string
	Lock Locker
}

// AppendLinesImpl writes each line followed by a newline to the end of the
// file, creating the file and its directory when missing.
func (a *OSAppender) AppendLinesImpl(ctx context.Context, lines []string) (err error) {
	if len(lines) == 0 {
		return nil
	}

	dir := filepath.Dir(a.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if a.Lock != nil {
		if err := a.Lock.Acquire(ctx); err != nil {
			return err
		}
		defer func() {
			if rerr := a.Lock.Release(); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}

	f, err := os.OpenFile(a.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", a.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", a.Path, cerr)
		}
	}()

	if _, err := f.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("writing %s: %w", a.Path, err)
	}
	return nil
}

// AppendLines delegates to AppendLinesImpl.
func (a *OSAppender) AppendLines(ctx context.Context, lines []string) error {
	return a.AppendLinesImpl(ctx, lines)
}
