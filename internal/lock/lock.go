// Package lock serializes writers of a shared output file across processes
// with an advisory lock held on a sibling ".lock" file.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// DefaultRetryDelay is how often Acquire retries a held lock.
const DefaultRetryDelay = 25 * time.Millisecond

// ErrNotAcquired is returned when the lock is still held by another process
// when the context ends.
var ErrNotAcquired = errors.New("output file is locked by another nanoid process")

// Flocker abstracts the subset of flock.Flock used here.
type Flocker interface {
	TryLockContext(ctx context.Context, retryDelay time.Duration) (bool, error)
	Unlock() error
}

// Lock waits for and releases an advisory lock.
type Lock struct {
	flocker    Flocker
	retryDelay time.Duration
}

// New creates a Lock from the given Flocker.
func New(f Flocker, retryDelay time.Duration) *Lock {
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	return &Lock{flocker: f, retryDelay: retryDelay}
}

// ForFile returns a Lock guarding path, backed by path + ".lock".
func ForFile(path string) *Lock {
	return New(flock.New(path+".lock"), DefaultRetryDelay)
}

// Acquire blocks until the lock is held or ctx ends. A context that ends
// while another process holds the lock yields ErrNotAcquired wrapping the
// context error.
func (l *Lock) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := l.flocker.TryLockContext(ctx, l.retryDelay)
	if ok {
		return nil
	}
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("%w: %w", ErrNotAcquired, ctx.Err())
	}
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	return ErrNotAcquired
}

// Release releases the advisory lock.
func (l *Lock) Release() error {
	if err := l.flocker.Unlock(); err != nil {
		return fmt.Errorf("releasing lock: %w", err)
	}
	return nil
}
