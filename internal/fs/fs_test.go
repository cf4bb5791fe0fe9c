package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocker struct {
	acquireErr error
	releaseErr error
	acquired   int
	released   int
}

func (f *fakeLocker) Acquire(context.Context) error {
	f.acquired++
	return f.acquireErr
}

func (f *fakeLocker) Release() error {
	f.released++
	return f.releaseErr
}

func TestOSAppender_AppendsAcrossCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ids.txt")
	l := &fakeLocker{}
	a := &OSAppender{Path: path, Lock: l}

	require.NoError(t, a.AppendLines(context.Background(), []string{"abc", "def"}))
	require.NoError(t, a.AppendLines(context.Background(), []string{"ghi"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc\ndef\nghi\n", string(data))
	assert.Equal(t, 2, l.acquired)
	assert.Equal(t, 2, l.released)
}

func TestOSAppender_NoLinesIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	l := &fakeLocker{}
	a := &OSAppender{Path: path, Lock: l}

	require.NoError(t, a.AppendLines(context.Background(), nil))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Zero(t, l.acquired)
}

func TestOSAppender_WithoutLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	a := &OSAppender{Path: path}

	require.NoError(t, a.AppendLines(context.Background(), []string{"x"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}

func TestOSAppender_LockErrors(t *testing.T) {
	errBusy := errors.New("busy")
	errRelease := errors.New("release failed")

	tests := []struct {
		name        string
		locker      *fakeLocker
		wantErr     error
		wantWrite   bool
		wantRelease int
	}{
		{"acquire fails", &fakeLocker{acquireErr: errBusy}, errBusy, false, 0},
		{"release fails", &fakeLocker{releaseErr: errRelease}, errRelease, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ids.txt")
			a := &OSAppender{Path: path, Lock: tt.locker}

			err := a.AppendLines(context.Background(), []string{"abc"})

			require.ErrorIs(t, err, tt.wantErr)
			_, statErr := os.Stat(path)
			assert.Equal(t, tt.wantWrite, statErr == nil)
			assert.Equal(t, tt.wantRelease, tt.locker.released)
		})
	}
}
