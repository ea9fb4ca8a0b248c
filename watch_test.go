package clampgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".clampgen.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(target, []byte("verbose: false\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	var errs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, WatchConfig{
			Paths:    []string{target},
			Debounce: 20 * time.Millisecond,
			OnError:  func(error) { errs.Add(1) },
		}, func() error {
			runs.Add(1)
			return errors.New("boom")
		})
	}()

	// Give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("verbose: true\n"), 0644))

	assert.Eventually(t, func() bool { return runs.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return errs.Load() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchRunsSequentially(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, ".clampgen.yaml")
	require.NoError(t, os.WriteFile(target, []byte("verbose: false\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs, inFlight, maxInFlight atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, WatchConfig{
			Paths:    []string{target},
			Debounce: 10 * time.Millisecond,
		}, func() error {
			n := inFlight.Add(1)
			for {
				m := maxInFlight.Load()
				if n <= m || maxInFlight.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(300 * time.Millisecond)
			inFlight.Add(-1)
			runs.Add(1)
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)

	// The second write lands while the first regeneration is still running
	require.NoError(t, os.WriteFile(target, []byte("verbose: true\n"), 0644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(target, []byte("quiet: true\n"), 0644))

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), maxInFlight.Load())

	// Cancel during a run: Watch returns only once the run has finished
	require.NoError(t, os.WriteFile(target, []byte("verbose: false\n"), 0644))
	assert.Eventually(t, func() bool { return inFlight.Load() == 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
		assert.Equal(t, int32(0), inFlight.Load())
	case <-time.After(3 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestWatchNoPaths(t *testing.T) {
	err := Watch(context.Background(), WatchConfig{}, func() error { return nil })
	require.Error(t, err)
}
