package progress

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Matches(t *testing.T) {
	t.Parallel()

	w := &Watcher{target: "/data/.onboard/progress.db"}

	assert.True(t, w.matches("/data/.onboard/progress.db"))
	assert.True(t, w.matches("/data/.onboard/progress.db-wal"))
	assert.True(t, w.matches("/data/.onboard/progress.db-journal"))
	assert.False(t, w.matches("/data/.onboard/config.yaml"))
	assert.False(t, w.matches("/data/.onboard/.progress-123.tmp"))
}

func TestNewWatcher_RequiresPath(t *testing.T) {
	t.Parallel()

	_, err := NewWatcher("", nil)
	require.Error(t, err)
}

func TestWatcher_ReloadsOnExternalWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress.yaml")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watched := NewStore(ctx, NewFileBackend(path))
	defer watched.Close()

	w, err := NewWatcher(path, watched)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	ch := watched.ObserveProgress(ctx)
	nextSnapshot(t, ch)

	other := NewStore(ctx, NewFileBackend(path))
	defer other.Close()
	require.NoError(t, other.MarkStepCompleted(ctx, "android_fundamentals"))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case p := <-ch:
			if p.IsCompleted("android_fundamentals") {
				cancel()
				require.NoError(t, <-done)
				return
			}
		case <-deadline:
			t.Fatal("watched store never observed the external write")
		}
	}
}
