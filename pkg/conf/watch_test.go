package conf

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcherRequiresFile(t *testing.T) {
	cfg := Wrap(map[string]any{})
	_, err := NewWatcher(cfg)
	assert.ErrorIs(t, err, ErrReloadUnsupported)
}

func TestWatcherReloadsOnChange(t *testing.T) {
	path := writeConfig(t, "mode: old\n")

	cfg, err := Open(path)
	require.NoError(t, err)

	watcher, err := NewWatcher(cfg)
	require.NoError(t, err)

	reloaded := make(chan time.Time, 1)
	watcher.Listen(reloaded)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte("mode: new\n"), 0o644))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload notification")
	}

	assert.Equal(t, "new", cfg.String("mode", ""))
	assert.False(t, cfg.LastReload().IsZero())
}

func TestWatcherKeepsOldConfigOnBadWrite(t *testing.T) {
	path := writeConfig(t, "mode: old\n")

	cfg, err := Open(path)
	require.NoError(t, err)

	watcher, err := NewWatcher(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	defer watcher.Stop()

	require.NoError(t, os.WriteFile(path, []byte(":\n  - broken: ["), 0o644))

	// Give the debounced reload time to run, then confirm the snapshot
	// survived.
	assert.Eventually(t, func() bool {
		return cfg.String("mode", "") == "old"
	}, 3*time.Second, 100*time.Millisecond)
	time.Sleep(watchDebounce + 200*time.Millisecond)
	assert.Equal(t, "old", cfg.String("mode", ""))
}
