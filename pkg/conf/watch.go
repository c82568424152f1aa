package conf

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce collapses the bursts of write events editors produce into
// a single reload.
const watchDebounce = 500 * time.Millisecond

// Watcher reloads a file-backed Config when its file changes on disk. A
// failed reload keeps the previous snapshot. Listeners registered before
// Start receive a notification after each successful reload.
type Watcher struct {
	cfg     *Config
	watcher *fsnotify.Watcher
	logger  *log.Logger

	mu        sync.RWMutex
	listeners []chan<- time.Time
}

// NewWatcher returns a watcher for the given config. The config must be
// file-backed.
func NewWatcher(cfg *Config) (*Watcher, error) {
	if cfg.File() == "" {
		return nil, ErrReloadUnsupported
	}
	return &Watcher{
		cfg:    cfg,
		logger: cfg.log(),
	}, nil
}

// Listen registers a channel notified with the reload time after each
// successful reload. Sends are non-blocking; a full channel misses the
// notification. The caller owns the channel.
func (w *Watcher) Listen(ch chan<- time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, ch)
}

// Start begins watching the config file until ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(w.cfg.File()); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watching config file: %w", err)
	}
	w.watcher = watcher

	w.logger.Info("watching config file", "path", w.cfg.File())
	go w.loop(ctx)
	return nil
}

// Stop closes the underlying file watcher.
func (w *Watcher) Stop() {
	if w.watcher != nil {
		_ = w.watcher.Close()
	}
}

func (w *Watcher) loop(ctx context.Context) {
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("config watcher stopped")
			w.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// Write and Create together cover vim, nano and plain
			// redirection.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("config file changed", "op", event.Op.String())

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	if err := w.cfg.Reload(); err != nil {
		w.logger.Error("config reload failed, keeping previous values", "error", err)
		return
	}

	at := w.cfg.LastReload()
	w.logger.Info("config reloaded", "path", w.cfg.File())

	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, ch := range w.listeners {
		select {
		case ch <- at:
		default:
			w.logger.Warn("skipped reload notification, listener channel full")
		}
	}
}
