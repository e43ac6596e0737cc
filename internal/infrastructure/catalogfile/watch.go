package catalogfile

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"tradevalues/pkg/logx"
)

// Watcher re-imports a catalog file after it changes on disk.
type Watcher struct {
	path     string
	store    Store
	delay    time.Duration
	onImport func(Stats)
}

// NewWatcher builds a watcher for path. Bursts of writes within delay are
// imported once.
func NewWatcher(path string, store Store, delay time.Duration) *Watcher {
	return &Watcher{
		path:  filepath.Clean(path),
		store: store,
		delay: delay,
	}
}

// OnImport registers fn to run after every successful reimport.
func (w *Watcher) OnImport(fn func(Stats)) {
	w.onImport = fn
}

// Run blocks until ctx is done. A file that fails to parse is logged and the
// previous catalog stays in place.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer fw.Close()

	// Editors replace files by rename, so the directory is watched.
	if err = fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watcher.Add(%s): %w", filepath.Dir(w.path), err)
	}

	logger(ctx).Info("catalog watcher started", slog.String(logx.FieldFile, w.path))

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != w.path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			pending = time.After(w.delay)
		case <-pending:
			pending = nil

			w.reload(ctx)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			logger(ctx).Warn("catalog watcher error", logx.Error(err))
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	c, err := LoadFile(w.path)
	if err != nil {
		logger(ctx).Error("catalog reload failed", slog.String(logx.FieldFile, w.path), logx.Error(err))

		return
	}

	stats, err := Import(ctx, w.store, c, nil)
	if err != nil {
		logger(ctx).Error("catalog reload failed", slog.String(logx.FieldFile, w.path), logx.Error(err))

		return
	}

	if w.onImport != nil {
		w.onImport(stats)
	}
}
