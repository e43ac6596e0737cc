package catalogfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tradevalues/internal/infrastructure/catalogfile"
	"tradevalues/internal/infrastructure/memory"
)

func TestWatcher(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	rq.NoError(os.WriteFile(path, []byte(sample), 0o600))

	store := memory.NewCatalogStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var imports atomic.Int32

	w := catalogfile.NewWatcher(path, store, 20*time.Millisecond)
	w.OnImport(func(catalogfile.Stats) { imports.Add(1) })

	done := make(chan error, 1)

	go func() {
		done <- w.Run(ctx)
	}()

	// Give the watcher time to subscribe before the first write.
	time.Sleep(100 * time.Millisecond)

	updated := strings.Replace(sample, "value: 135", "value: 150", 1)
	rq.NoError(os.WriteFile(path, []byte(updated), 0o600))

	rq.Eventually(func() bool {
		item, err := store.GetItem(ctx, "mm2", "mm2-5")

		return err == nil && item.Value == 150
	}, 2*time.Second, 20*time.Millisecond)
	rq.Eventually(func() bool { return imports.Load() > 0 }, time.Second, 10*time.Millisecond)

	cancel()
	rq.NoError(<-done)
}

func TestWatcherKeepsCatalogOnBadFile(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	rq.NoError(os.WriteFile(path, []byte(sample), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memory.NewCatalogStore()

	c, err := catalogfile.LoadFile(path)
	rq.NoError(err)

	_, err = catalogfile.Import(ctx, store, c, nil)
	rq.NoError(err)

	var imports atomic.Int32

	w := catalogfile.NewWatcher(path, store, 10*time.Millisecond)
	w.OnImport(func(catalogfile.Stats) { imports.Add(1) })

	go func() {
		_ = w.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)

	rq.NoError(os.WriteFile(path, []byte("games: [oops"), 0o600))
	time.Sleep(200 * time.Millisecond)

	item, err := store.GetItem(ctx, "mm2", "mm2-5")
	rq.NoError(err)
	rq.EqualValues(135, item.Value)
	rq.Zero(imports.Load())
}
