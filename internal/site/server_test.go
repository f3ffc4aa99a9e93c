package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ellawright/folio/internal/content"
	"github.com/ellawright/folio/internal/store/kvstore"
)

// An edit written by another process over the same data dir must show up in
// the rebuilt output, not a byte-identical rerender of the stale in-memory
// values.
func TestExternalEditRebuildsWithFreshContent(t *testing.T) {
	dataDir := t.TempDir()
	store := content.NewStore(kvstore.Open(dataDir, zap.NewNop()), zap.NewNop())
	store.Hydrate()

	b := &Builder{Store: store, OutputDir: t.TempDir(), Log: zap.NewNop()}
	require.NoError(t, b.Build())
	require.Contains(t, readPage(t, b, "index.html"), "Veil")

	other := content.NewStore(kvstore.Open(dataDir, zap.NewNop()), zap.NewNop())
	other.Hydrate()
	works := other.Artworks()
	works[0].Title = "Harbor"
	other.SaveArtworks(works)

	srv := &Server{Builder: b, WatchDir: dataDir, Log: zap.NewNop()}
	srv.scheduleRebuild(zap.NewNop(), true)

	assert.Eventually(t, func() bool {
		raw, err := os.ReadFile(filepath.Join(b.OutputDir, "index.html"))
		return err == nil && strings.Contains(string(raw), "Harbor")
	}, 3*time.Second, 50*time.Millisecond)
}

// In-process saves rebuild from memory, without a round trip through disk.
func TestInProcessSaveRebuilds(t *testing.T) {
	store := content.NewStore(kvstore.Open(t.TempDir(), zap.NewNop()), zap.NewNop())
	store.Hydrate()

	b := &Builder{Store: store, OutputDir: t.TempDir(), Log: zap.NewNop()}
	srv := &Server{Builder: b, Log: zap.NewNop()}
	srv.scheduleRebuild(zap.NewNop(), false)

	assert.Eventually(t, func() bool {
		raw, err := os.ReadFile(filepath.Join(b.OutputDir, "index.html"))
		return err == nil && strings.Contains(string(raw), "Veil")
	}, 3*time.Second, 50*time.Millisecond)
}

func TestStopPendingCancelsRebuild(t *testing.T) {
	store := content.NewStore(kvstore.Open(t.TempDir(), zap.NewNop()), zap.NewNop())
	store.Hydrate()

	b := &Builder{Store: store, OutputDir: t.TempDir(), Log: zap.NewNop()}
	srv := &Server{Builder: b, Log: zap.NewNop()}
	srv.scheduleRebuild(zap.NewNop(), false)
	srv.stopPending()

	time.Sleep(rebuildDebounce + 200*time.Millisecond)
	_, err := os.Stat(filepath.Join(b.OutputDir, "index.html"))
	assert.True(t, os.IsNotExist(err), "a cancelled rebuild must not write output")
}
