package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestImportArtworks(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "ember.md"), []byte(`---
title: Ember
year: "2025"
medium: Oil on panel
dimensions: 18 × 24 in
image: https://images.unsplash.com/photo-999?w=1200
---
Notes that are not imported.
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "night-garden.md"),
		[]byte("No frontmatter at all.\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(src, "readme.txt"),
		[]byte("ignored"), 0o600))

	s, dir := newTestStore(t)
	s.Hydrate()

	n, err := ImportArtworks(s, src, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	works := s.Artworks()
	require.Len(t, works, 8)

	byTitle := map[string]Artwork{}
	for _, w := range works {
		byTitle[w.Title] = w
	}
	ember := byTitle["Ember"]
	assert.Equal(t, "2025", ember.Year)
	assert.Equal(t, "Oil on panel", ember.Medium)
	assert.Equal(t, "18 × 24 in", ember.Dimensions)
	assert.NotEmpty(t, ember.ID)

	// title derived from the file name when frontmatter has none
	_, ok := byTitle["Night Garden"]
	assert.True(t, ok)

	// all ids distinct, and the import persisted
	seen := map[string]bool{}
	for _, w := range works {
		assert.False(t, seen[w.ID], "duplicate id %q", w.ID)
		seen[w.ID] = true
	}
	assert.Len(t, reopen(dir).Artworks(), 8)
}

func TestImportArtworksEmptyDir(t *testing.T) {
	s, _ := newTestStore(t)
	n, err := ImportArtworks(s, t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, DefaultArtworks(), s.Artworks())
}

func TestImportArtworksMissingDir(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := ImportArtworks(s, filepath.Join(t.TempDir(), "nope"), zap.NewNop())
	assert.Error(t, err)
}
