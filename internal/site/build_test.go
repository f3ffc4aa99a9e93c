package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ellawright/folio/internal/content"
	"github.com/ellawright/folio/internal/store/kvstore"
)

func testBuilder(t *testing.T) (*Builder, *content.Store) {
	t.Helper()
	store := content.NewStore(kvstore.Open(t.TempDir(), zap.NewNop()), zap.NewNop())
	store.Hydrate()
	return &Builder{
		Store:     store,
		OutputDir: t.TempDir(),
		Log:       zap.NewNop(),
	}, store
}

func readPage(t *testing.T, b *Builder, parts ...string) string {
	t.Helper()
	p := filepath.Join(append([]string{b.OutputDir}, parts...)...)
	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(raw)
}

func TestBuildRendersAllPages(t *testing.T) {
	b, _ := testBuilder(t)
	require.NoError(t, b.Build())

	index := readPage(t, b, "index.html")
	assert.Contains(t, index, "Veil")
	assert.Contains(t, index, "Oil on linen")
	assert.Contains(t, index, `loading="lazy"`, "allow-listed hosts render optimized")

	about := readPage(t, b, "about", "index.html")
	assert.Contains(t, about, "contemporary painter based in New York")
	assert.Contains(t, about, "Education")
	assert.Contains(t, about, "MacDowell, Peterborough, NH")

	contact := readPage(t, b, "contact", "index.html")
	assert.Contains(t, contact, "hello@ellawright.art")
	assert.Contains(t, contact, "@ellawrightart")
}

func TestBuildUsesWindowTitle(t *testing.T) {
	b, store := testBuilder(t)
	site := store.Site()
	site.Metadata.Title = "Renamed Studio"
	store.SaveSite(site)

	require.NoError(t, b.Build())
	assert.Contains(t, readPage(t, b, "index.html"), "<title>Renamed Studio</title>")
}

func TestBuildDataURLRendersUnoptimized(t *testing.T) {
	b, store := testBuilder(t)
	works := store.Artworks()
	works[0].ImageURL = "data:image/png;base64,AAAA"
	store.SaveArtworks(works)

	require.NoError(t, b.Build())
	index := readPage(t, b, "index.html")
	assert.Contains(t, index, "data:image/png;base64,AAAA")
	// the data-URL image itself carries no lazy-loading attribute
	assert.NotContains(t, index, `data:image/png;base64,AAAA" alt="Veil" loading`)
}

func TestBuildFallsBackToPlaceholderImage(t *testing.T) {
	b, store := testBuilder(t)
	works := store.Artworks()
	works[0].ImageURL = ""
	store.SaveArtworks(works)

	require.NoError(t, b.Build())
	assert.Contains(t, readPage(t, b, "index.html"), placeholderImage)
}

func TestRenderParagraphsMarkdown(t *testing.T) {
	out, err := renderParagraphs([]string{"plain text", "with *emphasis*"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Contains(t, string(out[0]), "<p>plain text</p>")
	assert.Contains(t, string(out[1]), "<em>emphasis</em>")
}
