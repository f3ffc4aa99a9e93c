package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizedImage(t *testing.T) {
	hosts := DefaultImageHosts

	assert.True(t, OptimizedImage("", hosts))
	assert.True(t, OptimizedImage("/works/veil.jpg", hosts))
	assert.True(t, OptimizedImage("https://images.unsplash.com/photo-123?w=1200", hosts))
	assert.True(t, OptimizedImage("https://picsum.photos/800", hosts))
	assert.False(t, OptimizedImage("data:image/png;base64,AAAA", hosts))
	assert.False(t, OptimizedImage("https://example.com/img.jpg", hosts))
}

// Smallest viable PNG header; enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestImageDataURL(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "portrait.png")
	require.NoError(t, os.WriteFile(p, pngHeader, 0o600))

	url, err := ImageDataURL(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestImageDataURLRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(p, []byte("just text"), 0o600))

	_, err := ImageDataURL(p)
	assert.Error(t, err)

	_, err = ImageDataURL(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}
