package content

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// DefaultImageHosts are the hosts whose images go through the optimized
// delivery path in rendered pages.
var DefaultImageHosts = []string{"images.unsplash.com", "picsum.photos"}

// OptimizedImage reports whether url qualifies for optimized rendering.
// Root-relative paths and allow-listed hosts do; inline data URLs and
// unknown hosts render unoptimized.
func OptimizedImage(url string, hosts []string) bool {
	if url == "" || strings.HasPrefix(url, "/") {
		return true
	}
	if strings.HasPrefix(url, "data:") {
		return false
	}
	for _, h := range hosts {
		if strings.Contains(url, h) {
			return true
		}
	}
	return false
}

var imageMIMEs = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// ImageDataURL reads a local file and returns its content as an inline
// base64 data URL, the form an uploaded image takes in place of a URL.
// Files that don't sniff as a supported image are rejected.
func ImageDataURL(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(b)
	if !imageMIMEs[mime] {
		return "", fmt.Errorf("not a supported image: %s", mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}
