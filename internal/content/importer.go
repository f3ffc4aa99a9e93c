package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type artworkFrontmatter struct {
	Title      string `yaml:"title"`
	Year       string `yaml:"year"`
	Medium     string `yaml:"medium"`
	Dimensions string `yaml:"dimensions"`
	Image      string `yaml:"image"`
}

// ImportArtworks walks dir for markdown files and appends one artwork per
// file to the store's collection, saving once at the end. A file without a
// title in its frontmatter gets one derived from its name. Returns the
// number of imported works.
func ImportArtworks(store *Store, dir string, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	works := store.Artworks()
	count := 0

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var fm artworkFrontmatter
		if _, err := frontmatter.Parse(bytes.NewReader(b), &fm); err != nil {
			log.Warn("import: bad frontmatter, skipping",
				zap.String("file", path), zap.Error(err))
			return nil
		}
		if fm.Title == "" {
			fm.Title = titleFromFilename(d.Name())
		}
		works = append(works, Artwork{
			ID:         MintArtworkID(works),
			Title:      fm.Title,
			Year:       fm.Year,
			Medium:     fm.Medium,
			Dimensions: fm.Dimensions,
			ImageURL:   fm.Image,
		})
		count++
		log.Info("import: added artwork", zap.String("title", fm.Title))
		return nil
	})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		store.SaveArtworks(works)
	}
	return count, nil
}

func titleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
	return cases.Title(language.English).String(base)
}
