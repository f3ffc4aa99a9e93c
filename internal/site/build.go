package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"

	"github.com/ellawright/folio/internal/content"
)

//go:embed templates/*.html
var templatesFS embed.FS

// The gallery falls back to this when an artwork has no image yet.
const placeholderImage = "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=400"

// Builder renders the store's current content into a static site.
type Builder struct {
	Store      *content.Store
	OutputDir  string
	ImageHosts []string
	Log        *zap.Logger
}

type pageData struct {
	Site  content.SiteInfo
	Title string
}

type artworkView struct {
	content.Artwork
	// template.URL so inline data URLs survive; content is owner-authored.
	Src       template.URL
	Optimized bool
}

// Build writes index, about and contact pages under OutputDir.
func (b *Builder) Build() error {
	log := b.Log
	if log == nil {
		log = zap.NewNop()
	}
	tpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}
	if err := os.MkdirAll(b.OutputDir, 0o755); err != nil {
		return fmt.Errorf("prepare output dir: %w", err)
	}

	store := b.Store
	if store == nil {
		// no store wired up; render the compiled-in defaults
		store = content.Detached()
	}
	site := store.Site()
	works := store.Artworks()
	about := store.About()

	hosts := b.ImageHosts
	if len(hosts) == 0 {
		hosts = content.DefaultImageHosts
	}
	views := make([]artworkView, len(works))
	for i, w := range works {
		src := w.ImageURL
		if src == "" {
			src = placeholderImage
		}
		views[i] = artworkView{
			Artwork:   w,
			Src:       template.URL(src),
			Optimized: content.OptimizedImage(w.ImageURL, hosts),
		}
	}

	bio, err := renderParagraphs(about.BioParagraphs)
	if err != nil {
		return fmt.Errorf("render bio: %w", err)
	}
	statement, err := renderParagraphs(about.StatementParagraphs)
	if err != nil {
		return fmt.Errorf("render statement: %w", err)
	}

	pages := []struct {
		name string
		path string
		data any
	}{
		{
			name: "index.html",
			path: "index.html",
			data: struct {
				pageData
				Works []artworkView
			}{pageData{site, site.Metadata.Title}, views},
		},
		{
			name: "about.html",
			path: filepath.Join("about", "index.html"),
			data: struct {
				pageData
				About             content.AboutContent
				PortraitSrc       template.URL
				PortraitOptimized bool
				Bio, Statement    []template.HTML
			}{
				pageData{site, "About · " + site.Name},
				about,
				template.URL(about.PortraitURL),
				content.OptimizedImage(about.PortraitURL, hosts),
				bio, statement,
			},
		},
		{
			name: "contact.html",
			path: filepath.Join("contact", "index.html"),
			data: struct{ pageData }{pageData{site, "Contact · " + site.Name}},
		},
	}

	for _, p := range pages {
		out := filepath.Join(b.OutputDir, p.path)
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("prepare %s: %w", filepath.Dir(p.path), err)
		}
		var buf bytes.Buffer
		if err := tpl.ExecuteTemplate(&buf, p.name, p.data); err != nil {
			return fmt.Errorf("render %s: %w", p.name, err)
		}
		if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		log.Info("built page", zap.String("path", out))
	}
	return nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// renderParagraphs converts stored plain-text paragraphs through markdown,
// one block each, so emphasis and links written in the editor carry through.
func renderParagraphs(paragraphs []string) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(paragraphs))
	for _, p := range paragraphs {
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(p), &buf); err != nil {
			return nil, err
		}
		out = append(out, template.HTML(buf.String()))
	}
	return out, nil
}
