package content

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ellawright/folio/internal/store/kvstore"
)

// Persistence keys, one per content domain.
const (
	siteKey     = "ewa_site"
	artworksKey = "ewa_artworks"
	aboutKey    = "ewa_about"
)

// Store is the process-wide source of truth for the three content domains:
// site info, artworks, about. It is readable from the moment it is built
// (compiled-in defaults), hydrated at most once from the persisted layer,
// and every save replaces a whole domain, never a field merge.
//
// The three domains are independent: hydration reads and saves touch one key
// each, with no cross-domain atomicity. Saving "everything" is three calls.
type Store struct {
	kv    *kvstore.Store
	log   *zap.Logger
	inert bool

	mu       sync.RWMutex
	site     SiteInfo
	artworks []Artwork
	about    AboutContent
	hydrated bool

	hydrateOnce sync.Once
	onTitle     func(string)

	subMu sync.Mutex
	subs  []func()
}

// NewStore builds a store holding defaults for all three domains, so reads
// that happen before hydration still see valid data.
func NewStore(kv *kvstore.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		kv:       kv,
		log:      log,
		site:     DefaultSite(),
		artworks: DefaultArtworks(),
		about:    DefaultAbout(),
	}
}

// Detached returns an inert store: reads yield defaults, saves silently do
// nothing. It guards call sites that run before the real store is wired up.
func Detached() *Store {
	s := NewStore(nil, zap.NewNop())
	s.inert = true
	return s
}

// OnTitle registers a hook invoked with the site title once hydration
// completes with a non-empty title. Set it before Hydrate.
func (s *Store) OnTitle(f func(string)) { s.onTitle = f }

// Hydrate overlays persisted values onto the defaults, once per store.
// Each domain is read independently; a hit replaces the domain wholesale, a
// miss keeps the default. Callers schedule this after the first paint so the
// initial render always shows the synchronously available values.
func (s *Store) Hydrate() {
	if s.inert || s.kv == nil {
		return
	}
	s.hydrateOnce.Do(func() {
		site, siteOK := kvstore.Read[SiteInfo](s.kv, siteKey)
		works, worksOK := kvstore.Read[[]Artwork](s.kv, artworksKey)
		about, aboutOK := kvstore.Read[AboutContent](s.kv, aboutKey)

		s.mu.Lock()
		if siteOK {
			s.site = site
		}
		if worksOK {
			s.artworks = works
		}
		if aboutOK {
			s.about = about
		}
		s.hydrated = true
		title := s.site.Metadata.Title
		s.mu.Unlock()

		if s.onTitle != nil && title != "" {
			s.onTitle(title)
		}
	})
}

// Reload re-reads every domain from the persisted layer, defaults first so a
// key deleted by another process falls back cleanly. Unlike Hydrate it is not
// once-guarded: the preview server calls it when the data directory changes
// under a concurrently running editor.
func (s *Store) Reload() {
	if s.inert || s.kv == nil {
		return
	}
	site := DefaultSite()
	if v, ok := kvstore.Read[SiteInfo](s.kv, siteKey); ok {
		site = v
	}
	works := DefaultArtworks()
	if v, ok := kvstore.Read[[]Artwork](s.kv, artworksKey); ok {
		works = v
	}
	about := DefaultAbout()
	if v, ok := kvstore.Read[AboutContent](s.kv, aboutKey); ok {
		about = v
	}

	s.mu.Lock()
	s.site = site
	s.artworks = works
	s.about = about
	s.mu.Unlock()
}

// Hydrated reports whether the one-time overlay has completed.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// Site returns the current site info.
func (s *Store) Site() SiteInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// Artworks returns a copy of the current collection, in display order.
func (s *Store) Artworks() []Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Artwork, len(s.artworks))
	copy(out, s.artworks)
	return out
}

// About returns a copy of the current about content.
func (s *Store) About() AboutContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyAbout(s.about)
}

// SaveSite replaces the site info in memory and persists it. Persistence
// failures are swallowed; the in-memory value stands for the session.
func (s *Store) SaveSite(v SiteInfo) {
	if s.inert || s.kv == nil {
		return
	}
	s.mu.Lock()
	s.site = v
	s.mu.Unlock()
	kvstore.Write(s.kv, siteKey, v)
	s.notify()
}

// SaveArtworks replaces the whole collection.
func (s *Store) SaveArtworks(v []Artwork) {
	if s.inert || s.kv == nil {
		return
	}
	works := make([]Artwork, len(v))
	copy(works, v)
	s.mu.Lock()
	s.artworks = works
	s.mu.Unlock()
	kvstore.Write(s.kv, artworksKey, works)
	s.notify()
}

// SaveAbout replaces the about content.
func (s *Store) SaveAbout(v AboutContent) {
	if s.inert || s.kv == nil {
		return
	}
	about := copyAbout(v)
	s.mu.Lock()
	s.about = about
	s.mu.Unlock()
	kvstore.Write(s.kv, aboutKey, about)
	s.notify()
}

// Subscribe registers f to run after every save, so every consumer in the
// process observes writes made by any other consumer in the same session.
func (s *Store) Subscribe(f func()) {
	s.subMu.Lock()
	s.subs = append(s.subs, f)
	s.subMu.Unlock()
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()
	for _, f := range subs {
		f()
	}
}

func copyAbout(a AboutContent) AboutContent {
	out := a
	out.BioParagraphs = append([]string(nil), a.BioParagraphs...)
	out.StatementParagraphs = append([]string(nil), a.StatementParagraphs...)
	out.CVSections = make([]CVSection, len(a.CVSections))
	for i, sec := range a.CVSections {
		out.CVSections[i] = CVSection{
			Title: sec.Title,
			Items: append([]string(nil), sec.Items...),
		}
	}
	return out
}
