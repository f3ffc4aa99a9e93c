package site

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const rebuildDebounce = 500 * time.Millisecond

// Server serves the built site locally and rebuilds it when content changes,
// either through an in-process save or an edit from another process touching
// the data directory.
type Server struct {
	Builder  *Builder
	WatchDir string
	Addr     string
	Log      *zap.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// Run builds once, then serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}

	if err := s.Builder.Build(); err != nil {
		return err
	}
	log.Info("initial build complete", zap.String("dir", s.Builder.OutputDir))

	s.Builder.Store.Subscribe(func() { s.scheduleRebuild(log, false) })

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("file watcher unavailable, live rebuild on external edits disabled", zap.Error(err))
	} else {
		defer watcher.Close()
		if err := watcher.Add(s.WatchDir); err != nil {
			log.Warn("cannot watch data dir", zap.String("dir", s.WatchDir), zap.Error(err))
		}
		go s.watch(ctx, watcher, log)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))
	r.Use(noCache)
	r.Handle("/*", http.FileServer(http.Dir(s.Builder.OutputDir)))

	srv := &http.Server{Addr: s.Addr, Handler: r}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("serving site", zap.String("addr", s.Addr))

	select {
	case <-ctx.Done():
		s.stopPending()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) watch(ctx context.Context, watcher *fsnotify.Watcher, log *zap.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				log.Debug("change detected", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
				s.scheduleRebuild(log, true)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}

// scheduleRebuild debounces bursts of changes into one build. An external
// change means another process wrote the data dir, so the store must re-read
// it first; in-process saves already hold the current values in memory.
func (s *Server) scheduleRebuild(log *zap.Logger, external bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(rebuildDebounce, func() {
		if external {
			s.Builder.Store.Reload()
		}
		if err := s.Builder.Build(); err != nil {
			log.Error("rebuild failed", zap.Error(err))
			return
		}
		log.Info("site rebuilt")
	})
}

// stopPending cancels a debounced rebuild so nothing fires after shutdown.
func (s *Server) stopPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}
