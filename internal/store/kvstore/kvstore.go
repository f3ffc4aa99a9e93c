package kvstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Keyed JSON storage. One human-readable file per key under a single
// directory, the local-storage layer of the app. Absence and corruption are
// expected conditions and read as "not found"; rejected writes are swallowed
// so the caller's in-memory value stays authoritative for the session.
// No locking for v1; fine for a local single-user tool.

type Store struct {
	dir string
	log *zap.Logger
}

// Open prepares a store rooted at dir. A failed mkdir is not fatal: every
// read will miss and every write will fail soft, which is the degraded mode
// the content layer is built to run in.
func Open(dir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Debug("kvstore: mkdir", zap.String("dir", dir), zap.Error(err))
	}
	return &Store{dir: dir, log: log}
}

// Dir returns the backing directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read returns the value stored under key, or the zero value and false when
// the key is absent, unreadable, or not parseable. A payload that parses but
// no longer matches the current shape is decoded as-is: unknown fields drop,
// missing fields zero. No versioning, no migration.
func Read[T any](s *Store, key string) (T, bool) {
	var v T
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Debug("kvstore: read", zap.String("key", key), zap.Error(err))
		}
		return v, false
	}
	if err := json.Unmarshal(b, &v); err != nil {
		s.log.Debug("kvstore: corrupt payload", zap.String("key", key), zap.Error(err))
		var zero T
		return zero, false
	}
	return v, true
}

// Write persists value under key. False means the write was lost (quota,
// permissions, missing dir); callers keep trusting their in-memory copy and
// simply lose durability across a restart.
func Write[T any](s *Store, key string, value T) bool {
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.log.Debug("kvstore: marshal", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := os.WriteFile(s.path(key), b, 0o600); err != nil {
		s.log.Debug("kvstore: write", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Delete removes key. Missing keys are not an error.
func (s *Store) Delete(key string) {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Debug("kvstore: delete", zap.String("key", key), zap.Error(err))
	}
}
