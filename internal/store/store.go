package store

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

// Store persists arbitrary values as JSON files under a directory,
// one file per key, with an in-memory cache in front.
type Store struct {
	dir   string
	cache sync.Map
}

// Open creates the backing directory if needed and returns a store.
func Open(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		dir = filepath.Join(base, "domkit")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save serializes v under key. Each key maps to its own file so
// writes never touch unrelated entries.
func (s *Store) Save(key string, v interface{}) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to persist value: %w", err)
	}

	s.cache.Store(key, append([]byte(nil), data...))
	return nil
}

// Load retrieves the value stored under key. A missing key yields the
// caller-supplied default; a stored value that no longer decodes
// yields an empty object rather than an error.
func (s *Store) Load(key string, def interface{}) interface{} {
	data, ok := s.read(key)
	if !ok {
		return def
	}

	var v interface{}
	if err := sonic.Unmarshal(data, &v); err != nil {
		return map[string]interface{}{}
	}
	return v
}

// Delete removes the value stored under key. Missing keys are a no-op.
func (s *Store) Delete(key string) {
	s.cache.Delete(key)
	os.Remove(s.path(key))
}

func (s *Store) read(key string) ([]byte, bool) {
	if cached, ok := s.cache.Load(key); ok {
		return cached.([]byte), true
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, false
	}

	s.cache.Store(key, data)
	return data, true
}

// path maps a key to its backing file. Keys are escaped so arbitrary
// strings cannot traverse outside the storage dir.
func (s *Store) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
