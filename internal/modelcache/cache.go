// Package modelcache keeps trained models on disk keyed by corpus digest.
package modelcache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"codeclass/internal/bayes"
	"codeclass/internal/corpus"
	"codeclass/internal/freq"
	"codeclass/internal/matchtree"
)

// SchemaVersion is bumped whenever the Snapshot layout changes.
const SchemaVersion uint16 = 1

// Cache stores snapshots under <dir>/models/<digest>.mp.
// Thread-safe for concurrent access. A nil *Cache stores nothing.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Snapshot is everything needed to restore a trained classifier.
type Snapshot struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	// Options the models were trained with
	MatchTree matchtree.Options
	Frequency freq.Options
	Bayes     bayes.Options
	Model     string

	Trees      []matchtree.TreeSnapshot
	Tokens     map[string]int // training tokens per language
	Gaussian   *bayes.GaussianSnapshot   `msgpack:",omitempty"`
	Difference *bayes.DifferenceSnapshot `msgpack:",omitempty"`
}

// DefaultDir returns $XDG_CACHE_HOME/<app>, falling back to ~/.cache/<app>.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open creates dir if needed; an empty dir selects DefaultDir("codeclass").
func Open(dir string) (*Cache, error) {
	if dir == "" {
		d, err := DefaultDir("codeclass")
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *Cache) pathFor(key corpus.Digest) string {
	return filepath.Join(c.dir, "models", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a snapshot, replacing any previous one
// atomically. The schema field is set by Put.
func (c *Cache) Put(key corpus.Digest, s *Snapshot) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	s.Schema = SchemaVersion
	if err := msgpack.NewEncoder(f).Encode(s); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("modelcache: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get reads the snapshot stored for key. A missing entry or one written
// with another schema version is a miss, not an error.
func (c *Cache) Get(key corpus.Digest, out *Snapshot) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	var s Snapshot
	if err := msgpack.NewDecoder(f).Decode(&s); err != nil {
		return false, fmt.Errorf("modelcache: decode: %w", err)
	}
	if s.Schema != SchemaVersion {
		return false, nil
	}
	*out = s
	return true, nil
}

// DropAll removes every cached snapshot.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
	models := filepath.Join(c.dir, "models")
	old := models + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(models, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
