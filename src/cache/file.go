package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"stock-watchlist/src/logger"
)

// -----------------------------------------------------------------------------
// FileCache stores one JSON envelope per key in a flat directory. It is the
// default backend. All failures are swallowed: a bad read is a miss, a bad
// write is a no-op, and stale or corrupt files are deleted best-effort.
// -----------------------------------------------------------------------------

type FileCache struct {
	Dir    string
	Logger *logger.Logger

	// now is replaceable for TTL tests.
	now func() time.Time
}

// envelope is the on-disk shape of one cache entry.
type envelope struct {
	Timestamp int64           `json:"timestamp"` // unix seconds
	Data      json.RawMessage `json:"data"`
}

// -----------------------------------------------------------------------------

func NewFileCache(dir string, log *logger.Logger) *FileCache {
	return &FileCache{
		Dir:    dir,
		Logger: log,
		now:    time.Now,
	}
}

// -----------------------------------------------------------------------------

// Read returns the payload stored under key when it is younger than ttl.
func (c *FileCache) Read(key string, ttl time.Duration) ([]byte, time.Time, bool) {
	path := c.path(key)

	raw, err := os.ReadFile(path)
	if err != nil {
		// Absent or unreadable: plain miss.
		return nil, time.Time{}, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Data) == 0 {
		c.Logger.Warning("Corrupt cache entry %s, dropping", key)
		c.remove(path)
		return nil, time.Time{}, false
	}

	writtenAt := time.Unix(env.Timestamp, 0)
	if c.now().Sub(writtenAt) > ttl {
		c.remove(path)
		return nil, time.Time{}, false
	}

	return env.Data, writtenAt, true
}

// -----------------------------------------------------------------------------

// Write stores payload under key stamped with the current instant.
func (c *FileCache) Write(key string, payload []byte) {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		c.Logger.Warning("Failed to create cache dir %s: %v", c.Dir, err)
		return
	}

	env := envelope{
		Timestamp: c.now().Unix(),
		Data:      json.RawMessage(payload),
	}

	raw, err := json.Marshal(env)
	if err != nil {
		c.Logger.Warning("Failed to encode cache entry %s: %v", key, err)
		return
	}

	if err := os.WriteFile(c.path(key), raw, 0o644); err != nil {
		c.Logger.Warning("Failed to write cache entry %s: %v", key, err)
	}
}

// -----------------------------------------------------------------------------

func (c *FileCache) Close() error {
	return nil
}

// -----------------------------------------------------------------------------

func (c *FileCache) path(key string) string {
	return filepath.Join(c.Dir, key+".json")
}

// -----------------------------------------------------------------------------

func (c *FileCache) remove(path string) {
	// Deletion failure is not an error.
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		c.Logger.Debug("Failed to delete cache file %s: %v", path, err)
	}
}
