package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stock-watchlist/src/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileCache(t *testing.T) *FileCache {
	t.Helper()
	return NewFileCache(t.TempDir(), logger.NewLogger("test", logger.LevelError))
}

// -----------------------------------------------------------------------------

func TestFileCacheRoundTrip(t *testing.T) {
	c := newTestFileCache(t)

	payload := []byte(`{"symbol":"TSLA","price":248.5}`)
	c.Write("k1", payload)

	got, writtenAt, ok := c.Read("k1", time.Hour)
	require.True(t, ok)
	assert.JSONEq(t, string(payload), string(got))
	assert.WithinDuration(t, time.Now(), writtenAt, 5*time.Second)
}

func TestFileCacheMissOnAbsentKey(t *testing.T) {
	c := newTestFileCache(t)

	_, _, ok := c.Read("never-written", time.Hour)
	assert.False(t, ok)
}

func TestFileCacheTTLBoundary(t *testing.T) {
	c := newTestFileCache(t)
	ttl := 24 * time.Hour

	writeTime := time.Now()
	c.now = func() time.Time { return writeTime }
	c.Write("k1", []byte(`"v"`))

	// Just inside the TTL: readable.
	c.now = func() time.Time { return writeTime.Add(ttl - time.Second) }
	_, writtenAt, ok := c.Read("k1", ttl)
	require.True(t, ok)
	assert.Equal(t, writeTime.Unix(), writtenAt.Unix())

	// Just past the TTL: absent, and the entry is gone.
	c.now = func() time.Time { return writeTime.Add(ttl + time.Second) }
	_, _, ok = c.Read("k1", ttl)
	assert.False(t, ok)

	_, err := os.Stat(filepath.Join(c.Dir, "k1.json"))
	assert.True(t, os.IsNotExist(err), "expired entry should be deleted")
}

func TestFileCacheCorruptEntryIsMissAndDeleted(t *testing.T) {
	c := newTestFileCache(t)

	require.NoError(t, os.MkdirAll(c.Dir, 0o755))
	path := filepath.Join(c.Dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0o644))

	_, _, ok := c.Read("bad", time.Hour)
	assert.False(t, ok)

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "corrupt entry should be deleted")
}

func TestFileCacheOverwrite(t *testing.T) {
	c := newTestFileCache(t)

	c.Write("k1", []byte(`"old"`))
	c.Write("k1", []byte(`"new"`))

	got, _, ok := c.Read("k1", time.Hour)
	require.True(t, ok)
	assert.Equal(t, `"new"`, string(got))
}

func TestFileCacheCreatesDirOnDemand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c := NewFileCache(dir, logger.NewLogger("test", logger.LevelError))

	c.Write("k1", []byte(`"v"`))

	_, _, ok := c.Read("k1", time.Hour)
	assert.True(t, ok)
}

// -----------------------------------------------------------------------------

func TestNoopCacheAlwaysMisses(t *testing.T) {
	c := NewNoopCache()

	c.Write("k1", []byte(`"v"`))
	_, _, ok := c.Read("k1", time.Hour)
	assert.False(t, ok, "disabled cache must behave as pure pass-through")
	assert.NoError(t, c.Close())
}
