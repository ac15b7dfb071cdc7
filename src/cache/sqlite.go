package cache

import (
	"database/sql"
	"time"

	"stock-watchlist/src/logger"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------
// SQLiteCache keeps cache entries in a single SQLite table. Selected with
// cache.backend: sqlite. Like every backend it is best-effort: storage errors
// degrade to misses and dropped writes.
// -----------------------------------------------------------------------------

type SQLiteCache struct {
	DB     *sql.DB
	Logger *logger.Logger
	now    func() time.Time
}

// -----------------------------------------------------------------------------

func NewSQLiteCache(dbPath string, log *logger.Logger) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	c := &SQLiteCache{DB: db, Logger: log, now: time.Now}

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		log.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		log.Warning("Failed to set synchronous mode: %v", err)
	}

	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// -----------------------------------------------------------------------------

func (c *SQLiteCache) initialize() error {
	// Entries survive restarts, so the table is created, never recreated.
	query := `
		CREATE TABLE IF NOT EXISTS cache_entries (
			key        TEXT PRIMARY KEY,
			written_at INTEGER NOT NULL,
			payload    BLOB NOT NULL
		);
	`
	_, err := c.DB.Exec(query)
	return err
}

// -----------------------------------------------------------------------------

func (c *SQLiteCache) Read(key string, ttl time.Duration) ([]byte, time.Time, bool) {
	var writtenUnix int64
	var payload []byte

	row := c.DB.QueryRow("SELECT written_at, payload FROM cache_entries WHERE key = ?", key)
	if err := row.Scan(&writtenUnix, &payload); err != nil {
		if err != sql.ErrNoRows {
			c.Logger.Warning("Cache read failed for %s: %v", key, err)
		}
		return nil, time.Time{}, false
	}

	writtenAt := time.Unix(writtenUnix, 0)
	if c.now().Sub(writtenAt) > ttl {
		c.delete(key)
		return nil, time.Time{}, false
	}
	if len(payload) == 0 {
		c.delete(key)
		return nil, time.Time{}, false
	}

	return payload, writtenAt, true
}

// -----------------------------------------------------------------------------

func (c *SQLiteCache) Write(key string, payload []byte) {
	query := `
		INSERT INTO cache_entries (key, written_at, payload) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET written_at = excluded.written_at, payload = excluded.payload;
	`
	if _, err := c.DB.Exec(query, key, c.now().Unix(), payload); err != nil {
		c.Logger.Warning("Cache write failed for %s: %v", key, err)
	}
}

// -----------------------------------------------------------------------------

func (c *SQLiteCache) Close() error {
	return c.DB.Close()
}

// -----------------------------------------------------------------------------

func (c *SQLiteCache) delete(key string) {
	if _, err := c.DB.Exec("DELETE FROM cache_entries WHERE key = ?", key); err != nil {
		c.Logger.Debug("Failed to delete cache entry %s: %v", key, err)
	}
}
