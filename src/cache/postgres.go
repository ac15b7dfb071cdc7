package cache

import (
	"database/sql"
	"time"

	"stock-watchlist/src/logger"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------
// PostgresCache keeps cache entries in a Postgres table, for deployments where
// several instances want to share one cache. Selected with
// cache.backend: postgres.
// -----------------------------------------------------------------------------

type PostgresCache struct {
	DB     *sql.DB
	Logger *logger.Logger
	now    func() time.Time
}

// -----------------------------------------------------------------------------

func NewPostgresCache(dsn string, log *logger.Logger) (*PostgresCache, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	c := &PostgresCache{DB: db, Logger: log, now: time.Now}
	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// -----------------------------------------------------------------------------

func (c *PostgresCache) initialize() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache_entries (
			key        TEXT PRIMARY KEY,
			written_at BIGINT NOT NULL,
			payload    BYTEA NOT NULL
		);
	`
	_, err := c.DB.Exec(query)
	return err
}

// -----------------------------------------------------------------------------

func (c *PostgresCache) Read(key string, ttl time.Duration) ([]byte, time.Time, bool) {
	var writtenUnix int64
	var payload []byte

	row := c.DB.QueryRow("SELECT written_at, payload FROM cache_entries WHERE key = $1", key)
	if err := row.Scan(&writtenUnix, &payload); err != nil {
		if err != sql.ErrNoRows {
			c.Logger.Warning("Cache read failed for %s: %v", key, err)
		}
		return nil, time.Time{}, false
	}

	writtenAt := time.Unix(writtenUnix, 0)
	if c.now().Sub(writtenAt) > ttl || len(payload) == 0 {
		c.delete(key)
		return nil, time.Time{}, false
	}

	return payload, writtenAt, true
}

// -----------------------------------------------------------------------------

func (c *PostgresCache) Write(key string, payload []byte) {
	query := `
		INSERT INTO cache_entries (key, written_at, payload) VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET written_at = EXCLUDED.written_at, payload = EXCLUDED.payload;
	`
	if _, err := c.DB.Exec(query, key, c.now().Unix(), payload); err != nil {
		c.Logger.Warning("Cache write failed for %s: %v", key, err)
	}
}

// -----------------------------------------------------------------------------

func (c *PostgresCache) Close() error {
	return c.DB.Close()
}

// -----------------------------------------------------------------------------

func (c *PostgresCache) delete(key string) {
	if _, err := c.DB.Exec("DELETE FROM cache_entries WHERE key = $1", key); err != nil {
		c.Logger.Debug("Failed to delete cache entry %s: %v", key, err)
	}
}
