package discovery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultTTL is how long a cached document stays fresh when no TTL is given.
const DefaultTTL = 24 * time.Hour

// Cache is a persistent store of Discovery documents keyed by URL.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
	now func() time.Time
}

// OpenCache opens (or creates) the SQLite cache at path. Use ":memory:" for
// a process-local cache.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS discovery_docs (
		url TEXT PRIMARY KEY,
		body BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_discovery_fetched_at ON discovery_docs(fetched_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{db: db, ttl: ttl, now: time.Now}, nil
}

// Get returns the cached document for url if it is younger than the TTL.
func (c *Cache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	var body []byte
	var fetchedAt int64
	err := c.db.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM discovery_docs WHERE url = ?`, url,
	).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query cache: %w", err)
	}
	if c.now().Sub(time.Unix(fetchedAt, 0)) >= c.ttl {
		return nil, false, nil
	}
	return body, true, nil
}

// Put stores body for url, replacing any previous entry.
func (c *Cache) Put(ctx context.Context, url string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO discovery_docs (url, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		url, body, c.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	return nil
}

// Purge deletes expired entries and returns how many were removed.
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.ttl).Unix()
	result, err := c.db.ExecContext(ctx, `DELETE FROM discovery_docs WHERE fetched_at <= ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}
