// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// =============================================================================
// RESPONSE CACHE
// =============================================================================

// Cache stores list-endpoint responses in a local sqlite database so
// repeated completion queries within the configured window skip the
// network. Mutating calls invalidate the affected endpoint's entries.
type Cache struct {
	db       *sql.DB
	ttl      time.Duration
	maxBytes int64
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS responses (
	key        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_responses_created ON responses(created_at);
`

// OpenCache opens (creating if necessary) the cache database at path.
func OpenCache(path string, ttl time.Duration, maxBytes int64) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Single-connection access keeps sqlite happy without a WAL dance;
	// the shell is single-threaded anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{db: db, ttl: ttl, maxBytes: maxBytes}, nil
}

// Get returns the cached body for key when present and fresh.
func (c *Cache) Get(key string) ([]byte, bool) {
	var (
		body    []byte
		created int64
	)
	err := c.db.QueryRow(
		"SELECT body, created_at FROM responses WHERE key = ?", key,
	).Scan(&body, &created)
	if err != nil {
		return nil, false
	}
	if time.Since(time.Unix(created, 0)) > c.ttl {
		c.db.Exec("DELETE FROM responses WHERE key = ?", key)
		return nil, false
	}
	return body, true
}

// Put stores body under key, evicting expired and oldest entries when
// the database outgrows its size budget. Failures are ignored; the cache
// is an optimization, not a dependency.
func (c *Cache) Put(key string, body []byte) {
	c.db.Exec(
		"INSERT OR REPLACE INTO responses (key, body, created_at) VALUES (?, ?, ?)",
		key, body, time.Now().Unix(),
	)
	c.evict()
}

// InvalidatePrefix drops every entry whose key starts with prefix.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.db.Exec("DELETE FROM responses WHERE key LIKE ? ESCAPE '\\'", likePrefix(prefix))
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.db.Exec("DELETE FROM responses")
}

// Count returns the number of cached entries, for the status command.
func (c *Cache) Count() int {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM responses").Scan(&n); err != nil {
		return 0
	}
	return n
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) evict() {
	cutoff := time.Now().Add(-c.ttl).Unix()
	c.db.Exec("DELETE FROM responses WHERE created_at < ?", cutoff)

	if c.maxBytes <= 0 {
		return
	}
	var pageCount, pageSize int64
	if err := c.db.QueryRow("PRAGMA page_count").Scan(&pageCount); err != nil {
		return
	}
	if err := c.db.QueryRow("PRAGMA page_size").Scan(&pageSize); err != nil {
		return
	}
	if pageCount*pageSize <= c.maxBytes {
		return
	}
	// Drop the oldest quarter and compact.
	c.db.Exec(`DELETE FROM responses WHERE key IN (
		SELECT key FROM responses ORDER BY created_at ASC
		LIMIT (SELECT COUNT(*)/4 FROM responses))`)
	c.db.Exec("VACUUM")
}

// likePrefix escapes LIKE metacharacters in prefix and appends the
// wildcard.
func likePrefix(prefix string) string {
	escaped := make([]byte, 0, len(prefix)+4)
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case '%', '_', '\\':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, prefix[i])
	}
	return string(escaped) + "%"
}
