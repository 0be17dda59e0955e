// Package cache memoizes loaded corpora in SQLite, keyed by source identity.
// The corpus loader itself stays stateless; callers compose this layer
// explicitly when they want page views to stop refetching the whole corpus.
package cache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/edudata/tcc-insights/models"
	"github.com/edudata/tcc-insights/pkg/corpus"
)

// ErrMiss is returned when no fresh entry exists for a source. It is normal
// control flow: the caller loads from the source and Puts the result.
var ErrMiss = errors.New("cache miss")

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

-- One cached corpus per source; records stored as a JSON blob, the derived
-- views are rebuilt on read.
CREATE TABLE IF NOT EXISTS corpora (
    source_id  TEXT PRIMARY KEY,
    records    TEXT NOT NULL,
    skipped    INTEGER NOT NULL DEFAULT 0,
    fetched_at INTEGER NOT NULL
);
`

// Cache is a SQLite-backed store of processed corpora.
type Cache struct {
	db   *sql.DB
	path string
}

// openDB opens a SQLite database at the given path.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// Open opens or creates the cache database at path. ":memory:" works for
// tests.
func Open(path string) (*Cache, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	c := &Cache{db: db, path: path}
	if err := c.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return c, nil
}

func (c *Cache) initSchema() error {
	_, err := c.db.Exec(schema)
	return err
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached corpus for a source if one exists and is younger
// than maxAge. maxAge <= 0 never hits.
func (c *Cache) Get(sourceID string, maxAge time.Duration) (*corpus.Corpus, error) {
	if maxAge <= 0 {
		return nil, ErrMiss
	}

	var blob string
	var skipped int
	var fetchedAt int64
	err := c.db.QueryRow(
		"SELECT records, skipped, fetched_at FROM corpora WHERE source_id = ?",
		sourceID,
	).Scan(&blob, &skipped, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, ErrMiss
	}

	var records []models.ProcessedRecord
	if err := json.Unmarshal([]byte(blob), &records); err != nil {
		// A corrupt entry behaves like a miss; the next Put overwrites it.
		return nil, ErrMiss
	}

	result := corpus.New(records)
	result.Skipped = skipped
	return result, nil
}

// Put stores a corpus for a source, replacing any previous entry.
func (c *Cache) Put(sourceID string, crp *corpus.Corpus) error {
	blob, err := json.Marshal(crp.Records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	_, err = c.db.Exec(
		`INSERT INTO corpora (source_id, records, skipped, fetched_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(source_id) DO UPDATE SET
		   records = excluded.records,
		   skipped = excluded.skipped,
		   fetched_at = excluded.fetched_at`,
		sourceID, string(blob), crp.Skipped, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Invalidate removes the entry for a source, if any.
func (c *Cache) Invalidate(sourceID string) error {
	_, err := c.db.Exec("DELETE FROM corpora WHERE source_id = ?", sourceID)
	if err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}
