package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/wetshaving/brushmatch/pkg/types"
	_ "modernc.org/sqlite"
)

// SQLiteCache implements Cache backed by a SQLite file. The driver is pure
// Go, so the cache works in CGO-disabled builds.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) a SQLite-backed cache.
func NewSQLite(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS correct_matches (
			normalized     TEXT PRIMARY KEY,
			schema_version INTEGER NOT NULL,
			result_json    TEXT NOT NULL,
			confirmed_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

// Lookup returns the confirmed result for normalized text. Version
// mismatches and undecodable rows are misses.
func (c *SQLiteCache) Lookup(normalized string) (*types.BrushMatchResult, error) {
	var version int
	var resultJSON string
	err := c.db.QueryRow(
		"SELECT schema_version, result_json FROM correct_matches WHERE normalized = ?",
		normalized,
	).Scan(&version, &resultJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}

	if version != SchemaVersion {
		return nil, nil
	}
	var result types.BrushMatchResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, nil
	}
	if !valid(normalized, &result) {
		return nil, nil
	}
	return &result, nil
}

// Record stores a confirmed result, replacing any previous entry.
func (c *SQLiteCache) Record(normalized string, result *types.BrushMatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	_, err = c.db.Exec(`
		INSERT INTO correct_matches (normalized, schema_version, result_json)
		VALUES (?, ?, ?)
		ON CONFLICT(normalized) DO UPDATE SET
			schema_version = excluded.schema_version,
			result_json = excluded.result_json,
			confirmed_at = CURRENT_TIMESTAMP
	`, normalized, SchemaVersion, string(data))
	if err != nil {
		return fmt.Errorf("recording match: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
