// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history keeps recent prompts and searches in a local sqlite
// database. It feeds the sidebar search suggestions and the line-mode
// prompt history, and like the server-side search log it is best effort:
// callers drop errors rather than surface them.
package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// maxEntries caps the table; the oldest rows are pruned past it.
const maxEntries = 100

const schema = `
CREATE TABLE IF NOT EXISTS searches (
	id      INTEGER PRIMARY KEY AUTOINCREMENT,
	query   TEXT NOT NULL UNIQUE,
	used_at INTEGER NOT NULL DEFAULT (unixepoch())
);
CREATE INDEX IF NOT EXISTS idx_searches_used_at ON searches(used_at DESC);
`

// Store is the search-history database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns ~/.chatpaat/history.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatpaat", "history.db"), nil
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a query, bumping it to the front if already present, and
// prunes past the cap. Blank queries are ignored.
func (s *Store) Add(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	// Re-adding an existing query moves it to the front.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM searches WHERE query = ?`, query); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO searches (query) VALUES (?)`, query); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		DELETE FROM searches WHERE id NOT IN (
			SELECT id FROM searches ORDER BY id DESC LIMIT ?)`,
		maxEntries)
	return err
}

// Recent returns up to limit queries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > maxEntries {
		limit = maxEntries
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT query FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Matching returns recent queries that start with prefix, newest first.
// An empty prefix behaves like Recent.
func (s *Store) Matching(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return s.Recent(ctx, limit)
	}
	if limit <= 0 || limit > maxEntries {
		limit = maxEntries
	}
	pattern := strings.NewReplacer("%", `\%`, "_", `\_`).Replace(prefix) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT query FROM searches WHERE query LIKE ? ESCAPE '\' ORDER BY id DESC LIMIT ?`,
		pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Clear empties the history.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM searches`)
	return err
}
