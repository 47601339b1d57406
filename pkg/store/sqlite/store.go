// Package sqlite provides a SQLite-backed page store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-mclib/guikit/pkg/stack"
	"github.com/go-mclib/guikit/pkg/store"
	_ "modernc.org/sqlite"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS gui_pages (
		gui_key    TEXT    NOT NULL,
		page_index INTEGER NOT NULL,
		slot       INTEGER NOT NULL,
		stack_json TEXT    NOT NULL,
		PRIMARY KEY (gui_key, page_index, slot)
	)`,
	`CREATE INDEX IF NOT EXISTS gui_pages_key ON gui_pages (gui_key)`,
}

// Store persists GUI pages in a SQLite database.
type Store struct {
	sqlDB *sql.DB
}

var _ store.PageStore = (*Store)(nil)

// Open opens (creating if needed) and migrates a page database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s := &Store{sqlDB: sqlDB}
	if err := s.migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	for _, stmt := range migrations {
		if _, err := s.sqlDB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SavePage replaces one page inside a transaction.
func (s *Store) SavePage(ctx context.Context, key string, index int, page store.Page) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("gui key is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM gui_pages WHERE gui_key = ? AND page_index = ?`, key, index); err != nil {
		return fmt.Errorf("clear page %d: %w", index, err)
	}

	for slot, st := range page {
		if st.IsEmpty() {
			continue
		}
		payload, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("encode slot %d: %w", slot, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO gui_pages (gui_key, page_index, slot, stack_json) VALUES (?, ?, ?, ?)`,
			key, index, slot, string(payload)); err != nil {
			return fmt.Errorf("insert slot %d: %w", slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit page %d: %w", index, err)
	}
	return nil
}

// LoadPages reads every page of a GUI.
func (s *Store) LoadPages(ctx context.Context, key string) (map[int]store.Page, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT page_index, slot, stack_json FROM gui_pages WHERE gui_key = ? ORDER BY page_index, slot`, key)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	pages := make(map[int]store.Page)
	for rows.Next() {
		var (
			index, slot int
			payload     string
		)
		if err := rows.Scan(&index, &slot, &payload); err != nil {
			return nil, fmt.Errorf("scan page row: %w", err)
		}
		var st stack.Stack
		if err := json.Unmarshal([]byte(payload), &st); err != nil {
			return nil, fmt.Errorf("decode page %d slot %d: %w", index, slot, err)
		}
		page, ok := pages[index]
		if !ok {
			page = make(store.Page)
			pages[index] = page
		}
		page[slot] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}
	return pages, nil
}
