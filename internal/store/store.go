// Package store handles SQLite persistence for the planner.
//
// It exposes exactly the primitive shapes the core needs: list a
// collection, get/add/delete a record, update named fields, and bulk
// delete by foreign key. Single updates are atomic; multi-record order
// batches run in one transaction, and every order write carries the full
// final value so a resumed batch converges regardless of how much of a
// prior attempt landed.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound indicates the requested record does not exist.
// Callers on the interactive path treat it as a stale reference and no-op.
var ErrNotFound = errors.New("record not found")

// Store is the SQLite database handle.
type Store struct {
	db *sql.DB
}

// DB returns the underlying sql.DB for advanced queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Open opens or creates the planner database under dir/.umi/planner.db.
func Open(plannerDir string) (*Store, error) {
	dbDir := filepath.Join(plannerDir, ".umi")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .umi directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, "planner.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// OpenInMemory opens an in-memory database (for testing).
func OpenInMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CurrentDBVersion is the current database schema version.
const CurrentDBVersion = 1

// initialize creates the database schema.
func (s *Store) initialize() error {
	schema := `
		-- Enable WAL mode for better concurrency
		PRAGMA journal_mode = WAL;

		-- Performance optimizations
		PRAGMA synchronous = NORMAL;      -- Faster writes (safe with WAL)
		PRAGMA temp_store = MEMORY;       -- Keep temp tables in memory
		PRAGMA foreign_keys = ON;

		-- Metadata table for version tracking
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		-- Group containers. page_id scopes groups to a user page (NULL = main page).
		CREATE TABLE IF NOT EXISTS groups (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			ord INTEGER NOT NULL DEFAULT 0,
			page_id INTEGER
		);

		-- Objects within groups.
		CREATE TABLE IF NOT EXISTS objects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			group_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			ord INTEGER NOT NULL DEFAULT 0,
			default_duration INTEGER NOT NULL DEFAULT 0
		);

		-- Typed fields owned by objects.
		CREATE TABLE IF NOT EXISTS object_fields (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			object_id INTEGER NOT NULL,
			type TEXT NOT NULL,
			label TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT ''
		);

		-- Binary attachments owned by objects.
		CREATE TABLE IF NOT EXISTS attachments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			object_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			mime_type TEXT NOT NULL DEFAULT '',
			data BLOB
		);

		-- Placed blocks on the weekly grid.
		CREATE TABLE IF NOT EXISTS schedule_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			group_id INTEGER NOT NULL,
			object_id INTEGER NOT NULL,
			object_name TEXT NOT NULL,
			day TEXT NOT NULL,
			time TEXT NOT NULL,
			duration INTEGER NOT NULL DEFAULT 1
		);

		-- Flat todo list.
		CREATE TABLE IF NOT EXISTS todos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			text TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			ord INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL DEFAULT 0
		);

		-- User-defined pages scoping their own groups.
		CREATE TABLE IF NOT EXISTS pages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT '',
			ord INTEGER NOT NULL DEFAULT 0
		);

		-- Indexes for sibling-set and cascade queries
		CREATE INDEX IF NOT EXISTS idx_groups_page ON groups(page_id);
		CREATE INDEX IF NOT EXISTS idx_objects_group ON objects(group_id);
		CREATE INDEX IF NOT EXISTS idx_fields_object ON object_fields(object_id);
		CREATE INDEX IF NOT EXISTS idx_attachments_object ON attachments(object_id);
		CREATE INDEX IF NOT EXISTS idx_schedule_group ON schedule_items(group_id);
		CREATE INDEX IF NOT EXISTS idx_schedule_object ON schedule_items(object_id);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('version', ?)`,
		fmt.Sprintf("%d", CurrentDBVersion))
	if err != nil {
		return fmt.Errorf("failed to set database version: %w", err)
	}

	return nil
}

// Stats contains record counts per collection.
type Stats struct {
	Pages         int
	Groups        int
	Objects       int
	Fields        int
	Attachments   int
	ScheduleItems int
	Todos         int
}

// Stats returns record counts for every collection.
func (s *Store) Stats() (*Stats, error) {
	var stats Stats
	counts := []struct {
		table string
		dest  *int
	}{
		{"pages", &stats.Pages},
		{"groups", &stats.Groups},
		{"objects", &stats.Objects},
		{"object_fields", &stats.Fields},
		{"attachments", &stats.Attachments},
		{"schedule_items", &stats.ScheduleItems},
		{"todos", &stats.Todos},
	}
	for _, c := range counts {
		if err := s.db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
