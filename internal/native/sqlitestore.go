package native

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcus/bereshit/internal/project"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps projects in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLiteStore opens (and creates if needed) the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", cleanPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrateSQLiteStore(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db, path: cleanPath}, nil
}

func migrateSQLiteStore(db *sql.DB) error {
	statements := []string{
		`PRAGMA journal_mode=WAL;`,
		`CREATE TABLE IF NOT EXISTS projects (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			path TEXT NOT NULL,
			description TEXT,
			created_at TEXT NOT NULL,
			last_modified TEXT NOT NULL,
			config TEXT NOT NULL
		);`,
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("project store migration failed: %w", err)
		}
	}
	return nil
}

// Path returns the database file.
func (s *SQLiteStore) Path() string { return s.path }

// Close closes the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// List returns projects in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]project.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, path, description, created_at, last_modified, config
		 FROM projects ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		var (
			p      project.Project
			desc   sql.NullString
			config string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Path, &desc, &p.CreatedAt, &p.LastModified, &config); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if desc.Valid {
			d := desc.String
			p.Description = &d
		}
		if err := json.Unmarshal([]byte(config), &p.Config); err != nil {
			return nil, fmt.Errorf("failed to parse config of project %s: %w", p.ID, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	return projects, nil
}

// Put upserts p by id, keeping the original insertion position.
func (s *SQLiteStore) Put(ctx context.Context, p project.Project) error {
	config, err := json.Marshal(p.Config)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	var desc sql.NullString
	if p.Description != nil {
		desc = sql.NullString{String: *p.Description, Valid: true}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, path, description, created_at, last_modified, config)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			path = excluded.path,
			description = excluded.description,
			created_at = excluded.created_at,
			last_modified = excluded.last_modified,
			config = excluded.config`,
		p.ID, p.Name, p.Path, desc, p.CreatedAt, p.LastModified, string(config))
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// Delete removes the record with id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
