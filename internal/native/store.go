package native

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/marcus/bereshit/internal/config"
	"github.com/marcus/bereshit/internal/project"
)

// ErrNotFound is returned when a project id is not in the store.
var ErrNotFound = errors.New("project not found")

// Store persists the project list.
type Store interface {
	// List returns all projects in insertion order.
	List(ctx context.Context) ([]project.Project, error)
	// Put inserts p, or replaces the record with the same id.
	Put(ctx context.Context, p project.Project) error
	// Delete removes the record with the given id.
	Delete(ctx context.Context, id string) error
	// Path returns the backing file.
	Path() string
	Close() error
}

// OpenStore opens the store selected by cfg. dataDir is used when cfg has
// no explicit path.
func OpenStore(cfg config.StoreConfig, dataDir string) (Store, error) {
	switch cfg.Driver {
	case config.DriverJSON, "":
		path := cfg.Path
		if path == "" {
			path = filepath.Join(dataDir, "projects.json")
		}
		return NewJSONStore(path), nil
	case config.DriverSQLite:
		path := cfg.Path
		if path == "" {
			path = filepath.Join(dataDir, "projects.db")
		}
		return OpenSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
