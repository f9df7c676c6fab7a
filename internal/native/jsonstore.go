package native

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/marcus/bereshit/internal/project"
)

// JSONStore keeps the project list in a single pretty-printed JSON file.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

// NewJSONStore returns a store backed by path. The file is created on the
// first write.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file.
func (s *JSONStore) Path() string { return s.path }

// Close is a no-op.
func (s *JSONStore) Close() error { return nil }

// List reads the file. A missing file is an empty list.
func (s *JSONStore) List(ctx context.Context) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Put upserts p by id.
func (s *JSONStore) Put(ctx context.Context, p project.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.read()
	if err != nil {
		return err
	}
	replaced := false
	for i := range projects {
		if projects[i].ID == p.ID {
			projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, p)
	}
	return s.write(projects)
}

// Delete removes the record with id.
func (s *JSONStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.read()
	if err != nil {
		return err
	}
	for i := range projects {
		if projects[i].ID == id {
			projects = append(projects[:i], projects[i+1:]...)
			return s.write(projects)
		}
	}
	return ErrNotFound
}

func (s *JSONStore) read() ([]project.Project, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []project.Project{}, nil
		}
		return nil, fmt.Errorf("failed to read projects file: %w", err)
	}
	var projects []project.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse projects file: %w", err)
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return projects, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (s *JSONStore) write(projects []project.Project) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize projects: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".projects-*.json")
	if err != nil {
		return fmt.Errorf("failed to write projects file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write projects file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write projects file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write projects file: %w", err)
	}
	return nil
}
