package native

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/marcus/bereshit/internal/config"
	"github.com/marcus/bereshit/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProject(id, name string) project.Project {
	return project.Project{
		ID:           id,
		Name:         name,
		Path:         "/tmp/" + name,
		CreatedAt:    "2024-05-01T10:30:00Z",
		LastModified: "2024-05-01T10:30:00Z",
		Config:       project.DefaultConfig(),
	}
}

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := OpenSQLiteStore(filepath.Join(dir, "projects.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"json":   NewJSONStore(filepath.Join(dir, "data", "projects.json")),
		"sqlite": sqlite,
	}
}

func TestStore_EmptyList(t *testing.T) {
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			projects, err := store.List(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, projects)
			assert.Empty(t, projects)
		})
	}
}

func TestStore_PutListDelete(t *testing.T) {
	ctx := context.Background()
	for name, store := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			desc := "notes"
			a := sampleProject("a", "alpha")
			a.Description = &desc
			b := sampleProject("b", "beta")

			require.NoError(t, store.Put(ctx, a))
			require.NoError(t, store.Put(ctx, b))

			projects, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, projects, 2)
			assert.Equal(t, "a", projects[0].ID, "insertion order")
			assert.Equal(t, "notes", projects[0].DescriptionText())
			assert.Nil(t, projects[1].Description)
			assert.Equal(t, project.DefaultConfig(), projects[1].Config)

			// Upsert keeps position.
			a.Name = "alpha-renamed"
			require.NoError(t, store.Put(ctx, a))
			projects, err = store.List(ctx)
			require.NoError(t, err)
			require.Len(t, projects, 2)
			assert.Equal(t, "alpha-renamed", projects[0].Name)

			require.NoError(t, store.Delete(ctx, "a"))
			projects, err = store.List(ctx)
			require.NoError(t, err)
			require.Len(t, projects, 1)
			assert.Equal(t, "b", projects[0].ID)

			assert.ErrorIs(t, store.Delete(ctx, "a"), ErrNotFound)
		})
	}
}

func TestJSONStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewJSONStore(path).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse projects file")
}

func TestJSONStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewJSONStore(filepath.Join(t.TempDir(), "p.json")).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenStore_Drivers(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenStore(config.StoreConfig{Driver: config.DriverJSON}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "projects.json"), s.Path())

	s, err = OpenStore(config.StoreConfig{Driver: config.DriverSQLite}, dir)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, filepath.Join(dir, "projects.db"), s.Path())

	_, err = OpenStore(config.StoreConfig{Driver: "bolt"}, dir)
	assert.Error(t, err)
}
