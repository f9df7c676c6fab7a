package app

import (
	"context"
	"errors"
	"testing"

	"github.com/marcus/bereshit/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apply runs a controller command and feeds its message back.
func apply(t *testing.T, c *ListController, msg any) {
	t.Helper()
	cmd, handled := c.Update(msg)
	require.True(t, handled)
	for cmd != nil {
		next := cmd()
		cmd, _ = c.Update(next)
	}
}

func TestListController_ReloadReplacesSnapshot(t *testing.T) {
	gw := newFakeGateway(sample("a", "alpha"), sample("b", "beta"))
	c := NewListController(context.Background(), gw, testLogger())

	cmd := c.Reload()
	assert.True(t, c.Loading())
	apply(t, c, cmd())
	assert.False(t, c.Loading())
	assert.Equal(t, gw.projects, c.Projects())

	// The next response fully replaces the snapshot, no merging.
	gw.projects = []project.Project{sample("c", "gamma")}
	apply(t, c, c.Reload()())
	require.Len(t, c.Projects(), 1)
	assert.Equal(t, "c", c.Projects()[0].ID)
}

func TestListController_LoadFailureKeepsSnapshot(t *testing.T) {
	gw := newFakeGateway(sample("a", "alpha"))
	c := NewListController(context.Background(), gw, testLogger())
	apply(t, c, c.Reload()())

	gw.listErr = errors.New("failed to read projects file")
	apply(t, c, c.Reload()())

	assert.False(t, c.Loading(), "loading is cleared on failure")
	assert.Equal(t, "failed to read projects file", c.Err())
	require.Len(t, c.Projects(), 1, "previous snapshot kept")

	gw.listErr = nil
	apply(t, c, c.Reload()())
	assert.Empty(t, c.Err(), "success clears the error")
}

func TestListController_EmptyErrorMessageFallsBack(t *testing.T) {
	gw := newFakeGateway()
	gw.listErr = errors.New("")
	c := NewListController(context.Background(), gw, testLogger())

	apply(t, c, c.Reload()())
	assert.Equal(t, msgLoadFailed, c.Err())
}

func TestListController_StaleReloadIgnored(t *testing.T) {
	gw := newFakeGateway(sample("a", "alpha"))
	c := NewListController(context.Background(), gw, testLogger())

	first := c.Reload()
	staleMsg := first()

	gw.projects = []project.Project{sample("b", "beta")}
	second := c.Reload()
	apply(t, c, second())

	apply(t, c, staleMsg)
	require.Len(t, c.Projects(), 1)
	assert.Equal(t, "b", c.Projects()[0].ID, "older response must not overwrite newer one")
	assert.False(t, c.Loading())
}

func TestListController_DeleteReloads(t *testing.T) {
	gw := newFakeGateway(sample("a", "alpha"), sample("b", "beta"), sample("c", "gamma"))
	c := NewListController(context.Background(), gw, testLogger())
	apply(t, c, c.Reload()())

	// Another process removes c; the UI still shows it.
	gw.removeExternally("c")
	require.Len(t, c.Projects(), 3)

	before := gw.lists()
	apply(t, c, c.Delete("a")())

	assert.Equal(t, before+1, gw.lists(), "delete triggers one full reload")
	require.Len(t, c.Projects(), 1)
	assert.Equal(t, "b", c.Projects()[0].ID)
}

func TestListController_DeleteFailure(t *testing.T) {
	gw := newFakeGateway(sample("a", "alpha"))
	c := NewListController(context.Background(), gw, testLogger())
	apply(t, c, c.Reload()())

	gw.deleteErr = errors.New("permission denied")
	before := gw.lists()
	apply(t, c, c.Delete("a")())

	assert.Equal(t, "permission denied", c.Err())
	assert.Equal(t, before, gw.lists(), "no reload after a failed delete")
	assert.Len(t, c.Projects(), 1)
}

func TestListController_OpenFailureKeepsProjects(t *testing.T) {
	gw := newFakeGateway(sample("a", "alpha"))
	c := NewListController(context.Background(), gw, testLogger())
	apply(t, c, c.Reload()())

	gw.openErr = errors.New("")
	apply(t, c, c.Open("/tmp/alpha")())

	assert.Equal(t, msgOpenFailed, c.Err())
	assert.Len(t, c.Projects(), 1)
	assert.Equal(t, []string{"/tmp/alpha"}, gw.openCalls)

	c.DismissError()
	assert.Empty(t, c.Err())
}

func TestListController_IgnoresForeignMessages(t *testing.T) {
	c := NewListController(context.Background(), newFakeGateway(), testLogger())
	_, handled := c.Update(pathPickedMsg{})
	assert.False(t, handled)
}
