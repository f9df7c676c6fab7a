package app

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/bereshit/internal/project"
)

// ListController owns the project snapshot. The snapshot is only ever
// replaced by a full reload; mutations never patch it locally.
type ListController struct {
	ctx    context.Context
	gw     Gateway
	logger *slog.Logger

	loading  bool
	err      string
	projects []project.Project

	// seq identifies the latest reload; older results are dropped.
	seq int
}

// NewListController creates a controller with an empty snapshot.
func NewListController(ctx context.Context, gw Gateway, logger *slog.Logger) *ListController {
	return &ListController{
		ctx:      ctx,
		gw:       gw,
		logger:   logger,
		projects: []project.Project{},
	}
}

// Loading reports whether a reload is in flight.
func (c *ListController) Loading() bool { return c.loading }

// Err returns the last failure message, or "".
func (c *ListController) Err() string { return c.err }

// Projects returns the current snapshot. Callers must not modify it.
func (c *ListController) Projects() []project.Project { return c.projects }

// DismissError clears the error message.
func (c *ListController) DismissError() { c.err = "" }

// Reload enters the loading state and fetches the full list.
func (c *ListController) Reload() tea.Cmd {
	c.seq++
	c.loading = true
	c.err = ""

	seq, ctx, gw := c.seq, c.ctx, c.gw
	return func() tea.Msg {
		projects, err := gw.ListProjects(ctx)
		return projectsLoadedMsg{seq: seq, projects: projects, err: err}
	}
}

// Delete removes a project. Confirmation happens before this is called.
func (c *ListController) Delete(id string) tea.Cmd {
	ctx, gw := c.ctx, c.gw
	return func() tea.Msg {
		return projectDeletedMsg{id: id, err: gw.DeleteProject(ctx, id)}
	}
}

// Open asks the executor to reveal path.
func (c *ListController) Open(path string) tea.Cmd {
	ctx, gw := c.ctx, c.gw
	return func() tea.Msg {
		return folderOpenedMsg{path: path, err: gw.OpenProjectFolder(ctx, path)}
	}
}

// CreationSucceeded reloads after a project was created.
func (c *ListController) CreationSucceeded() tea.Cmd {
	return c.Reload()
}

// Update applies gateway results. handled is false for messages the
// controller does not own.
func (c *ListController) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		if msg.seq != c.seq {
			return nil, true
		}
		c.loading = false
		if msg.err != nil {
			c.logger.Error("list: load projects", "err", msg.err)
			c.err = userMessage(msg.err, msgLoadFailed)
			return nil, true
		}
		c.projects = msg.projects
		if c.projects == nil {
			c.projects = []project.Project{}
		}
		c.err = ""
		return nil, true

	case projectDeletedMsg:
		if msg.err != nil {
			c.logger.Error("list: delete project", "id", msg.id, "err", msg.err)
			c.err = userMessage(msg.err, msgDeleteFailed)
			return nil, true
		}
		return c.Reload(), true

	case folderOpenedMsg:
		if msg.err != nil {
			c.logger.Error("list: open project folder", "path", msg.path, "err", msg.err)
			c.err = userMessage(msg.err, msgOpenFailed)
		}
		return nil, true
	}
	return nil, false
}
