// Package gateway forwards project operations to a command executor.
//
// The gateway is deliberately thin: it encodes arguments, invokes the named
// command, decodes the response and logs the outcome. Executor errors are
// returned unchanged so callers can inspect them.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/marcus/bereshit/internal/project"
)

// Command names understood by the executor.
const (
	CmdListProjects      = "get_projects_list"
	CmdCreateProject     = "create_project"
	CmdDeleteProject     = "delete_project"
	CmdOpenProjectFolder = "open_project_folder"
)

// Executor runs a named command with JSON encoded arguments and returns the
// JSON encoded result. A nil or empty result means "no payload".
type Executor interface {
	Invoke(ctx context.Context, command string, args json.RawMessage) (json.RawMessage, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, command string, args json.RawMessage) (json.RawMessage, error)

// Invoke calls f.
func (f ExecutorFunc) Invoke(ctx context.Context, command string, args json.RawMessage) (json.RawMessage, error) {
	return f(ctx, command, args)
}

// CreateArgs is the create_project request payload.
type CreateArgs struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	Description *string `json:"description"`
}

// DeleteArgs is the delete_project request payload.
type DeleteArgs struct {
	ProjectID string `json:"projectId"`
}

// OpenArgs is the open_project_folder request payload.
type OpenArgs struct {
	ProjectPath string `json:"projectPath"`
}

// Gateway is the client side of the command boundary.
type Gateway struct {
	exec   Executor
	logger *slog.Logger
}

// New creates a Gateway. A nil logger falls back to slog.Default().
func New(exec Executor, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{exec: exec, logger: logger}
}

// ListProjects returns every known project in executor order.
func (g *Gateway) ListProjects(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	if err := g.call(ctx, CmdListProjects, nil, &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return projects, nil
}

// CreateProject creates a project and returns the stored record.
// An empty description is sent as null.
func (g *Gateway) CreateProject(ctx context.Context, data project.CreateData) (project.Project, error) {
	args := CreateArgs{
		Name:        data.Name,
		Path:        data.Path,
		Description: data.OptionalDescription(),
	}
	var created project.Project
	if err := g.call(ctx, CmdCreateProject, args, &created); err != nil {
		return project.Project{}, err
	}
	return created, nil
}

// DeleteProject removes the project with the given id.
func (g *Gateway) DeleteProject(ctx context.Context, id string) error {
	return g.call(ctx, CmdDeleteProject, DeleteArgs{ProjectID: id}, nil)
}

// OpenProjectFolder asks the executor to reveal path in the OS file manager.
func (g *Gateway) OpenProjectFolder(ctx context.Context, path string) error {
	return g.call(ctx, CmdOpenProjectFolder, OpenArgs{ProjectPath: path}, nil)
}

func (g *Gateway) call(ctx context.Context, command string, args any, out any) error {
	var payload json.RawMessage
	if args != nil {
		data, err := json.Marshal(args)
		if err != nil {
			g.logger.Error("gateway: encode arguments", "command", command, "err", err)
			return fmt.Errorf("encode %s arguments: %w", command, err)
		}
		payload = data
	}

	result, err := g.exec.Invoke(ctx, command, payload)
	if err != nil {
		g.logger.Error("gateway: command failed", "command", command, "err", err)
		return err
	}

	if out != nil && len(result) > 0 {
		if err := json.Unmarshal(result, out); err != nil {
			g.logger.Error("gateway: decode response", "command", command, "err", err)
			return fmt.Errorf("decode %s response: %w", command, err)
		}
	}

	g.logger.Debug("gateway: command ok", "command", command)
	return nil
}
