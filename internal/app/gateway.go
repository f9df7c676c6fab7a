package app

import (
	"context"

	"github.com/marcus/bereshit/internal/project"
)

// Gateway is the command surface the screen depends on. It is satisfied by
// *gateway.Gateway.
type Gateway interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	CreateProject(ctx context.Context, data project.CreateData) (project.Project, error)
	DeleteProject(ctx context.Context, id string) error
	OpenProjectFolder(ctx context.Context, path string) error
}
