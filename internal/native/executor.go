// Package native implements the project commands behind the gateway:
// persistence of the project list, creation of project folders and
// revealing folders in the OS file manager.
package native

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcus/bereshit/internal/gateway"
	"github.com/marcus/bereshit/internal/project"
)

// ErrUnknownCommand is returned for command names with no handler.
var ErrUnknownCommand = errors.New("unknown command")

type handler func(ctx context.Context, args json.RawMessage) (any, error)

// Executor dispatches gateway commands to the store and the OS.
type Executor struct {
	store    Store
	opener   Opener
	defaults project.Config
	logger   *slog.Logger

	handlers map[string]handler

	// Overridable in tests.
	now   func() time.Time
	newID func() string

	onWrite func()
}

// Option configures an Executor.
type Option func(*Executor)

// WithOpener replaces the system folder opener.
func WithOpener(o Opener) Option {
	return func(e *Executor) { e.opener = o }
}

// WithDefaults sets the config block given to new projects.
func WithDefaults(c project.Config) Option {
	return func(e *Executor) { e.defaults = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) { e.now = now }
}

// WithIDGenerator overrides project id generation.
func WithIDGenerator(f func() string) Option {
	return func(e *Executor) { e.newID = f }
}

// OnWrite registers fn to run after every successful store mutation.
func OnWrite(fn func()) Option {
	return func(e *Executor) { e.onWrite = fn }
}

// NewExecutor creates an Executor over store.
func NewExecutor(store Store, opts ...Option) *Executor {
	e := &Executor{
		store:    store,
		opener:   SystemOpener{},
		defaults: project.DefaultConfig(),
		logger:   slog.Default(),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(e)
	}
	e.handlers = map[string]handler{
		gateway.CmdListProjects:      e.listProjects,
		gateway.CmdCreateProject:     e.createProject,
		gateway.CmdDeleteProject:     e.deleteProject,
		gateway.CmdOpenProjectFolder: e.openProjectFolder,
	}
	return e
}

// Invoke runs command. It satisfies gateway.Executor.
func (e *Executor) Invoke(ctx context.Context, command string, args json.RawMessage) (json.RawMessage, error) {
	h, ok := e.handlers[command]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
	result, err := h(ctx, args)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	out, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", command, err)
	}
	return out, nil
}

func (e *Executor) listProjects(ctx context.Context, _ json.RawMessage) (any, error) {
	return e.store.List(ctx)
}

func (e *Executor) createProject(ctx context.Context, raw json.RawMessage) (any, error) {
	var args gateway.CreateArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if strings.TrimSpace(args.Name) == "" {
		return nil, errors.New("name is required")
	}
	if strings.TrimSpace(args.Path) == "" {
		return nil, errors.New("path is required")
	}

	projectPath := filepath.Join(args.Path, args.Name)
	if err := os.MkdirAll(projectPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create project directory: %w", err)
	}

	cfg := e.defaults
	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(projectPath, project.ConfigFileName), content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	now := project.Timestamp(e.now())
	p := project.Project{
		ID:           e.newID(),
		Name:         args.Name,
		Path:         projectPath,
		CreatedAt:    now,
		LastModified: now,
		Description:  args.Description,
		Config:       cfg,
	}
	if err := e.store.Put(ctx, p); err != nil {
		return nil, err
	}
	e.written()
	e.logger.Info("native: project created", "id", p.ID, "path", p.Path)
	return p, nil
}

func (e *Executor) deleteProject(ctx context.Context, raw json.RawMessage) (any, error) {
	var args gateway.DeleteArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := e.store.Delete(ctx, args.ProjectID); err != nil {
		return nil, err
	}
	e.written()
	e.logger.Info("native: project removed", "id", args.ProjectID)
	return nil, nil
}

func (e *Executor) openProjectFolder(_ context.Context, raw json.RawMessage) (any, error) {
	var args gateway.OpenArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := e.opener.Open(args.ProjectPath); err != nil {
		return nil, err
	}
	return nil, nil
}

func (e *Executor) written() {
	if e.onWrite != nil {
		e.onWrite()
	}
}

func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.New("missing arguments")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
