package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/bereshit/internal/config"
	"github.com/marcus/bereshit/internal/picker"
	"github.com/marcus/bereshit/internal/project"
)

// fakeGateway is an in-memory executor view that records every call.
type fakeGateway struct {
	mu sync.Mutex

	projects []project.Project
	nextID   int

	listErr   error
	createErr error
	deleteErr error
	openErr   error

	listCalls   int
	createCalls []project.CreateData
	deleteCalls []string
	openCalls   []string
}

func newFakeGateway(projects ...project.Project) *fakeGateway {
	return &fakeGateway{projects: projects}
}

func (g *fakeGateway) ListProjects(context.Context) ([]project.Project, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	if g.listErr != nil {
		return nil, g.listErr
	}
	out := make([]project.Project, len(g.projects))
	copy(out, g.projects)
	return out, nil
}

func (g *fakeGateway) CreateProject(_ context.Context, data project.CreateData) (project.Project, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.createCalls = append(g.createCalls, data)
	if g.createErr != nil {
		return project.Project{}, g.createErr
	}
	g.nextID++
	now := project.Timestamp(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC))
	p := project.Project{
		ID:           fmt.Sprintf("id-%d", g.nextID),
		Name:         data.Name,
		Path:         filepath.Join(data.Path, data.Name),
		CreatedAt:    now,
		LastModified: now,
		Description:  data.OptionalDescription(),
		Config:       project.DefaultConfig(),
	}
	g.projects = append(g.projects, p)
	return p, nil
}

func (g *fakeGateway) DeleteProject(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleteCalls = append(g.deleteCalls, id)
	if g.deleteErr != nil {
		return g.deleteErr
	}
	for i, p := range g.projects {
		if p.ID == id {
			g.projects = append(g.projects[:i], g.projects[i+1:]...)
			return nil
		}
	}
	return errors.New("Project not found")
}

func (g *fakeGateway) OpenProjectFolder(_ context.Context, path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.openCalls = append(g.openCalls, path)
	return g.openErr
}

// removeExternally simulates another process editing the store.
func (g *fakeGateway) removeExternally(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, p := range g.projects {
		if p.ID == id {
			g.projects = append(g.projects[:i], g.projects[i+1:]...)
			return
		}
	}
}

func (g *fakeGateway) lists() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.listCalls
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sample(id, name string) project.Project {
	return project.Project{
		ID:           id,
		Name:         name,
		Path:         "/tmp/" + name,
		CreatedAt:    "2024-05-01T10:30:00Z",
		LastModified: "2024-05-02T11:45:00Z",
		Config:       project.DefaultConfig(),
	}
}

func newTestModel(gw Gateway, pk picker.Picker) *Model {
	m := New(context.Background(), Options{
		Gateway:   gw,
		Picker:    pk,
		Logger:    testLogger(),
		UI:        config.UIConfig{ShowFooter: true, DateLayout: "02/01/2006 15:04"},
		Clipboard: func(string) error { return nil },
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// runCmd executes cmd and flattens batches. Commands that block (timers,
// cursor blink) are abandoned after a short wait.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// drive runs cmd and feeds every resulting message back into m until no
// work is left.
func drive(m *Model, cmd tea.Cmd) {
	queue := runCmd(cmd)
	for i := 0; i < 200 && len(queue) > 0; i++ {
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(spinner.TickMsg); ok {
			continue
		}
		_, next := m.Update(msg)
		queue = append(queue, runCmd(next)...)
	}
}

// press sends one key and drives the resulting commands.
func press(m *Model, k string) {
	_, cmd := m.Update(keyMsg(k))
	drive(m, cmd)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		drive(m, cmd)
	}
}
