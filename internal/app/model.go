// Package app implements the project manager screen: the project list,
// the creation form and the dialogs around them.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/bereshit/internal/config"
	appmsg "github.com/marcus/bereshit/internal/msg"
	"github.com/marcus/bereshit/internal/picker"
	"github.com/marcus/bereshit/internal/styles"
)

// Options configures the screen.
type Options struct {
	Gateway Gateway
	// Picker may be nil; the path is then typed by hand.
	Picker picker.Picker
	Logger *slog.Logger
	UI     config.UIConfig
	// StoreEvents, when set, triggers a reload per received value.
	StoreEvents <-chan struct{}
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx    context.Context
	logger *slog.Logger

	list    *ListController
	newForm func() *CreateForm

	form    *CreateForm
	confirm *confirmDialog
	details *detailsView

	storeEvents <-chan struct{}
	clipboard   func(string) error

	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	spinning bool

	cursor    int
	scrollRow int
	width     int
	height    int

	toast    appmsg.ToastMsg
	toastSeq int
	hasToast bool

	dateLayout string
	showFooter bool
}

// New creates the root model. ctx bounds every gateway call.
func New(ctx context.Context, opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}
	layout := opts.UI.DateLayout
	if layout == "" {
		layout = defaultDateLayout
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.BadgePrimary

	h := help.New()
	h.Styles.ShortKey = styles.KeyHint.Bold(true)
	h.Styles.ShortDesc = styles.KeyHint

	gw, pk := opts.Gateway, opts.Picker
	return &Model{
		ctx:    ctx,
		logger: logger,
		list:   NewListController(ctx, gw, logger),
		newForm: func() *CreateForm {
			return NewCreateForm(ctx, gw, pk, logger)
		},
		storeEvents: opts.StoreEvents,
		clipboard:   clip,
		keys:        defaultKeyMap(),
		help:        h,
		spinner:     sp,
		dateLayout:  layout,
		showFooter:  opts.UI.ShowFooter,
	}
}

// Init loads the project list.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.list.Reload(),
		m.startSpinner(),
		waitForStoreChange(m.storeEvents),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			m.spinning = false
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case storeChangedMsg:
		m.logger.Debug("app: store changed on disk")
		return m, tea.Batch(m.list.Reload(), m.startSpinner(), waitForStoreChange(m.storeEvents))

	case appmsg.ToastMsg:
		m.toast = msg
		m.hasToast = true
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(msg.Lifetime(), func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.hasToast = false
		}
		return m, nil

	case projectCreatedMsg, pathPickedMsg:
		if m.form == nil {
			return m, nil
		}
		cmd, result := m.form.Update(msg)
		if result == formCreated {
			m.form = nil
			return m, tea.Batch(cmd, m.list.CreationSucceeded(), m.startSpinner())
		}
		return m, cmd

	case projectsLoadedMsg, projectDeletedMsg, folderOpenedMsg:
		cmd, _ = m.list.Update(msg)
		m.clampCursor()
		return m, tea.Batch(cmd, m.startSpinner())

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	// Cursor blink and other component messages.
	if m.form != nil {
		cmd, _ = m.form.Update(msg)
	}
	return m, cmd
}

// busy reports whether a loading indicator should animate.
func (m *Model) busy() bool {
	return m.list.Loading() || (m.form != nil && m.form.Submitting())
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning || !m.busy() {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.form != nil {
		cmd, result := m.form.Update(msg)
		if result == formCancelled {
			m.form = nil
			return nil
		}
		return tea.Batch(cmd, m.startSpinner())
	}

	if m.confirm != nil {
		switch m.confirm.handleKey(msg) {
		case confirmAccepted:
			id := m.confirm.project.ID
			m.confirm = nil
			return m.list.Delete(id)
		case confirmDeclined:
			m.confirm = nil
		}
		return nil
	}

	if m.details != nil {
		p := m.details.project
		switch msg.String() {
		case "esc", "v", "q":
			m.details = nil
		case "enter", "o":
			m.details = nil
			return m.list.Open(p.Path)
		case "y":
			return m.copyPath(p.Path)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	if m.list.Loading() {
		return nil
	}

	projects := m.list.Projects()
	cols := gridColumns(m.viewWidth())

	switch {
	case key.Matches(msg, m.keys.New):
		m.form = m.newForm()
		return m.form.Init()
	case key.Matches(msg, m.keys.Reload):
		return tea.Batch(m.list.Reload(), m.startSpinner())
	case key.Matches(msg, m.keys.Dismiss):
		m.list.DismissError()
		return nil
	}

	if len(projects) == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols)
	case key.Matches(msg, m.keys.Open):
		return m.list.Open(projects[m.cursor].Path)
	case key.Matches(msg, m.keys.Delete):
		m.confirm = &confirmDialog{project: projects[m.cursor]}
	case key.Matches(msg, m.keys.Details):
		m.details = &detailsView{project: projects[m.cursor]}
	case key.Matches(msg, m.keys.Copy):
		return m.copyPath(projects[m.cursor].Path)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.form != nil || m.confirm != nil || m.details != nil || m.list.Loading() {
		return nil
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		idx, onDelete := m.cardAt(msg.X, msg.Y)
		if idx < 0 {
			return nil
		}
		m.cursor = idx
		p := m.list.Projects()[idx]
		if onDelete {
			m.confirm = &confirmDialog{project: p}
			return nil
		}
		return m.list.Open(p.Path)

	case msg.Button == tea.MouseButtonWheelUp:
		if m.scrollRow > 0 {
			m.scrollRow--
		}
	case msg.Button == tea.MouseButtonWheelDown:
		cols := gridColumns(m.viewWidth())
		rows := (len(m.list.Projects()) + cols - 1) / cols
		if m.scrollRow+m.visibleRows() < rows {
			m.scrollRow++
		}
	}
	return nil
}

func (m *Model) copyPath(path string) tea.Cmd {
	if err := m.clipboard(path); err != nil {
		m.logger.Warn("app: copy path", "err", err)
		return appmsg.ShowError("Copy failed: "+err.Error(), 0)
	}
	return appmsg.ShowToast("Copied "+path, 0)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.list.Projects())
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
	m.ensureCursorVisible()
}

func (m *Model) clampCursor() {
	n := len(m.list.Projects())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	cols := gridColumns(m.viewWidth())
	row := m.cursor / cols
	visible := m.visibleRows()
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+visible {
		m.scrollRow = row - visible + 1
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}
