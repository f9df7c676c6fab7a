package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/bereshit/internal/picker"
	"github.com/marcus/bereshit/internal/project"
	"github.com/marcus/bereshit/internal/styles"
)

type formField int

const (
	fieldName formField = iota
	fieldPath
	fieldBrowse
	fieldDescription
	fieldSubmit
	fieldCancel
	fieldCount
)

// formResult tells the owner what the form wants after an update.
type formResult int

const (
	formOpen formResult = iota
	formCancelled
	formCreated
)

// CreateForm collects and submits a new project.
type CreateForm struct {
	ctx    context.Context
	gw     Gateway
	picker picker.Picker
	logger *slog.Logger

	name        textinput.Model
	path        textinput.Model
	description textarea.Model
	focus       formField

	submitting bool
	picking    bool
	err        string
}

// NewCreateForm returns an empty form with the name field focused.
// pk may be nil when no directory picker is available.
func NewCreateForm(ctx context.Context, gw Gateway, pk picker.Picker, logger *slog.Logger) *CreateForm {
	name := textinput.New()
	name.Placeholder = "Project name"
	name.Prompt = ""
	name.CharLimit = 120

	path := textinput.New()
	path.Placeholder = "Where the project folder will be created"
	path.Prompt = ""
	path.CharLimit = 4096

	desc := textarea.New()
	desc.Placeholder = "Optional description"
	desc.ShowLineNumbers = false
	desc.Prompt = ""
	desc.SetHeight(3)
	desc.CharLimit = 2000

	f := &CreateForm{
		ctx:         ctx,
		gw:          gw,
		picker:      pk,
		logger:      logger,
		name:        name,
		path:        path,
		description: desc,
	}
	f.setFocus(fieldName)
	return f
}

// Init starts the cursor blink.
func (f *CreateForm) Init() tea.Cmd {
	return textinput.Blink
}

// Draft returns the current, untrimmed input.
func (f *CreateForm) Draft() project.CreateData {
	return project.CreateData{
		Name:        f.name.Value(),
		Path:        f.path.Value(),
		Description: f.description.Value(),
	}
}

// Submitting reports whether a create call is in flight.
func (f *CreateForm) Submitting() bool { return f.submitting }

// Err returns the message shown inside the form.
func (f *CreateForm) Err() string { return f.err }

// Validate checks the draft; the first violation wins.
func (f *CreateForm) Validate() error {
	d := f.Draft()
	if strings.TrimSpace(d.Name) == "" {
		return errNameRequired
	}
	if strings.TrimSpace(d.Path) == "" {
		return errPathRequired
	}
	return nil
}

// Submit validates and issues the create call. It is a no-op while a
// submission is in flight.
func (f *CreateForm) Submit() tea.Cmd {
	if f.submitting {
		return nil
	}
	if err := f.Validate(); err != nil {
		f.err = err.Error()
		return nil
	}
	f.submitting = true
	f.err = ""

	data := f.Draft().Normalized()
	ctx, gw := f.ctx, f.gw
	return func() tea.Msg {
		created, err := gw.CreateProject(ctx, data)
		return projectCreatedMsg{project: created, err: err}
	}
}

// PickPath opens the directory picker. Without a picker the path is left
// for the user to type.
func (f *CreateForm) PickPath() tea.Cmd {
	if f.picker == nil || f.picking || f.submitting {
		return nil
	}
	f.picking = true
	ctx, pk := f.ctx, f.picker
	return func() tea.Msg {
		path, ok, err := pk.PickDirectory(ctx)
		return pathPickedMsg{path: path, ok: ok, err: err}
	}
}

// Update handles input and results addressed to the form.
func (f *CreateForm) Update(msg tea.Msg) (tea.Cmd, formResult) {
	switch msg := msg.(type) {
	case projectCreatedMsg:
		f.submitting = false
		if msg.err != nil {
			f.logger.Error("create: create project", "err", msg.err)
			f.err = userMessage(msg.err, msgCreateFailed)
			return nil, formOpen
		}
		return nil, formCreated

	case pathPickedMsg:
		f.picking = false
		if msg.err != nil {
			// Picker failures keep whatever path is already entered.
			f.logger.Warn("create: select folder", "err", msg.err)
			return nil, formOpen
		}
		if msg.ok && strings.TrimSpace(msg.path) != "" {
			f.path.SetValue(msg.path)
			f.path.CursorEnd()
		}
		return nil, formOpen

	case tea.KeyMsg:
		return f.handleKey(msg)
	}

	return f.updateFocused(msg), formOpen
}

func (f *CreateForm) handleKey(msg tea.KeyMsg) (tea.Cmd, formResult) {
	if f.submitting {
		return nil, formOpen
	}

	switch msg.String() {
	case "esc":
		return nil, formCancelled
	case "tab", "down":
		if msg.String() == "down" && f.focus == fieldDescription {
			break
		}
		f.setFocus((f.focus + 1) % fieldCount)
		return nil, formOpen
	case "shift+tab", "up":
		if msg.String() == "up" && f.focus == fieldDescription {
			break
		}
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return nil, formOpen
	case "ctrl+s":
		return f.Submit(), formOpen
	case "ctrl+o":
		return f.PickPath(), formOpen
	case "enter":
		switch f.focus {
		case fieldName:
			f.setFocus(fieldPath)
			return nil, formOpen
		case fieldPath:
			f.setFocus(fieldDescription)
			return nil, formOpen
		case fieldBrowse:
			return f.PickPath(), formOpen
		case fieldSubmit:
			return f.Submit(), formOpen
		case fieldCancel:
			return nil, formCancelled
		}
	}

	return f.updateFocused(msg), formOpen
}

func (f *CreateForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldPath:
		f.path, cmd = f.path.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return cmd
}

func (f *CreateForm) setFocus(field formField) {
	f.focus = field
	f.name.Blur()
	f.path.Blur()
	f.description.Blur()
	switch field {
	case fieldName:
		f.name.Focus()
	case fieldPath:
		f.path.Focus()
	case fieldDescription:
		f.description.Focus()
	}
}

// View renders the form as a modal box of the given outer width.
func (f *CreateForm) View(width int) string {
	boxW := min(70, width-4)
	if boxW < 30 {
		boxW = 30
	}
	inner := boxW - 6 // border + padding
	f.name.Width = inner - 4
	f.path.Width = inner - 4 - lipgloss.Width(styles.Button.Render("Browse")) - 1
	f.description.SetWidth(inner - 4)

	var sb strings.Builder
	sb.WriteString(styles.Title.Foreground(styles.Primary).Render("Create new project"))
	sb.WriteString("\n")
	sb.WriteString(styles.Subtitle.Render("Fill in the fields below to set up a new project."))
	sb.WriteString("\n\n")

	sb.WriteString(styles.Label.Render("Project name *"))
	sb.WriteString("\n")
	sb.WriteString(f.inputBox(f.name.View(), fieldName, inner))
	sb.WriteString("\n")

	sb.WriteString(styles.Label.Render("Location *"))
	sb.WriteString("\n")
	pathBox := f.inputBox(f.path.View(), fieldPath, inner-lipgloss.Width(styles.Button.Render("Browse"))-1)
	browse := f.button("Browse", fieldBrowse)
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, pathBox, " ", browse))
	sb.WriteString("\n")
	sb.WriteString(styles.Muted.Render("A folder named after the project is created here."))
	sb.WriteString("\n\n")

	sb.WriteString(styles.Label.Render("Description (optional)"))
	sb.WriteString("\n")
	sb.WriteString(f.inputBox(f.description.View(), fieldDescription, inner))
	sb.WriteString("\n")

	if f.err != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.ErrorBanner.Width(inner).Render(f.err))
		sb.WriteString("\n")
	}

	submitLabel := "Create project"
	if f.submitting {
		submitLabel = "Creating..."
	}
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		f.button("Cancel", fieldCancel), " ", f.button(submitLabel, fieldSubmit)))
	sb.WriteString("\n\n")
	sb.WriteString(styles.KeyHint.Render("tab: next field  ctrl+o: browse  ctrl+s: create  esc: cancel"))

	return styles.ModalBox.Width(boxW - 2).Render(sb.String())
}

func (f *CreateForm) inputBox(content string, field formField, width int) string {
	style := styles.Input
	if f.focus == field && !f.submitting {
		style = styles.InputFocused
	}
	return style.Width(width - 2).Render(content)
}

func (f *CreateForm) button(label string, field formField) string {
	switch {
	case f.submitting:
		return styles.ButtonDisabled.Render(label)
	case f.focus == field:
		return styles.ButtonFocused.Render(label)
	default:
		return styles.Button.Render(label)
	}
}
