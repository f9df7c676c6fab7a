package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/bereshit/internal/project"
	"github.com/marcus/bereshit/internal/styles"
)

// confirmResult is the outcome of a key press in the confirm dialog.
type confirmResult int

const (
	confirmPending confirmResult = iota
	confirmAccepted
	confirmDeclined
)

// confirmDialog asks before a project is removed from the list.
type confirmDialog struct {
	project project.Project
}

func (d *confirmDialog) handleKey(msg tea.KeyMsg) confirmResult {
	switch msg.String() {
	case "y", "Y":
		return confirmAccepted
	case "n", "N", "esc", "q":
		return confirmDeclined
	}
	return confirmPending
}

func (d *confirmDialog) question() string {
	return fmt.Sprintf("Remove project %q from the list?", d.project.Name)
}

func (d *confirmDialog) View(width int) string {
	boxW := min(60, width-4)
	body := styles.Title.Render(d.question()) + "\n\n" +
		styles.Muted.Render("The folder on disk is kept.") + "\n\n" +
		styles.KeyHint.Render("y: remove  n/esc: keep")
	return styles.ModalDanger.Width(boxW - 2).Render(body)
}
