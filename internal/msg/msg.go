// Package msg holds messages shared across screens.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultToastDuration is used when a toast has no duration.
const DefaultToastDuration = 3 * time.Second

// ToastMsg displays a temporary message in the footer.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool
}

// ShowToast returns a command that shows a success toast.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration}
	}
}

// ShowError returns a command that shows an error toast.
func ShowError(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration, IsError: true}
	}
}

// Lifetime returns how long the toast stays visible.
func (t ToastMsg) Lifetime() time.Duration {
	if t.Duration <= 0 {
		return DefaultToastDuration
	}
	return t.Duration
}
