// Package styles holds the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#3B82F6")
	Accent    = lipgloss.Color("#14B8A6")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Error     = lipgloss.Color("#EF4444")

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#D1D5DB")
	TextMuted     = lipgloss.Color("#6B7280")

	BgPrimary   = lipgloss.Color("#111827")
	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")
)

// Text styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextMuted)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Body = lipgloss.NewStyle().
		Foreground(TextSecondary)

	Mono = lipgloss.NewStyle().
		Foreground(TextSecondary)

	Label = lipgloss.NewStyle().
		Foreground(TextMuted).
		Bold(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted)
)

// Containers
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	CardSelected = Card.
			BorderForeground(BorderActive)

	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalDanger = ModalBox.
			BorderForeground(Error)

	ErrorBanner = lipgloss.NewStyle().
			Foreground(Error).
			Background(lipgloss.Color("#2A1215")).
			Padding(0, 1)

	Input = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	InputFocused = Input.
			BorderForeground(Primary)
)

// Badges
var (
	BadgePrimary = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	BadgeSecondary = lipgloss.NewStyle().
			Foreground(Secondary)

	BadgeAccent = lipgloss.NewStyle().
			Foreground(Accent)
)

// Buttons
var (
	Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(BgTertiary).
		Padding(0, 1)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	ButtonDisabled = lipgloss.NewStyle().
			Foreground(TextMuted).
			Background(BgSecondary).
			Padding(0, 1)
)

// Toasts
var (
	Toast = lipgloss.NewStyle().
		Foreground(Success)

	ToastError = lipgloss.NewStyle().
			Foreground(Error)
)
