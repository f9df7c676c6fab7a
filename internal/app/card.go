package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/bereshit/internal/project"
	"github.com/marcus/bereshit/internal/styles"
)

const (
	cardContentLines = 9
	cardHeight       = cardContentLines + 2 // rounded border
	cardMinWidth     = 36
	cardMaxColumns   = 4
	cardGap          = 1

	deleteMarker = "[x]"
)

// gridColumns returns how many cards fit side by side.
func gridColumns(width int) int {
	cols := (width + cardGap) / (cardMinWidth + cardGap)
	if cols < 1 {
		cols = 1
	}
	if cols > cardMaxColumns {
		cols = cardMaxColumns
	}
	return cols
}

// cardWidth returns the outer width of one card for the given columns.
func cardWidth(width, cols int) int {
	w := (width - cardGap*(cols-1)) / cols
	if w < 12 {
		w = 12
	}
	return w
}

// renderCard draws one project card with outer dimensions width x cardHeight.
func renderCard(p project.Project, width int, selected bool, dateLayout string) string {
	inner := width - 4 // border and horizontal padding
	if inner < 4 {
		inner = 4
	}

	nameStyle := styles.Title
	if selected {
		nameStyle = nameStyle.Foreground(styles.Primary)
	}
	marker := styles.Muted.Render(deleteMarker)
	if selected {
		marker = styles.ErrorText.Render(deleteMarker)
	}
	nameW := inner - lipgloss.Width(marker) - 1
	name := nameStyle.Render(styles.Truncate(p.Name, nameW))
	pad := inner - lipgloss.Width(name) - lipgloss.Width(marker)
	if pad < 1 {
		pad = 1
	}

	lines := make([]string, 0, cardContentLines)
	lines = append(lines, name+strings.Repeat(" ", pad)+marker)
	lines = append(lines, styles.Muted.Render(styles.Truncate(p.DescriptionText(), inner)))
	lines = append(lines, "")
	lines = append(lines, styles.Label.Render("LOCATION"))
	lines = append(lines, styles.Mono.Render(styles.TruncateLeft(p.Path, inner)))
	lines = append(lines, "")
	lines = append(lines, dateLine("Created: ", p.CreatedAt, dateLayout, inner))
	lines = append(lines, dateLine("Modified:", p.LastModified, dateLayout, inner))
	lines = append(lines, badges(p.Config, inner))

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	return style.Width(width - 2).Height(cardContentLines).Render(strings.Join(lines, "\n"))
}

func dateLine(label, ts, layout string, width int) string {
	line := styles.Muted.Render(label) + " " + styles.Body.Render(formatDate(ts, layout))
	return styles.TruncateStyled(line, width)
}

func badges(cfg project.Config, width int) string {
	parts := []string{
		styles.BadgePrimary.Render("v" + cfg.Version),
		styles.BadgeSecondary.Render(cfg.Settings.Theme),
		styles.BadgeAccent.Render(cfg.Settings.Language),
	}
	return styles.TruncateStyled(strings.Join(parts, "  "), width)
}
