package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/bereshit/internal/styles"
)

const (
	headerLines   = 3
	defaultWidth  = 80
	defaultHeight = 24
)

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) viewHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}

// View renders the screen.
func (m *Model) View() string {
	width, height := m.viewWidth(), m.viewHeight()

	switch {
	case m.form != nil:
		return m.overlay(m.form.View(width))
	case m.confirm != nil:
		return m.overlay(m.confirm.View(width))
	case m.details != nil:
		return m.overlay(m.details.View(width, m.dateLayout))
	}

	footer := m.renderFooter()
	bodyHeight := height - headerLines - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch {
	case m.list.Loading():
		body = lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" "+styles.Muted.Render("Loading projects..."))
	default:
		var sb strings.Builder
		if banner := m.renderErrorBanner(); banner != "" {
			sb.WriteString(banner)
			sb.WriteString("\n\n")
			bodyHeight -= 2
		}
		if len(m.list.Projects()) == 0 {
			sb.WriteString(m.renderEmpty(width, max(bodyHeight, 1)))
		} else {
			sb.WriteString(m.renderGrid(width))
		}
		body = sb.String()
	}

	content := m.renderHeader() + "\n" + body
	return lipgloss.NewStyle().Width(width).Height(height - lipgloss.Height(footer)).
		MaxHeight(height-lipgloss.Height(footer)).Render(content) + "\n" + footer
}

func (m *Model) overlay(box string) string {
	return lipgloss.Place(m.viewWidth(), m.viewHeight(), lipgloss.Center, lipgloss.Center, box)
}

// renderHeader renders the title block; it is headerLines tall.
func (m *Model) renderHeader() string {
	width := m.viewWidth()
	title := styles.Title.Render("My Projects")
	action := styles.ButtonFocused.Render("n  New project")
	gap := width - lipgloss.Width(title) - lipgloss.Width(action)
	if gap < 1 {
		gap = 1
	}
	line := title + strings.Repeat(" ", gap) + action
	sub := styles.Subtitle.Render("Manage and organize your bereshit projects")
	return styles.TruncateStyled(line, width) + "\n" + styles.TruncateStyled(sub, width) + "\n"
}

// renderErrorBanner is one line tall, or empty without an error.
func (m *Model) renderErrorBanner() string {
	msg := m.list.Err()
	if msg == "" {
		return ""
	}
	width := m.viewWidth()
	hint := "  x: dismiss"
	text := styles.Truncate(msg, width-lipgloss.Width(hint)-2)
	return styles.ErrorBanner.Width(width).MaxHeight(1).Render(text + hint)
}

func (m *Model) renderEmpty(width, height int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		styles.Title.Render("No projects found"),
		"",
		styles.Muted.Render("Create your first project to start organizing your work"),
		"",
		styles.ButtonFocused.Render("n  Create first project"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

func (m *Model) renderGrid(width int) string {
	projects := m.list.Projects()
	cols := gridColumns(width)
	cw := cardWidth(width, cols)
	visible := m.visibleRows()

	var rows []string
	for r := m.scrollRow; r < m.scrollRow+visible; r++ {
		start := r * cols
		if start >= len(projects) {
			break
		}
		var cards []string
		for c := 0; c < cols && start+c < len(projects); c++ {
			idx := start + c
			if c > 0 {
				cards = append(cards, strings.Repeat(" ", cardGap))
			}
			cards = append(cards, renderCard(projects[idx], cw, idx == m.cursor, m.dateLayout))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderFooter() string {
	width := m.viewWidth()
	if m.hasToast {
		style := styles.Toast
		if m.toast.IsError {
			style = styles.ToastError
		}
		return style.Render(styles.Truncate(m.toast.Message, width))
	}
	if !m.showFooter {
		return ""
	}
	return m.help.View(m.keys)
}

// gridTop is the screen row of the first card row.
func (m *Model) gridTop() int {
	top := headerLines
	if m.list.Err() != "" {
		top += 2
	}
	return top
}

// visibleRows is the number of card rows that fit on screen.
func (m *Model) visibleRows() int {
	footer := lipgloss.Height(m.renderFooter())
	rows := (m.viewHeight() - m.gridTop() - footer) / cardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

// cardAt maps a screen cell to a card index. onDelete is true when the
// cell is on the card's delete marker.
func (m *Model) cardAt(x, y int) (idx int, onDelete bool) {
	projects := m.list.Projects()
	if len(projects) == 0 || m.list.Loading() {
		return -1, false
	}
	width := m.viewWidth()
	cols := gridColumns(width)
	cw := cardWidth(width, cols)

	top := m.gridTop()
	if y < top || x < 0 {
		return -1, false
	}
	rowOnScreen := (y - top) / cardHeight
	if rowOnScreen >= m.visibleRows() {
		return -1, false
	}
	col := x / (cw + cardGap)
	if col >= cols {
		return -1, false
	}
	xIn := x - col*(cw+cardGap)
	if xIn >= cw {
		return -1, false
	}
	idx = (m.scrollRow+rowOnScreen)*cols + col
	if idx >= len(projects) {
		return -1, false
	}

	// Marker sits on the first content line, flush against the right
	// padding.
	yIn := (y - top) % cardHeight
	markerEnd := cw - 2
	onDelete = yIn == 1 && xIn >= markerEnd-len(deleteMarker) && xIn < markerEnd
	return idx, onDelete
}
