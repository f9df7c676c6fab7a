package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"
	"github.com/marcus/bereshit/internal/project"
	"github.com/marcus/bereshit/internal/styles"
)

// detailsView shows everything known about one project.
type detailsView struct {
	project project.Project
}

func (d *detailsView) View(width int, dateLayout string) string {
	boxW := min(90, width-4)
	inner := boxW - 6
	p := d.project

	var sb strings.Builder
	sb.WriteString(styles.Title.Foreground(styles.Primary).Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(styles.Mono.Render(p.Path))
	sb.WriteString("\n\n")
	sb.WriteString(styles.Muted.Render("ID:       ") + styles.Body.Render(p.ID) + "\n")
	sb.WriteString(styles.Muted.Render("Created:  ") + styles.Body.Render(formatDate(p.CreatedAt, dateLayout)) + "\n")
	sb.WriteString(styles.Muted.Render("Modified: ") + styles.Body.Render(formatDate(p.LastModified, dateLayout)) + "\n")

	if desc := strings.TrimSpace(p.DescriptionText()); desc != "" {
		sb.WriteString("\n")
		sb.WriteString(renderMarkdown(desc, inner))
	}

	sb.WriteString("\n")
	sb.WriteString(styles.Label.Render(project.ConfigFileName))
	sb.WriteString("\n")
	sb.WriteString(renderConfig(p.Config))
	sb.WriteString("\n\n")
	sb.WriteString(styles.KeyHint.Render("enter: open folder  y: copy path  esc: back"))

	return styles.ModalBox.Width(boxW - 2).Render(sb.String())
}

var (
	markdownMu       sync.Mutex
	markdownRenderer *glamour.TermRenderer
	markdownWidth    int
)

// ensureMarkdownRenderer returns the renderer for width, building a new one
// only when the width changes.
func ensureMarkdownRenderer(width int) (*glamour.TermRenderer, error) {
	markdownMu.Lock()
	defer markdownMu.Unlock()
	if markdownRenderer != nil && markdownWidth == width {
		return markdownRenderer, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	markdownRenderer, markdownWidth = r, width
	return r, nil
}

// renderMarkdown renders text with glamour, falling back to plain text.
func renderMarkdown(text string, width int) string {
	r, err := ensureMarkdownRenderer(width)
	if err != nil {
		return styles.Body.Render(text)
	}
	out, err := r.Render(text)
	if err != nil {
		return styles.Body.Render(text)
	}
	return strings.Trim(out, "\n")
}

// renderConfig pretty-prints the config block with JSON highlighting.
func renderConfig(cfg project.Config) string {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return styles.ErrorText.Render(err.Error())
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, string(data), "json", "terminal256", "monokai"); err != nil {
		return styles.Mono.Render(string(data))
	}
	return strings.TrimRight(buf.String(), "\n")
}
