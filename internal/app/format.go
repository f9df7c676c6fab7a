package app

import (
	"strings"
	"time"

	"github.com/marcus/bereshit/internal/project"
)

const defaultDateLayout = "02/01/2006 15:04"

// formatDate renders an RFC 3339 timestamp in local time using layout.
// Unparseable input is shown as-is.
func formatDate(ts, layout string) string {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return "-"
	}
	t := (project.Project{CreatedAt: ts}).Created()
	if t.IsZero() {
		return ts
	}
	if layout == "" {
		layout = defaultDateLayout
	}
	return t.In(time.Local).Format(layout)
}
