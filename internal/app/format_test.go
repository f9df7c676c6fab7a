package app

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/bereshit/internal/project"
	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	ts := "2024-05-01T10:30:00Z"
	want := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC).In(time.Local).Format("02/01/2006 15:04")

	assert.Equal(t, want, formatDate(ts, ""))
	assert.Equal(t, "-", formatDate("  ", ""))
	assert.Equal(t, "yesterday", formatDate("yesterday", ""))
	assert.Equal(t, "2024", formatDate(ts, "2006"))
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{10, 1},
		{36, 1},
		{72, 1},
		{73, 2},
		{120, 3},
		{400, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gridColumns(tt.width), "width %d", tt.width)
	}
}

func TestRenderCard(t *testing.T) {
	desc := "A long description that will never fit on a single card line at all"
	p := sample("a", "alpha")
	p.Description = &desc

	out := renderCard(p, 40, true, "")
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, cardHeight)
	for _, l := range lines {
		assert.Equal(t, 40, ansi.StringWidth(l))
	}
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "alpha")
	assert.Contains(t, plain, deleteMarker)
	assert.Contains(t, plain, "LOCATION")
	assert.Contains(t, plain, "v1.0.0")
	assert.Contains(t, plain, "pt-BR")
	assert.NotContains(t, plain, "at all", "description is truncated")

	// The delete marker sits where cardAt expects it.
	marker := ansi.Strip(lines[1])
	assert.Equal(t, deleteMarker, string([]rune(marker)[40-2-len(deleteMarker):40-2]))
}

func TestConfirmDialog(t *testing.T) {
	d := &confirmDialog{project: project.Project{Name: "Demo"}}
	assert.Equal(t, `Remove project "Demo" from the list?`, d.question())
	assert.Equal(t, confirmAccepted, d.handleKey(keyMsg("y")))
	assert.Equal(t, confirmDeclined, d.handleKey(keyMsg("n")))
	assert.Equal(t, confirmDeclined, d.handleKey(keyMsg("esc")))
	assert.Equal(t, confirmPending, d.handleKey(keyMsg("d")))
}
