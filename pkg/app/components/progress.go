package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/posterforge/tendies/pkg/app/styles"
	"github.com/posterforge/tendies/pkg/services"
)

// Tracker accumulates per-layer build progress for rendering.
type Tracker struct {
	layers map[string]*services.BuildProgress
	stage  string
	width  int
}

func NewTracker(width int) *Tracker {
	return &Tracker{
		layers: make(map[string]*services.BuildProgress),
		width:  width,
	}
}

func (t *Tracker) Update(progress services.BuildProgress) {
	if progress.Layer == "" {
		t.stage = progress.Stage
		return
	}
	prog := progress // Copy
	t.layers[progress.Layer] = &prog
}

func (t *Tracker) Clear() {
	t.layers = make(map[string]*services.BuildProgress)
	t.stage = ""
}

func (t *Tracker) View() string {
	var b strings.Builder

	names := make([]string, 0, len(t.layers))
	for name := range t.layers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		progress := t.layers[name]
		line := fmt.Sprintf("%s: %d frames", name, progress.Frames)
		b.WriteString(styles.TextStyle.Render(line))
		b.WriteString("\n")
	}

	if t.stage != "" {
		b.WriteString(styles.StatusStyle(t.stage).Render(t.stage))
		b.WriteString("\n")
	}

	return b.String()
}

// Bar renders a simple progress bar
func Bar(current, total, width int) string {
	if total == 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}
