package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SheetRenderer composes a bottom sheet over a parent view
type SheetRenderer struct {
	styles *Styles
}

// NewSheetRenderer creates a new sheet renderer
func NewSheetRenderer(styles *Styles) *SheetRenderer {
	return &SheetRenderer{styles: styles}
}

// Compose returns a height-line frame: the first topMargin lines of base,
// greyed out as a backdrop, followed by the sheet pinned to the bottom.
func (sr *SheetRenderer) Compose(base, sheet string, width, height, topMargin int) string {
	if height <= 0 {
		return sheet
	}
	topMargin = max(0, min(topMargin, height))

	baseLines := strings.Split(base, "\n")
	out := make([]string, 0, height)
	for i := range topMargin {
		line := ""
		if i < len(baseLines) {
			line = baseLines[i]
		}
		out = append(out, sr.desaturate(line, width))
	}

	sheetLines := strings.Split(sheet, "\n")
	room := height - topMargin
	if len(sheetLines) > room {
		sheetLines = sheetLines[:room]
	}
	// pad the gap between backdrop and sheet with more backdrop
	for i := topMargin; len(out) < height-len(sheetLines); i++ {
		line := ""
		if i < len(baseLines) {
			line = baseLines[i]
		}
		out = append(out, sr.desaturate(line, width))
	}
	out = append(out, sheetLines...)
	return strings.Join(out, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color and style codes
func StripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// desaturate strips ANSI color/style codes and recolors text dim gray
func (sr *SheetRenderer) desaturate(line string, width int) string {
	plain := StripANSI(line)
	if width > 0 && lipgloss.Width(plain) > width {
		plain = truncate(plain, width)
	}
	return sr.styles.Backdrop.Render(plain)
}

func truncate(s string, width int) string {
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}

// Truncate shortens s to width cells, adding an ellipsis when cut
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return truncate(s, width-1) + "…"
}
