package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposePinsSheetToBottom(t *testing.T) {
	sr := NewSheetRenderer(NewStyles())
	base := "line0\nline1\nline2\nline3\nline4\nline5"
	sheet := "sheetA\nsheetB"

	out := sr.Compose(base, sheet, 20, 6, 2)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, "line0", StripANSI(lines[0]))
	assert.Equal(t, "line1", StripANSI(lines[1]))
	assert.Equal(t, "line2", StripANSI(lines[2]))
	assert.Equal(t, "line3", StripANSI(lines[3]))
	assert.Equal(t, "sheetA", lines[4])
	assert.Equal(t, "sheetB", lines[5])
}

func TestComposeClipsTallSheet(t *testing.T) {
	sr := NewSheetRenderer(NewStyles())
	sheet := "a\nb\nc\nd\ne"

	out := sr.Compose("top", sheet, 10, 4, 1)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "top", StripANSI(lines[0]))
	assert.Equal(t, []string{"a", "b", "c"}, lines[1:])
}

func TestComposeStripsBaseColors(t *testing.T) {
	sr := NewSheetRenderer(NewStyles())
	base := NewStyles().Highlight.Render("Seoul")

	out := sr.Compose(base, "sheet", 10, 2, 1)
	assert.Contains(t, StripANSI(out), "Seoul")
	assert.NotContains(t, out, "226")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Seoul", Truncate("Seoul", 10))
	assert.Equal(t, "Seo…", Truncate("Seoul City", 4))
	assert.Equal(t, "…", Truncate("Seoul", 1))
	assert.Equal(t, "", Truncate("Seoul", 0))
}
