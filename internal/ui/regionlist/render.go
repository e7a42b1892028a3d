package regionlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hygrometer/internal/domain"
	"hygrometer/internal/ui/views"
)

// Sheet layout, in lines from the top of the sheet
const (
	headerLine  = 1 // below the top border
	inputLines  = 3 // bordered search box, SearchMode only
	footerLines = 2 // status and help
)

func lipglossWidth(s string) int { return lipgloss.Width(s) }

func (s *Screen) contentWidth() int {
	// border and padding on both sides
	return max(1, s.width-4)
}

func (s *Screen) sheetHeight() int {
	return max(0, s.height-s.topMargin)
}

func (s *Screen) listTop() int {
	top := headerLine + 1
	if s.mode == SearchMode {
		top += inputLines
	}
	return top
}

func (s *Screen) listHeight() int {
	return max(1, s.sheetHeight()-s.listTop()-footerLines)
}

// View renders the sheet. The parent places it below the backdrop band.
func (s *Screen) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	cw := s.contentWidth()

	lines := []string{s.renderHeader(cw)}
	if s.mode == SearchMode {
		lines = append(lines, strings.Split(s.renderInput(cw), "\n")...)
	}
	lines = append(lines, s.renderList(cw)...)
	lines = append(lines, s.renderStatus(cw))
	lines = append(lines, s.help.ShortHelpView(s.keys.ShortHelp()))

	return s.style.Sheet.Width(s.width - 2).Render(strings.Join(lines, "\n"))
}

func (s *Screen) renderHeader(width int) string {
	title := s.style.SheetTitle.Render(views.Truncate(s.title, max(1, width-2)))
	closeBtn := s.style.CloseButton.Render(closeLabel)
	gap := max(1, width-lipgloss.Width(title)-lipgloss.Width(closeBtn))
	return title + strings.Repeat(" ", gap) + closeBtn
}

func (s *Screen) renderInput(width int) string {
	style := s.style.Input
	if s.inputFocused {
		style = s.style.InputFocused
	}
	return style.Width(width - 2).Render(s.input.View())
}

func (s *Screen) renderList(width int) []string {
	height := s.listHeight()
	total := s.source.RowCount()
	lines := make([]string, 0, height)

	if total == 0 {
		if s.emptyVisible {
			for range height / 2 {
				lines = append(lines, "")
			}
			msg := s.style.Empty.Render(s.emptyText)
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, msg))
		}
		return padLines(lines, height)
	}

	start, end, above, below := s.nav.window(total)
	if above {
		lines = append(lines, s.style.Scroll.Render(fmt.Sprintf("↑ %d more above", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, s.renderRow(i, width))
	}
	if below {
		lines = append(lines, s.style.Scroll.Render(fmt.Sprintf("↓ %d more below", total-end)))
	}
	return padLines(lines, height)
}

func (s *Screen) renderRow(i, width int) string {
	region, ok := s.source.RowAt(i)
	if !ok {
		return s.style.Dim.Render("  -")
	}

	cursor := "  "
	if i == s.nav.selected {
		cursor = "▸ "
	}
	star := "  "
	if s.opts.Store != nil && s.mode == SearchMode && s.opts.Store.Contains(region.Key()) {
		star = "★ "
	}

	text := rowText(region, s.opts.ShowCoordinates)
	plain := views.Truncate(cursor+star+text, width)

	if i == s.nav.selected {
		return s.style.SelectionBg.Render(plain + strings.Repeat(" ", max(0, width-lipgloss.Width(plain))))
	}
	return plain
}

func rowText(r domain.Region, coords bool) string {
	text := r.Name
	if addr := r.DisplayAddress(); addr != "" && addr != r.Name {
		text += "  " + addr
	}
	if coords {
		text += "  (" + r.Coordinate.String() + ")"
	}
	return text
}

func (s *Screen) renderStatus(width int) string {
	var status string
	switch {
	case s.loading:
		status = s.spinner.View() + " Searching " + fmt.Sprintf("%q", s.search.keyword) + "…"
	case s.mode == BookmarkMode:
		status = fmt.Sprintf("%d bookmarked", s.source.RowCount())
	case s.search.keyword == "":
		status = "Type a region name and press enter"
	default:
		status = fmt.Sprintf("%d results for %q", s.search.RowCount(), s.search.keyword)
	}
	return s.style.Scroll.Render(views.Truncate(views.StripANSI(status), width))
}

func padLines(lines []string, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}
