package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Home", []helpEntry{
		{"/", "Search regions"},
		{"B", "Show bookmarked regions"},
		{"b", "Bookmark or unbookmark the current region"},
		{"?", "Show this help"},
		{"q", "Quit"},
	}},
	{"Region sheet", []helpEntry{
		{"/, tab", "Focus the search box"},
		{"enter", "Search, or pick the highlighted region"},
		{"↑/↓, j/k", "Move up/down"},
		{"PgUp/PgDn", "Page up/down"},
		{"g/G", "Go to top/bottom"},
		{"esc", "Leave the search box, then close"},
		{"x", "Close the sheet"},
	}},
	{"Mouse", []helpEntry{
		{"click row", "Pick a region"},
		{"click ✕", "Close the sheet"},
		{"click/scroll above sheet", "Close the sheet"},
	}},
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// Content renders the help text with colors, for the pager or the fallback overlay
func (r *HelpRenderer) Content() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	keyWidth := 0
	for _, section := range helpSections {
		for _, e := range section.entries {
			keyWidth = max(keyWidth, lipgloss.Width(e.keys))
		}
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("Hygrometer Help"))
	help.WriteString("\n")

	for i, section := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, e := range section.entries {
			pad := strings.Repeat(" ", keyWidth-lipgloss.Width(e.keys))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", keyStyle.Render(e.keys), pad, descStyle.Render(e.desc)))
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

// HelpOps shows help in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{program: program}
}

// ShowHelpInPager hands the terminal to ov until the user quits it
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h == nil || h.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// let ov finish its own terminal teardown first
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
