package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Scroll       lipgloss.Style
	Highlight    lipgloss.Style
	SelectionBg  lipgloss.Style
	StatusError  lipgloss.Style
	StatusOK     lipgloss.Style
	Star         lipgloss.Style
	Coordinates  lipgloss.Style
	Sheet        lipgloss.Style
	SheetTitle   lipgloss.Style
	CloseButton  lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Empty        lipgloss.Style
	RowName      lipgloss.Style
	RowAddress   lipgloss.Style
	Backdrop     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Star:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Coordinates: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		SheetTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		CloseButton: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("214")),
		Empty:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		RowName:    lipgloss.NewStyle().Bold(true),
		RowAddress: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Backdrop:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
