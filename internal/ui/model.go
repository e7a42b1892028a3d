package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hygrometer/internal/bookmarks"
	"hygrometer/internal/config"
	"hygrometer/internal/domain"
	"hygrometer/internal/eventbus"
	"hygrometer/internal/geocode"
	"hygrometer/internal/ui/regionlist"
	"hygrometer/internal/ui/views"
)

// minSheetHeight keeps the sheet usable on short terminals
const minSheetHeight = 12

// StartSheet opens a region sheet as soon as the program starts
type StartSheet struct {
	Mode    regionlist.Mode
	Keyword string // pre-submitted search, SearchMode only
}

// Options carries the model's collaborators
type Options struct {
	Bus      eventbus.EventBus
	Config   *config.Config
	Searcher geocode.Searcher
	Store    bookmarks.Store
	Start    *StartSheet // optional
}

// Model is the home view. It hosts at most one region sheet at a time.
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	searcher geocode.Searcher
	store    bookmarks.Store
	start    *StartSheet

	styles *views.Styles
	sheets *views.SheetRenderer
	keys   keyMap
	help   help.Model

	width  int
	height int

	current     domain.Region
	sheet       *regionlist.Screen
	status      string
	statusErr   bool
	statusSeq   int
	showHelp    bool // in-app help when the pager is unavailable
	inPagerMode bool

	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	store := opts.Store
	if store == nil {
		store = bookmarks.NewMemoryStore(opts.Bus)
	}

	styles := views.NewStyles()
	return &Model{
		bus:          opts.Bus,
		config:       cfg,
		searcher:     opts.Searcher,
		store:        store,
		start:        opts.Start,
		styles:       styles,
		sheets:       views.NewSheetRenderer(styles),
		keys:         defaultKeyMap(),
		help:         help.New(),
		current:      cfg.LastRegion.Region(),
		helpRenderer: NewHelpRenderer(),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Current returns the region shown on the home view
func (m *Model) Current() domain.Region { return m.current }

// Sheet returns the open region sheet, or nil
func (m *Model) Sheet() *regionlist.Screen { return m.sheet }

// Status returns the status line text
func (m *Model) Status() string { return m.status }

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.start == nil {
		return nil
	}
	return m.openSheet(m.start.Mode, m.start.Keyword)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.sheet != nil {
			return m, m.sheet.SetSize(m.width, m.height, m.topMargin())
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if m.sheet != nil {
			return m, m.sheet.Update(msg)
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case regionlist.RegionSelectedMsg:
		m.current = msg.Region
		m.setStatus(fmt.Sprintf("Selected %s", msg.Region.Name), false)
		if m.bus != nil {
			m.bus.Publish(eventbus.RegionSelectedEvent{Region: msg.Region})
		}
		return m, m.clearStatusLater()

	case regionlist.DismissedMsg:
		if m.sheet != nil && m.sheet.Dismissed() {
			m.sheet = nil
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// spinner ticks, page results and cursor blinks belong to the sheet
	if m.sheet != nil {
		return m, m.sheet.Update(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.sheet != nil {
		return m.sheet.Update(msg)
	}
	if m.showHelp {
		m.showHelp = false
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Search):
		return m.openSheet(regionlist.SearchMode, "")
	case key.Matches(msg, m.keys.Bookmarks):
		return m.openSheet(regionlist.BookmarkMode, "")
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleBookmark()
	case key.Matches(msg, m.keys.Help):
		return m.showHelpPager()
	}
	return nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch event.Type() {
	case eventbus.EventBookmarkAdded, eventbus.EventBookmarkRemoved:
		if m.sheet != nil && m.sheet.Mode() == regionlist.BookmarkMode {
			return m.sheet.Refresh()
		}
	}
	return nil
}

func (m *Model) openSheet(mode regionlist.Mode, keyword string) tea.Cmd {
	sheet := regionlist.New(mode, regionlist.Options{
		Searcher:        m.searcher,
		Store:           m.store,
		Styles:          m.styles,
		Timeout:         m.config.Geocoder.Timeout(),
		ShowCoordinates: m.config.UISettings.ShowCoordinates,
		OnDismiss: func() {
			log.Printf("region sheet (%s) dismissed", mode)
			m.sheet = nil
		},
	})
	m.sheet = sheet
	log.Printf("region sheet (%s) opened", mode)

	cmds := []tea.Cmd{
		sheet.SetSize(m.width, m.height, m.topMargin()),
		sheet.Init(),
	}
	if keyword != "" {
		cmds = append(cmds, sheet.SubmitSearch(keyword))
	}
	return tea.Batch(cmds...)
}

func (m *Model) toggleBookmark() tea.Cmd {
	if m.current.IsZero() {
		m.setStatus("Select a region first", true)
		return m.clearStatusLater()
	}

	added, err := bookmarks.Toggle(context.Background(), m.store, m.current)
	switch {
	case err != nil:
		log.Printf("Failed to toggle bookmark for %s: %v", m.current.Key(), err)
		m.setStatus(fmt.Sprintf("Bookmark failed: %v", err), true)
	case added:
		m.setStatus(fmt.Sprintf("Bookmarked %s", m.current.Name), false)
	default:
		m.setStatus(fmt.Sprintf("Removed %s from bookmarks", m.current.Name), false)
	}
	return m.clearStatusLater()
}

func (m *Model) showHelpPager() tea.Cmd {
	content := m.helpRenderer.Content()
	if m.program == nil {
		m.showHelp = true
		return nil
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
	m.statusSeq++
}

func (m *Model) clearStatusLater() tea.Cmd {
	seq := m.statusSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *Model) topMargin() int {
	margin := m.config.UISettings.SheetTopMargin
	if m.height > 0 {
		margin = min(margin, max(0, m.height-minSheetHeight))
	}
	return max(0, margin)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	base := m.homeView()
	if m.showHelp {
		base = m.styles.Main.Render(m.helpRenderer.Content() + "\n\n" + m.styles.Help.Render("press any key to close"))
	}
	if m.sheet == nil {
		return base
	}
	return m.sheets.Compose(base, m.sheet.View(), m.width, m.height, m.topMargin())
}

func (m *Model) homeView() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Hygrometer"))
	b.WriteString("\n")

	if m.current.IsZero() {
		b.WriteString(m.styles.Dim.Render("No region selected. Press / to search or B for bookmarks."))
		b.WriteString("\n")
	} else {
		name := m.current.Name
		if m.store.Contains(m.current.Key()) {
			name = m.styles.Star.Render("★ ") + name
		}
		b.WriteString(m.styles.RowName.Render(name))
		b.WriteString("\n")
		if addr := m.current.DisplayAddress(); addr != "" {
			b.WriteString(m.styles.RowAddress.Render(addr))
			b.WriteString("\n")
		}
		if m.current.Category != "" {
			b.WriteString(m.styles.Dim.Render(m.current.Category))
			b.WriteString("\n")
		}
		if m.config.UISettings.ShowCoordinates {
			b.WriteString(m.styles.Coordinates.Render(m.current.Coordinate.String()))
			b.WriteString("\n")
		}
	}

	status := fmt.Sprintf("%d bookmarked", len(m.store.Bookmarks()))
	style := m.styles.Status
	if m.status != "" {
		status = m.status
		if m.statusErr {
			style = style.Inherit(m.styles.StatusError)
		} else {
			style = style.Inherit(m.styles.StatusOK)
		}
	}
	b.WriteString(style.Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))

	out := m.styles.Main.Render(b.String())
	if m.height > 0 {
		out = lipgloss.PlaceVertical(m.height, lipgloss.Top, out)
	}
	return out
}
