// Package regionlist implements the modal region picker: paginated search
// results or the bookmarked regions, shown in a bottom sheet.
package regionlist

import (
	"context"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hygrometer/internal/bookmarks"
	"hygrometer/internal/domain"
	"hygrometer/internal/geocode"
	"hygrometer/internal/ui/views"
)

const (
	bookmarkTitle     = "Bookmark"
	searchTitle       = "Region search"
	searchPlaceholder = "Search regions"
	closeLabel        = "✕"

	defaultTimeout = 5 * time.Second
)

var screenIDs atomic.Uint64

// Options carries the screen's collaborators
type Options struct {
	Searcher        geocode.Searcher // required in SearchMode
	Store           bookmarks.Store  // required in BookmarkMode; marks bookmarked results in SearchMode
	OnDismiss       func()           // called once when the screen closes
	Styles          *views.Styles
	Timeout         time.Duration // per page request
	ShowCoordinates bool
}

// Screen is the region list model. It is driven by its parent, which
// forwards messages to Update and composes View into a sheet.
type Screen struct {
	id    uint64
	mode  Mode
	opts  Options
	keys  keyMap
	style *views.Styles

	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	search    *searchSource
	source    ListSource
	nav       viewport
	title     string
	emptyText string

	emptyVisible bool
	inputFocused bool
	loading      bool
	dismissed    bool
	generation   int

	// rows currently on screen, used to report rows as they appear
	shownStart, shownEnd int

	width, height, topMargin int
}

// New creates a screen bound to mode. No request is made until a search
// is submitted.
func New(mode Mode, opts Options) *Screen {
	if opts.Styles == nil {
		opts.Styles = views.NewStyles()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Store == nil && mode == BookmarkMode {
		opts.Store = bookmarks.NewMemoryStore(nil)
	}

	input := textinput.New()
	input.Placeholder = searchPlaceholder
	input.Prompt = "⌕ "
	input.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = opts.Styles.Highlight

	s := &Screen{
		id:      screenIDs.Add(1),
		mode:    mode,
		opts:    opts,
		keys:    defaultKeyMap(),
		style:   opts.Styles,
		input:   input,
		spinner: sp,
		help:    help.New(),
		search:  newSearchSource(),
	}

	switch mode {
	case BookmarkMode:
		s.source = &bookmarkSource{store: opts.Store}
	default:
		s.source = s.search
	}
	return s
}

// Init applies the mode-specific setup when the screen becomes visible
func (s *Screen) Init() tea.Cmd {
	s.emptyText = s.source.EmptyMessage()

	switch s.mode {
	case BookmarkMode:
		s.title = bookmarkTitle
		return s.Refresh()
	default:
		s.title = searchTitle
		s.updateEmpty()
		return s.focusInput()
	}
}

// SetSize sets the terminal size and the number of backdrop lines above
// the sheet. Rows uncovered by a taller sheet are reported as displayed.
func (s *Screen) SetSize(width, height, topMargin int) tea.Cmd {
	s.width = width
	s.height = height
	s.topMargin = max(0, topMargin)
	s.help.Width = s.contentWidth()
	s.input.Width = max(1, s.contentWidth()-lipglossWidth(s.input.Prompt)-3)
	s.nav.height = s.listHeight()
	s.nav.clamp(s.source.RowCount())
	if s.dismissed {
		return nil
	}
	return s.revealRows()
}

// SubmitSearch starts a new search for text. Blank text does nothing.
func (s *Screen) SubmitSearch(text string) tea.Cmd {
	keyword := strings.TrimSpace(text)
	if keyword == "" || s.mode != SearchMode || s.dismissed {
		return nil
	}

	log.Printf("regionlist: search %q", keyword)
	s.input.SetValue(keyword)
	s.blurInput()
	s.generation++
	s.search.reset(keyword)
	s.nav = viewport{height: s.nav.height}
	s.shownStart, s.shownEnd = 0, 0
	return s.FetchNextPage()
}

// FetchNextPage requests the current page for the current keyword. The
// result arrives as a message and is applied in Update.
func (s *Screen) FetchNextPage() tea.Cmd {
	if s.mode != SearchMode || s.dismissed || s.search.keyword == "" || s.opts.Searcher == nil {
		return nil
	}

	s.loading = true
	var (
		id         = s.id
		generation = s.generation
		keyword    = s.search.keyword
		page       = s.search.page
		searcher   = s.opts.Searcher
		timeout    = s.opts.Timeout
	)
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		regions, err := searcher.Search(ctx, keyword, page)
		return pageLoadedMsg{
			screen:     id,
			generation: generation,
			keyword:    keyword,
			page:       page,
			regions:    regions,
			err:        err,
		}
	}
	return tea.Batch(fetch, s.spinner.Tick)
}

// OnRowAboutToDisplay is called for each row as it scrolls into view and
// requests the next page when the row hits the prefetch position.
// Ignored while a request is in flight.
func (s *Screen) OnRowAboutToDisplay(index int) tea.Cmd {
	if s.mode != SearchMode || s.loading || s.dismissed {
		return nil
	}
	if !ShouldPrefetch(index, s.search.page, PageSize) {
		return nil
	}
	log.Printf("regionlist: row %d visible, prefetching page %d", index, s.search.page)
	return s.FetchNextPage()
}

// Refresh re-reads the active list and re-evaluates the empty state
func (s *Screen) Refresh() tea.Cmd {
	if s.dismissed {
		return nil
	}
	s.nav.clamp(s.source.RowCount())
	s.updateEmpty()
	return s.revealRows()
}

// Dismiss closes the screen. The dismissal callback runs at most once.
func (s *Screen) Dismiss() tea.Cmd {
	if s.dismissed {
		return nil
	}
	s.dismissed = true
	s.loading = false
	s.input.Blur()
	s.search.results = nil

	if s.opts.OnDismiss != nil {
		s.opts.OnDismiss()
	}
	return func() tea.Msg { return DismissedMsg{} }
}

// Update handles a message
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		return s.handlePageLoaded(msg)

	case spinner.TickMsg:
		if !s.loading {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd

	case tea.MouseMsg:
		if s.dismissed {
			return nil
		}
		return s.handleMouse(msg)

	case tea.KeyMsg:
		if s.dismissed {
			return nil
		}
		if s.inputFocused {
			return s.handleInputKey(msg)
		}
		return s.handleListKey(msg)
	}

	if s.inputFocused {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}
	return nil
}

func (s *Screen) handlePageLoaded(msg pageLoadedMsg) tea.Cmd {
	if msg.screen != s.id {
		return nil
	}
	if s.dismissed {
		log.Printf("regionlist: dropping page %d for %q, screen dismissed", msg.page, msg.keyword)
		return nil
	}
	if msg.generation != s.generation {
		log.Printf("regionlist: dropping page %d for superseded search %q", msg.page, msg.keyword)
		return nil
	}

	s.loading = false
	if msg.err != nil {
		log.Printf("regionlist: search %q page %d failed: %v", msg.keyword, msg.page, msg.err)
		s.updateEmpty()
		return nil
	}

	s.search.appendPage(msg.regions)
	log.Printf("regionlist: page %d for %q added %d regions (total %d)",
		msg.page, msg.keyword, len(msg.regions), s.search.RowCount())
	return s.Refresh()
}

func (s *Screen) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		return s.SubmitSearch(s.input.Value())
	case tea.KeyEsc, tea.KeyTab:
		s.blurInput()
		return nil
	case tea.KeyDown:
		if s.source.RowCount() > 0 {
			s.blurInput()
		}
		return nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *Screen) handleListKey(msg tea.KeyMsg) tea.Cmd {
	total := s.source.RowCount()
	switch {
	case key.Matches(msg, s.keys.Close), key.Matches(msg, s.keys.Back):
		return s.Dismiss()
	case key.Matches(msg, s.keys.Search):
		if s.mode == SearchMode {
			return s.focusInput()
		}
		return nil
	case key.Matches(msg, s.keys.Select):
		return s.selectCurrent()
	case key.Matches(msg, s.keys.Up):
		s.nav.move(-1, total)
	case key.Matches(msg, s.keys.Down):
		s.nav.move(1, total)
	case key.Matches(msg, s.keys.PageUp):
		s.nav.move(-max(1, s.nav.height-1), total)
	case key.Matches(msg, s.keys.PageDown):
		s.nav.move(max(1, s.nav.height-1), total)
	case key.Matches(msg, s.keys.Home):
		s.nav.move(-total, total)
	case key.Matches(msg, s.keys.End):
		s.nav.move(total, total)
	default:
		return nil
	}
	return s.revealRows()
}

func (s *Screen) handleMouse(msg tea.MouseMsg) tea.Cmd {
	wheel := msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	// backdrop band: tap or flick dismisses
	if msg.Y < s.topMargin {
		if press || wheel {
			return s.Dismiss()
		}
		return nil
	}

	total := s.source.RowCount()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		s.nav.move(-1, total)
		return s.revealRows()
	case tea.MouseButtonWheelDown:
		s.nav.move(1, total)
		return s.revealRows()
	}
	if !press {
		return nil
	}

	line := msg.Y - s.topMargin
	if line == headerLine && msg.X >= s.width-6 {
		return s.Dismiss()
	}
	if s.mode == SearchMode && line >= headerLine+1 && line < headerLine+1+inputLines {
		return s.focusInput()
	}

	listTop := s.listTop()
	if line < listTop || line >= listTop+s.listHeight() {
		return nil
	}
	start, end, above, _ := s.nav.window(total)
	row := start + line - listTop
	if above {
		row--
	}
	if row < start || row >= end {
		return nil
	}
	s.nav.selected = row
	return s.selectCurrent()
}

func (s *Screen) selectCurrent() tea.Cmd {
	region, ok := s.source.RowAt(s.nav.selected)
	if !ok {
		return nil
	}
	log.Printf("regionlist: selected %s (%s)", region.Name, region.Key())
	selected := func() tea.Msg { return RegionSelectedMsg{Region: region} }
	return tea.Batch(selected, s.Dismiss())
}

// revealRows reports rows that entered the viewport since the last call,
// in increasing index order
func (s *Screen) revealRows() tea.Cmd {
	start, end, _, _ := s.nav.window(s.source.RowCount())

	var cmds []tea.Cmd
	for i := start; i < end; i++ {
		if i >= s.shownStart && i < s.shownEnd {
			continue
		}
		if cmd := s.OnRowAboutToDisplay(i); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	s.shownStart, s.shownEnd = start, end
	return tea.Batch(cmds...)
}

func (s *Screen) updateEmpty() {
	s.emptyVisible = s.source.RowCount() == 0
}

func (s *Screen) focusInput() tea.Cmd {
	if s.mode != SearchMode {
		return nil
	}
	s.inputFocused = true
	return s.input.Focus()
}

func (s *Screen) blurInput() {
	s.inputFocused = false
	s.input.Blur()
}

// Mode returns the screen's mode
func (s *Screen) Mode() Mode { return s.mode }

// Keyword returns the submitted search keyword
func (s *Screen) Keyword() string { return s.search.keyword }

// Page returns the next page number to fetch
func (s *Screen) Page() int { return s.search.page }

// Results returns the accumulated search results
func (s *Screen) Results() []domain.Region {
	out := make([]domain.Region, len(s.search.results))
	copy(out, s.search.results)
	return out
}

// RowCount returns the number of rows in the active list
func (s *Screen) RowCount() int { return s.source.RowCount() }

// RowAt returns the region at row i of the active list
func (s *Screen) RowAt(i int) (domain.Region, bool) { return s.source.RowAt(i) }

// EmptyVisible reports whether the empty-state placeholder is shown
func (s *Screen) EmptyVisible() bool { return s.emptyVisible }

// EmptyMessage returns the placeholder text for the mode
func (s *Screen) EmptyMessage() string { return s.emptyText }

// Title returns the header title
func (s *Screen) Title() string { return s.title }

// Loading reports whether a page request is in flight
func (s *Screen) Loading() bool { return s.loading }

// Dismissed reports whether the screen has been closed
func (s *Screen) Dismissed() bool { return s.dismissed }

// InputFocused reports whether the search input has focus
func (s *Screen) InputFocused() bool { return s.inputFocused }

// Selected returns the cursor row
func (s *Screen) Selected() int { return s.nav.selected }
