package regionlist

import (
	"hygrometer/internal/bookmarks"
	"hygrometer/internal/domain"
)

// Mode selects what the screen lists. Fixed for a screen's lifetime.
type Mode int

const (
	SearchMode Mode = iota
	BookmarkMode
)

func (m Mode) String() string {
	switch m {
	case SearchMode:
		return "search"
	case BookmarkMode:
		return "bookmarks"
	default:
		return "unknown"
	}
}

// Empty-state messages
const (
	NoSearchResultsMessage = "No search results."
	NoBookmarksMessage     = "No bookmarked regions."
)

// ListSource is the list the screen is currently showing
type ListSource interface {
	RowCount() int
	RowAt(i int) (domain.Region, bool)
	EmptyMessage() string
}

// searchSource accumulates fetched pages for the current keyword.
// Pages are appended in fetch order and never reordered.
type searchSource struct {
	keyword string
	results []domain.Region
	page    int
}

func newSearchSource() *searchSource {
	return &searchSource{page: 1}
}

func (s *searchSource) RowCount() int { return len(s.results) }

func (s *searchSource) RowAt(i int) (domain.Region, bool) {
	if i < 0 || i >= len(s.results) {
		return domain.Region{}, false
	}
	return s.results[i], true
}

func (s *searchSource) EmptyMessage() string { return NoSearchResultsMessage }

// reset starts over for keyword at page 1
func (s *searchSource) reset(keyword string) {
	s.keyword = keyword
	s.results = nil
	s.page = 1
}

// appendPage records a completed fetch
func (s *searchSource) appendPage(regions []domain.Region) {
	s.results = append(s.results, regions...)
	s.page++
}

// bookmarkSource reads the store on every call so the list always
// matches the store's current contents
type bookmarkSource struct {
	store bookmarks.Store
}

func (s *bookmarkSource) RowCount() int { return len(s.store.Bookmarks()) }

func (s *bookmarkSource) RowAt(i int) (domain.Region, bool) {
	regions := s.store.Bookmarks()
	if i < 0 || i >= len(regions) {
		return domain.Region{}, false
	}
	return regions[i], true
}

func (s *bookmarkSource) EmptyMessage() string { return NoBookmarksMessage }
