package regionlist

import "hygrometer/internal/domain"

// DismissedMsg is sent once when the screen closes
type DismissedMsg struct{}

// RegionSelectedMsg is sent when the user picks a row. The screen
// dismisses itself right after.
type RegionSelectedMsg struct {
	Region domain.Region
}

// pageLoadedMsg carries one completed search request back into Update.
// screen and generation identify the request so stale results can be dropped.
type pageLoadedMsg struct {
	screen     uint64
	generation int
	keyword    string
	page       int
	regions    []domain.Region
	err        error
}
