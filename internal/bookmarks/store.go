// Package bookmarks persists the user's bookmarked regions.
package bookmarks

import (
	"context"
	"errors"

	"hygrometer/internal/domain"
)

// ErrNotFound is returned when removing a key that is not bookmarked
var ErrNotFound = errors.New("bookmark not found")

// Store is an ordered collection of bookmarked regions.
// Bookmarks returns a snapshot in insertion order. Adding a region whose
// key is already present is a no-op.
type Store interface {
	Bookmarks() []domain.Region
	Add(ctx context.Context, region domain.Region) error
	Remove(ctx context.Context, key string) error
	Contains(key string) bool
}

// Toggle adds region when absent and removes it otherwise.
// Returns true when the region ended up bookmarked.
func Toggle(ctx context.Context, s Store, region domain.Region) (bool, error) {
	if s.Contains(region.Key()) {
		return false, s.Remove(ctx, region.Key())
	}
	return true, s.Add(ctx, region)
}

// Lookup returns the bookmark with key
func Lookup(s Store, key string) (domain.Region, bool) {
	for _, r := range s.Bookmarks() {
		if r.Key() == key {
			return r, true
		}
	}
	return domain.Region{}, false
}
