package geocode

import (
	"context"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"hygrometer/internal/domain"
)

type pageKey struct {
	keyword string
	page    int
}

// CachedSearcher memoizes successful pages of another Searcher
type CachedSearcher struct {
	next  Searcher
	cache *lru.Cache[pageKey, []domain.Region]
}

// NewCachedSearcher wraps next with an LRU of size entries
func NewCachedSearcher(next Searcher, size int) (*CachedSearcher, error) {
	if size <= 0 {
		size = 64
	}
	cache, err := lru.New[pageKey, []domain.Region](size)
	if err != nil {
		return nil, fmt.Errorf("geocode: create cache: %w", err)
	}
	return &CachedSearcher{next: next, cache: cache}, nil
}

// Search implements Searcher
func (c *CachedSearcher) Search(ctx context.Context, keyword string, page int) ([]domain.Region, error) {
	key := pageKey{keyword: strings.TrimSpace(keyword), page: page}
	if regions, ok := c.cache.Get(key); ok {
		return clone(regions), nil
	}

	regions, err := c.next.Search(ctx, keyword, page)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, clone(regions))
	return regions, nil
}

// Len returns the number of cached pages
func (c *CachedSearcher) Len() int {
	return c.cache.Len()
}

func clone(regions []domain.Region) []domain.Region {
	out := make([]domain.Region, len(regions))
	copy(out, regions)
	return out
}
