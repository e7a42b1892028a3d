// Package geocode looks up regions by keyword, one page at a time.
package geocode

import (
	"context"

	"hygrometer/internal/domain"
)

// PageSize is the number of regions requested per page
const PageSize = 10

// Searcher returns one page of regions matching keyword.
// Pages are 1-based. A page past the end returns an empty slice.
type Searcher interface {
	Search(ctx context.Context, keyword string, page int) ([]domain.Region, error)
}

// SearcherFunc adapts a function to Searcher
type SearcherFunc func(ctx context.Context, keyword string, page int) ([]domain.Region, error)

func (f SearcherFunc) Search(ctx context.Context, keyword string, page int) ([]domain.Region, error) {
	return f(ctx, keyword, page)
}
