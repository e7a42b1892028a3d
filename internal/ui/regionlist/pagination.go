package regionlist

import "hygrometer/internal/geocode"

// PageSize is the number of results per fetched page
const PageSize = geocode.PageSize

// ShouldPrefetch reports whether displaying row index should request the
// next page. It fires on the second-to-last row of the page before the most
// recently loaded one, so the next page is requested one full page ahead of
// the end of the list. page is the next page to fetch.
func ShouldPrefetch(index, page, pageSize int) bool {
	if pageSize < 2 || index < 0 {
		return false
	}
	return index%pageSize == pageSize-2 && index/pageSize == page-2
}
