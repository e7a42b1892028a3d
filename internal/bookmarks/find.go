package bookmarks

import (
	"github.com/sahilm/fuzzy"

	"hygrometer/internal/domain"
)

// regionSource exposes regions to the fuzzy matcher
type regionSource []domain.Region

func (s regionSource) String(i int) string {
	r := s[i]
	return r.Name + " " + r.DisplayAddress()
}

func (s regionSource) Len() int { return len(s) }

// Find returns bookmarks matching query, best match first.
// An exact key match wins outright.
func Find(s Store, query string) []domain.Region {
	regions := s.Bookmarks()
	for _, r := range regions {
		if r.Key() == query {
			return []domain.Region{r}
		}
	}

	matches := fuzzy.FindFrom(query, regionSource(regions))
	out := make([]domain.Region, 0, len(matches))
	for _, m := range matches {
		out = append(out, regions[m.Index])
	}
	return out
}
