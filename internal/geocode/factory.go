package geocode

import (
	"log"
	"net/http"

	"hygrometer/internal/config"
)

// FromConfig builds the configured searcher wrapped in a page cache.
// Falls back to the static gazetteer when offline or when Kakao has no key.
func FromConfig(cfg config.GeocoderConfig, offline bool) (Searcher, error) {
	var base Searcher
	switch {
	case offline || cfg.Provider == config.ProviderStatic:
		base = NewStaticSearcher(nil)
	case cfg.APIKey == "":
		log.Printf("geocode: no api key configured, using offline gazetteer")
		base = NewStaticSearcher(nil)
	default:
		base = NewKakaoClient(cfg.BaseURL, cfg.APIKey, &http.Client{Timeout: cfg.Timeout()})
	}
	return NewCachedSearcher(base, cfg.CacheSize)
}
