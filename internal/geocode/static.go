package geocode

import (
	"context"
	"strings"

	"hygrometer/internal/domain"
)

// StaticSearcher pages through a fixed region list.
// Used offline and when no API key is configured.
type StaticSearcher struct {
	regions []domain.Region
}

// NewStaticSearcher creates a searcher over regions. Nil uses DefaultRegions.
func NewStaticSearcher(regions []domain.Region) *StaticSearcher {
	if regions == nil {
		regions = DefaultRegions()
	}
	return &StaticSearcher{regions: regions}
}

// Search matches keyword case-insensitively against name, address and category
func (s *StaticSearcher) Search(ctx context.Context, keyword string, page int) ([]domain.Region, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(keyword))
	var matches []domain.Region
	for _, r := range s.regions {
		haystack := strings.ToLower(r.Name + " " + r.Address + " " + r.RoadAddress + " " + r.Category)
		if strings.Contains(haystack, needle) {
			matches = append(matches, r)
		}
	}

	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(matches) {
		return []domain.Region{}, nil
	}
	end := min(start+PageSize, len(matches))
	return clone(matches[start:end]), nil
}

// DefaultRegions is a small built-in gazetteer of Korean cities and districts
func DefaultRegions() []domain.Region {
	return []domain.Region{
		{ID: "static-seoul", Name: "Seoul", Address: "Seoul", Category: "City", Coordinate: domain.Coordinate{Latitude: 37.5665, Longitude: 126.9780}},
		{ID: "static-seoul-jongno", Name: "Jongno-gu", Address: "Seoul Jongno-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.5735, Longitude: 126.9790}},
		{ID: "static-seoul-jung", Name: "Jung-gu", Address: "Seoul Jung-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.5641, Longitude: 126.9979}},
		{ID: "static-seoul-yongsan", Name: "Yongsan-gu", Address: "Seoul Yongsan-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.5324, Longitude: 126.9900}},
		{ID: "static-seoul-mapo", Name: "Mapo-gu", Address: "Seoul Mapo-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.5663, Longitude: 126.9019}},
		{ID: "static-seoul-gangnam", Name: "Gangnam-gu", Address: "Seoul Gangnam-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.5172, Longitude: 127.0473}},
		{ID: "static-seoul-songpa", Name: "Songpa-gu", Address: "Seoul Songpa-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.5145, Longitude: 127.1059}},
		{ID: "static-seoul-seocho", Name: "Seocho-gu", Address: "Seoul Seocho-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.4837, Longitude: 127.0324}},
		{ID: "static-seoul-gwanak", Name: "Gwanak-gu", Address: "Seoul Gwanak-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.4784, Longitude: 126.9516}},
		{ID: "static-seoul-nowon", Name: "Nowon-gu", Address: "Seoul Nowon-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.6542, Longitude: 127.0568}},
		{ID: "static-seoul-eunpyeong", Name: "Eunpyeong-gu", Address: "Seoul Eunpyeong-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.6027, Longitude: 126.9291}},
		{ID: "static-seoul-gangseo", Name: "Gangseo-gu", Address: "Seoul Gangseo-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 37.5509, Longitude: 126.8495}},
		{ID: "static-busan", Name: "Busan", Address: "Busan", Category: "City", Coordinate: domain.Coordinate{Latitude: 35.1796, Longitude: 129.0756}},
		{ID: "static-busan-haeundae", Name: "Haeundae-gu", Address: "Busan Haeundae-gu", Category: "District", Coordinate: domain.Coordinate{Latitude: 35.1631, Longitude: 129.1636}},
		{ID: "static-incheon", Name: "Incheon", Address: "Incheon", Category: "City", Coordinate: domain.Coordinate{Latitude: 37.4563, Longitude: 126.7052}},
		{ID: "static-daegu", Name: "Daegu", Address: "Daegu", Category: "City", Coordinate: domain.Coordinate{Latitude: 35.8714, Longitude: 128.6014}},
		{ID: "static-daejeon", Name: "Daejeon", Address: "Daejeon", Category: "City", Coordinate: domain.Coordinate{Latitude: 36.3504, Longitude: 127.3845}},
		{ID: "static-gwangju", Name: "Gwangju", Address: "Gwangju", Category: "City", Coordinate: domain.Coordinate{Latitude: 35.1595, Longitude: 126.8526}},
		{ID: "static-ulsan", Name: "Ulsan", Address: "Ulsan", Category: "City", Coordinate: domain.Coordinate{Latitude: 35.5384, Longitude: 129.3114}},
		{ID: "static-suwon", Name: "Suwon", Address: "Gyeonggi-do Suwon-si", Category: "City", Coordinate: domain.Coordinate{Latitude: 37.2636, Longitude: 127.0286}},
		{ID: "static-jeju", Name: "Jeju", Address: "Jeju-do Jeju-si", Category: "City", Coordinate: domain.Coordinate{Latitude: 33.4996, Longitude: 126.5312}},
		{ID: "static-gangneung", Name: "Gangneung", Address: "Gangwon-do Gangneung-si", Category: "City", Coordinate: domain.Coordinate{Latitude: 37.7519, Longitude: 128.8761}},
	}
}
