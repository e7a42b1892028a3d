package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"hygrometer/internal/domain"
)

// ErrMissingAPIKey is returned when the client has no REST API key
var ErrMissingAPIKey = errors.New("geocode: missing kakao api key")

// StatusError reports a non-2xx response from the provider
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("geocode: http %d", e.StatusCode)
	}
	return fmt.Sprintf("geocode: http %d: %s", e.StatusCode, e.Message)
}

// maxPage is the last page the keyword API serves
const maxPage = 45

// KakaoClient searches places with the Kakao Local keyword API
type KakaoClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewKakaoClient creates a client. A nil httpClient uses http.DefaultClient.
func NewKakaoClient(baseURL, apiKey string, httpClient *http.Client) *KakaoClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &KakaoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

type kakaoResponse struct {
	Meta struct {
		TotalCount    int  `json:"total_count"`
		PageableCount int  `json:"pageable_count"`
		IsEnd         bool `json:"is_end"`
	} `json:"meta"`
	Documents []kakaoDocument `json:"documents"`
}

type kakaoDocument struct {
	ID              string `json:"id"`
	PlaceName       string `json:"place_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	CategoryName    string `json:"category_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
}

type kakaoError struct {
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
}

// Search implements Searcher
func (c *KakaoClient) Search(ctx context.Context, keyword string, page int) ([]domain.Region, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		return []domain.Region{}, nil
	}

	q := url.Values{}
	q.Set("query", keyword)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(PageSize))
	endpoint := c.baseURL + "/v2/local/search/keyword.json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: search %q page %d: %w", keyword, page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr kakaoError
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(body, &apiErr)
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	var out kakaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("geocode: decode response: %w", err)
	}
	// past the end the API repeats its last page
	if out.Meta.PageableCount > 0 && (page-1)*PageSize >= out.Meta.PageableCount {
		return []domain.Region{}, nil
	}

	regions := make([]domain.Region, 0, len(out.Documents))
	for _, doc := range out.Documents {
		regions = append(regions, doc.region())
	}
	return regions, nil
}

func (d kakaoDocument) region() domain.Region {
	// coordinates arrive as strings; a malformed value leaves zero
	lon, _ := strconv.ParseFloat(d.X, 64)
	lat, _ := strconv.ParseFloat(d.Y, 64)
	return domain.Region{
		ID:          d.ID,
		Name:        d.PlaceName,
		Address:     d.AddressName,
		RoadAddress: d.RoadAddressName,
		Category:    d.CategoryName,
		Coordinate:  domain.Coordinate{Latitude: lat, Longitude: lon},
	}
}
