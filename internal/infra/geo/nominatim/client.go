package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/yanqian/jyotish/internal/domain/chart"
)

const (
	defaultBaseURL   = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent = "soulvista_engine"
	defaultCountry   = "India"
	defaultTimeout   = 10 * time.Second
)

// Options configures the geocoding client.
type Options struct {
	BaseURL   string
	UserAgent string
	Country   string
	Timeout   time.Duration
}

// Client resolves free text places through the Nominatim search API.
type Client struct {
	baseURL    string
	userAgent  string
	country    string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(opts Options) *Client {
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	agent := strings.TrimSpace(opts.UserAgent)
	if agent == "" {
		agent = defaultUserAgent
	}
	country := strings.TrimSpace(opts.Country)
	if country == "" {
		country = defaultCountry
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(base, "/"),
		userAgent: agent,
		country:   country,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Geocode returns the first match for "{place}, {state}, {country}".
func (c *Client) Geocode(ctx context.Context, placeName, state string) (chart.Location, bool, error) {
	query := c.Query(placeName, state)

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	endpoint := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return chart.Location{}, false, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return chart.Location{}, false, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return chart.Location{}, false, fmt.Errorf("geocode request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var places []place
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&places); err != nil {
		return chart.Location{}, false, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(places) == 0 {
		return chart.Location{}, false, nil
	}
	return places[0].location()
}

// Query forms the search string sent upstream.
func (c *Client) Query(place, state string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{place, state, c.country} {
		clean := strings.Join(strings.Fields(norm.NFC.String(p)), " ")
		if clean != "" {
			parts = append(parts, clean)
		}
	}
	return strings.Join(parts, ", ")
}

// Nominatim encodes coordinates as strings.
type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (p place) location() (chart.Location, bool, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(p.Lat), 64)
	if err != nil {
		return chart.Location{}, false, fmt.Errorf("parse latitude %q: %w", p.Lat, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(p.Lon), 64)
	if err != nil {
		return chart.Location{}, false, fmt.Errorf("parse longitude %q: %w", p.Lon, err)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return chart.Location{}, false, fmt.Errorf("coordinates out of range: lat=%v lon=%v", lat, lon)
	}
	return chart.Location{Latitude: lat, Longitude: lon}, true, nil
}

var _ chart.Geocoder = (*Client)(nil)
