package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ibs-relief/relimap-cli/internal/cache"
	"github.com/ibs-relief/relimap-cli/internal/models"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 30 * time.Second

	userAgent = "relimap-cli"
)

// Cache interface for caching HTTP responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Client talks to the timetable, guidance and geolocation collaborators.
// All three are stateless; every call recomputes from scratch apart from the
// short-TTL response cache on GET requests.
type Client struct {
	httpClient   *http.Client
	timetableURL string
	guidanceURL  string
	geoipURL     string
	timezone     *time.Location
	cache        Cache
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache enables caching with the provided cache implementation
func WithCache(cache Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithDefaultCache enables caching with the default file cache
func WithDefaultCache() ClientOption {
	return func(c *Client) {
		fc, err := cache.NewFileCache(cache.DefaultCacheDir(), defaultCacheTTL)
		if err == nil {
			c.cache = fc
		}
	}
}

// WithTimetableURL overrides the timetable service base URL
func WithTimetableURL(u string) ClientOption {
	return func(c *Client) {
		c.timetableURL = u
	}
}

// WithGuidanceURL overrides the guidance service base URL
func WithGuidanceURL(u string) ClientOption {
	return func(c *Client) {
		c.guidanceURL = u
	}
}

// WithGeoIPURL overrides the geolocation service base URL
func WithGeoIPURL(u string) ClientOption {
	return func(c *Client) {
		c.geoipURL = u
	}
}

// NewClient creates a new API client. Base URLs come from the environment
// when set, otherwise from the built-in defaults; options are applied last.
func NewClient(opts ...ClientOption) (*Client, error) {
	tz, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone: %w", err)
	}

	c := &Client{
		httpClient:   &http.Client{Timeout: defaultTimeout},
		timetableURL: envOr(EnvTimetableURL, DefaultTimetableURL),
		guidanceURL:  envOr(EnvGuidanceURL, DefaultGuidanceURL),
		geoipURL:     envOr(EnvGeoIPURL, DefaultGeoIPURL),
		timezone:     tz,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Timezone returns the client's timezone
func (c *Client) Timezone() *time.Location {
	return c.timezone
}

// GetTimetable fetches the day-typed departure list for a line.
func (c *Client) GetTimetable(ctx context.Context, key string, day models.DayType) (*models.Timetable, error) {
	body, err := c.GetTimetableRaw(ctx, key, day)
	if err != nil {
		return nil, err
	}

	var resp models.TimetableResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse timetable response: %w", err)
	}

	return resp.ToTimetable(), nil
}

// GetTimetableRaw fetches a timetable and returns raw JSON
func (c *Client) GetTimetableRaw(ctx context.Context, key string, day models.DayType) (json.RawMessage, error) {
	if key == "" {
		return nil, ErrMissingField("timetable key")
	}

	params := url.Values{}
	params.Set("day", string(day))

	reqURL := c.timetableURL + EndpointTimetable + "/" + url.PathEscape(key) + "?" + params.Encode()

	return c.doGet(ctx, reqURL)
}

// GuidanceRequest contains parameters for a guidance query.
// Origin is the caller's own position when one is known; the service uses it
// to phrase the approach steps relative to where the user is starting from.
type GuidanceRequest struct {
	Station   string           `json:"station"`
	English   string           `json:"english,omitempty"`
	Line      string           `json:"line,omitempty"`
	Lat       float64          `json:"lat"`
	Lng       float64          `json:"lng"`
	Origin    *models.Position `json:"origin,omitempty"`
	Automatic bool             `json:"automatic"`
}

// GetGuidance requests natural-language guidance for a station.
// Responses are never cached; every prediction gets a fresh set of steps.
func (c *Client) GetGuidance(ctx context.Context, req GuidanceRequest) (*models.Guidance, error) {
	if req.Station == "" {
		return nil, ErrMissingField("station")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode guidance request: %w", err)
	}

	body, err := c.doPost(ctx, c.guidanceURL+EndpointGuide, payload)
	if err != nil {
		return nil, err
	}

	var resp models.GuidanceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse guidance response: %w", err)
	}

	return resp.ToGuidance(), nil
}

// Locate fetches a coarse position fix for the caller's public IP.
// The fix carries a large accuracy radius, so automatic matches made from it
// come back flagged low-confidence by the resolver.
func (c *Client) Locate(ctx context.Context) (*models.Position, error) {
	body, err := c.doGet(ctx, c.geoipURL+EndpointGeoIP)
	if err != nil {
		return nil, err
	}

	var resp models.FixResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse geolocation response: %w", err)
	}
	if resp.Status != "" && resp.Status != "success" {
		return nil, fmt.Errorf("%w: geolocation status %q", ErrNoResults, resp.Status)
	}

	pos := resp.ToPosition()
	if !pos.Valid() {
		return nil, fmt.Errorf("%w: geolocation returned invalid coordinates", ErrNoResults)
	}
	return pos, nil
}

// doGet performs an HTTP GET request with optional caching
func (c *Client) doGet(ctx context.Context, reqURL string) ([]byte, error) {
	if c.cache != nil {
		if data, ok := c.cache.Get(reqURL); ok {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	body, err := c.do(req, reqURL)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		_ = c.cache.Set(reqURL, body)
	}

	return body, nil
}

// doPost performs an HTTP POST request; responses are never cached
func (c *Client) doPost(ctx context.Context, reqURL string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	return c.do(req, reqURL)
}

func (c *Client) do(req *http.Request, reqURL string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, req.Context().Err())
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, NewAPIError(resp.StatusCode, resp.Status, extractEndpoint(reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
