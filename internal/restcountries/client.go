package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the public REST Countries v3.1 endpoint.
const DefaultBaseURL = "https://restcountries.com/v3.1"

// ListFields is the projection used for the directory list.
var ListFields = []string{"name", "capital", "population", "region", "flags", "borders"}

// ProfileFields is the projection used when every profile field is needed
// for the whole collection. The API accepts at most ten fields per request.
var ProfileFields = []string{"name", "capital", "population", "region", "subregion", "flags", "borders", "tld", "currencies", "languages"}

// BorderFields is the projection used to resolve border codes to names.
var BorderFields = []string{"name"}

// ErrNotFound is returned when a lookup matches no country.
var ErrNotFound = errors.New("country not found")

// StatusError reports a non-success HTTP response from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Client fetches country records over HTTP.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// All fetches the full collection with the given field projection, or
// ListFields when none is given.
func (c *Client) All(ctx context.Context, fields ...string) ([]Country, error) {
	if len(fields) == 0 {
		fields = ListFields
	}
	q := url.Values{}
	q.Set("fields", strings.Join(fields, ","))

	var countries []Country
	if err := c.get(ctx, "/all", q, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// ByName fetches the record whose name matches exactly.
func (c *Client) ByName(ctx context.Context, name string) (*Country, error) {
	q := url.Values{}
	q.Set("fullText", "true")

	var countries []Country
	if err := c.get(ctx, "/name/"+url.PathEscape(name), q, &countries); err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return &countries[0], nil
}

// ByCodes fetches the records for the given cca2/cca3 codes with the given
// field projection, or BorderFields when none is given.
func (c *Client) ByCodes(ctx context.Context, codes []string, fields ...string) ([]Country, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	if len(fields) == 0 {
		fields = BorderFields
	}
	q := url.Values{}
	q.Set("codes", strings.Join(codes, ","))
	q.Set("fields", strings.Join(fields, ","))

	var countries []Country
	if err := c.get(ctx, "/alpha", q, &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		// Keep commas literal; the API splits lists on them.
		u += "?" + strings.ReplaceAll(query.Encode(), "%2C", ",")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
