// Package nyt is a thin client for the New York Times Books API, the
// upstream source of best-seller lists.
package nyt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"bookradar/internal/catalog"
)

const DefaultBaseURL = "https://api.nytimes.com/svc/books/v3"

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient builds a client paced at rpm requests per minute. The provider
// rate-limits aggressively, so every call goes through the limiter; there is
// no retry, a failed fetch surfaces immediately.
func NewClient(baseURL, apiKey string, rpm int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
	}
}

type overviewResponse struct {
	Results catalog.Overview `json:"results"`
}

type namesResponse struct {
	Results []catalog.ListName `json:"results"`
}

type currentListResponse struct {
	Results catalog.List `json:"results"`
}

// Overview fetches lists/overview.json, the full snapshot of every list.
func (c *Client) Overview(ctx context.Context) (catalog.Overview, error) {
	var res overviewResponse
	if err := c.get(ctx, "/lists/overview.json", &res); err != nil {
		return catalog.Overview{}, err
	}
	return res.Results, nil
}

// ListNames fetches lists/names.json.
func (c *Client) ListNames(ctx context.Context) ([]catalog.ListName, error) {
	var res namesResponse
	if err := c.get(ctx, "/lists/names.json", &res); err != nil {
		return nil, err
	}
	return res.Results, nil
}

// CurrentList fetches lists/current/{encodedKey}.json.
func (c *Client) CurrentList(ctx context.Context, encodedKey string) (catalog.List, error) {
	var res currentListResponse
	path := "/lists/current/" + url.PathEscape(encodedKey) + ".json"
	if err := c.get(ctx, path, &res); err != nil {
		return catalog.List{}, err
	}
	return res.Results, nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path + "?api-key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", catalog.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status code %d", catalog.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("%w: decoding response: %v", catalog.ErrUpstream, err)
	}
	return nil
}
