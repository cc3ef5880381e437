package crawler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultRemoteTimeout bounds one remote scrape round trip, render wait
// included.
const DefaultRemoteTimeout = 20 * time.Second

// renderWaitMillis is how long the remote service waits for client-side
// rendering before capturing the page.
const renderWaitMillis = 3000

// ErrNoAPIKey is returned by Fetch when the remote provider was built
// without credentials. The orchestrator treats it like any other fetch
// failure and moves to the next tier.
var ErrNoAPIKey = errors.New("crawler: remote scrape API key not configured")

// Remote fetches pages through a hosted scrape API that renders
// JavaScript before capturing content. It is the first tier of the
// provider chain because it handles pages the plain HTTP tier cannot.
type Remote struct {
	apiKey string
	apiURL string
	client *http.Client
}

// RemoteOption configures a Remote provider.
type RemoteOption func(*Remote)

// WithRemoteHTTPClient replaces the HTTP client. Intended for tests.
func WithRemoteHTTPClient(client *http.Client) RemoteOption {
	return func(r *Remote) {
		r.client = client
	}
}

// NewRemote creates the scrape-API provider. An empty apiKey is allowed;
// Fetch then fails fast with ErrNoAPIKey so the chain falls through.
func NewRemote(apiKey, apiURL string, opts ...RemoteOption) *Remote {
	r := &Remote{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: DefaultRemoteTimeout},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements Provider.
func (r *Remote) Name() string {
	return "remote"
}

type scrapeRequest struct {
	URL             string            `json:"url"`
	Formats         []string          `json:"formats"`
	OnlyMainContent bool              `json:"onlyMainContent"`
	IncludeTags     []string          `json:"includeTags"`
	ExcludeTags     []string          `json:"excludeTags"`
	WaitFor         int               `json:"waitFor"`
	Timeout         int               `json:"timeout"`
	Headers         map[string]string `json:"headers"`
}

type scrapeResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Markdown string `json:"markdown"`
		HTML     string `json:"html"`
		Metadata struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			StatusCode  int    `json:"statusCode"`
		} `json:"metadata"`
	} `json:"data"`
}

// Fetch implements Provider.
func (r *Remote) Fetch(ctx context.Context, url string) (*Result, error) {
	if r.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	payload, err := json.Marshal(scrapeRequest{
		URL:             url,
		Formats:         []string{"markdown", "html"},
		OnlyMainContent: false,
		IncludeTags:     []string{"title", "meta", "h1", "h2", "h3", "h4", "p", "div", "section", "article"},
		ExcludeTags:     []string{"script", "style"},
		WaitFor:         renderWaitMillis,
		Timeout:         int(DefaultRemoteTimeout / time.Millisecond),
		Headers:         map[string]string{"User-Agent": DefaultUserAgent},
	})
	if err != nil {
		return nil, fmt.Errorf("crawler: marshal scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("crawler: build scrape request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crawler: scrape API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crawler: scrape API returned status %d", resp.StatusCode)
	}

	var body scrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("crawler: decode scrape response: %w", err)
	}
	if !body.Success {
		return nil, fmt.Errorf("crawler: scrape API failed: %s", body.Error)
	}
	if len(body.Data.Markdown) < MinContentLength {
		return nil, fmt.Errorf("crawler: scrape API returned %d chars, need %d", len(body.Data.Markdown), MinContentLength)
	}

	return &Result{
		Markdown:    body.Data.Markdown,
		HTML:        body.Data.HTML,
		Title:       body.Data.Metadata.Title,
		Description: body.Data.Metadata.Description,
		StatusCode:  body.Data.Metadata.StatusCode,
	}, nil
}
