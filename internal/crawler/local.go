package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/time/rate"
)

// DefaultLocalTimeout bounds one direct page fetch.
const DefaultLocalTimeout = 20 * time.Second

// defaultRequestsPerSecond throttles direct fetches so batch runs do
// not hammer origin servers.
const defaultRequestsPerSecond = 2

// strippedSelector removes chrome and boilerplate before content
// selection.
const strippedSelector = "script, style, nav, footer, header, aside, noscript"

// contentSelectors are tried in order to find the main content region.
// The last entry always matches.
var contentSelectors = []string{"main", "[role=main]", ".main-content", "#main", "body"}

// Local fetches pages with a plain HTTP GET and distills the HTML
// itself. It is the second tier: no JavaScript rendering, but no
// external service dependency either.
type Local struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	headers   map[string]string
	cookie    string
}

// LocalOption configures a Local provider.
type LocalOption func(*Local)

// WithLocalHTTPClient replaces the HTTP client. Intended for tests.
func WithLocalHTTPClient(client *http.Client) LocalOption {
	return func(l *Local) {
		l.client = client
	}
}

// WithRateLimit sets the outbound request rate.
func WithRateLimit(perSecond float64) LocalOption {
	return func(l *Local) {
		l.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithUserAgent sets the User-Agent header sent with each fetch.
func WithUserAgent(ua string) LocalOption {
	return func(l *Local) {
		l.userAgent = ua
	}
}

// WithHeaders sets extra HTTP headers sent with each fetch. Useful for
// sites that gate content behind custom headers.
func WithHeaders(headers map[string]string) LocalOption {
	return func(l *Local) {
		l.headers = headers
	}
}

// WithCookie sets an HTTP cookie sent with each fetch.
// Format: "name=value" or "name1=value1; name2=value2".
func WithCookie(cookie string) LocalOption {
	return func(l *Local) {
		l.cookie = cookie
	}
}

// NewLocal creates the direct-fetch provider.
func NewLocal(opts ...LocalOption) *Local {
	l := &Local{
		client:    &http.Client{Timeout: DefaultLocalTimeout},
		limiter:   rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), 1),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Name implements Provider.
func (l *Local) Name() string {
	return "local"
}

// Fetch implements Provider.
func (l *Local) Fetch(ctx context.Context, pageURL string) (*Result, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("crawler: rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("crawler: build request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	for k, v := range l.headers {
		req.Header.Set(k, v)
	}
	if l.cookie != "" {
		req.Header.Set("Cookie", l.cookie)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("crawler: fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("crawler: fetch %s: status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("crawler: parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	description := strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", ""))

	doc.Find(strippedSelector).Remove()
	markdown := renderMarkdown(mainContent(doc).Nodes)

	// Thin results usually mean the content sits behind markup the
	// selector walk missed; readability gets a second opinion.
	if len(markdown) < MinContentLength {
		if distilled := l.distill(doc, pageURL); len(distilled) > len(markdown) {
			markdown = distilled
		}
	}
	if len(markdown) < MinContentLength {
		return nil, fmt.Errorf("crawler: fetch %s: only %d chars of content", pageURL, len(markdown))
	}

	return &Result{
		Markdown:    markdown,
		Title:       title,
		Description: description,
		StatusCode:  resp.StatusCode,
	}, nil
}

func mainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Selection
}

// distill re-extracts the page through readability's article detection.
func (l *Local) distill(doc *goquery.Document, pageURL string) string {
	rawHTML, err := doc.Html()
	if err != nil {
		return ""
	}
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		return ""
	}

	articleDoc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return strings.TrimSpace(article.TextContent)
	}
	return renderMarkdown(articleDoc.Selection.Nodes)
}
