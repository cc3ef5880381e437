// Package crawler fetches one page of site content and returns it as
// markdown-like text plus metadata. Providers implement a common
// interface so the orchestrator can try them in order until one
// delivers usable content.
package crawler

import "context"

// MinContentLength is the shortest markdown payload a provider may call
// a success. Shorter responses are treated as a failed fetch so the next
// tier gets a chance.
const MinContentLength = 100

// DefaultUserAgent identifies the crawler to origin servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; GSO-Insight-Bot/1.0)"

// Result is one successful page fetch.
type Result struct {
	// Markdown is the page content as markdown-like text.
	Markdown string

	// HTML is the raw page HTML when the provider has it, empty otherwise.
	HTML string

	// Title is the page title, empty if none was found.
	Title string

	// Description is the meta description, empty if none was found.
	Description string

	// StatusCode is the upstream HTTP status, zero if unknown.
	StatusCode int
}

// Provider fetches one URL's content. Implementations must be safe for
// concurrent use; the batch path fans out over a shared provider chain.
type Provider interface {
	// Name identifies the provider in logs and in PageSnapshot.CrawlerUsed.
	Name() string

	// Fetch retrieves the page. A nil error implies the result carries
	// at least MinContentLength characters of markdown.
	Fetch(ctx context.Context, url string) (*Result, error)
}
