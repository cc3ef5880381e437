package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

// Default configuration values.
const (
	// DefaultRemoteTimeout bounds one remote scrape-API round trip.
	// The API waits for client-side rendering before capturing, so this
	// must cover the render wait plus network time.
	DefaultRemoteTimeout = 20 * time.Second

	// DefaultLocalTimeout bounds one direct page fetch. Direct fetches
	// skip rendering, but slow origins still need room.
	DefaultLocalTimeout = 20 * time.Second

	// DefaultMinContentLength is the shortest markdown payload treated
	// as a usable crawl. Below this the next provider tier is tried.
	DefaultMinContentLength = 100

	// DefaultCacheTTL is how long an analysis is served from cache.
	// One day keeps repeat lookups of the same domain stable without
	// letting results go stale for long-running processes.
	DefaultCacheTTL = 24 * time.Hour

	// DefaultCacheSize bounds the in-memory result cache.
	DefaultCacheSize = 1000

	// DefaultBatchSize is the number of concurrent analyses when
	// processing multiple domains. Crawling is network-bound, so a
	// modest fan-out gains most of the throughput without hammering
	// the scrape API's rate limits.
	DefaultBatchSize = 5

	// DefaultUserAgent identifies the crawler in HTTP requests.
	DefaultUserAgent = "Mozilla/5.0 (compatible; GSO-Insight-Bot/1.0)"

	// DefaultScrapeAPIURL is the hosted scrape endpoint used when no
	// override is configured.
	DefaultScrapeAPIURL = "https://api.firecrawl.dev/v1/scrape"

	// AppName is the application name used for XDG directory paths.
	AppName = "gsoscan"
)

// Environment variables read by LoadEnv.
const (
	// EnvAPIKey carries the scrape-API credential. Without it the
	// remote provider is skipped and analyses use the direct-fetch
	// tier or the deterministic fallback.
	EnvAPIKey = "SCRAPE_API_KEY"

	// EnvAPIURL overrides the scrape-API endpoint.
	EnvAPIURL = "SCRAPE_API_URL"
)

// Config holds all options for a gsoscan run. It is populated from CLI
// flags, the environment, and the optional config file, then passed
// through the application by dependency injection rather than global
// state.
type Config struct {
	// APIKey authenticates against the remote scrape API. Empty means
	// the remote tier is unavailable.
	APIKey string

	// APIURL is the scrape-API endpoint.
	APIURL string

	// RemoteTimeout bounds one scrape-API round trip.
	RemoteTimeout time.Duration

	// LocalTimeout bounds one direct page fetch.
	LocalTimeout time.Duration

	// MinContentLength is the usable-content threshold for crawls.
	MinContentLength int

	// CacheTTL is how long analyses are served from cache.
	CacheTTL time.Duration

	// CacheSize bounds the in-memory result cache.
	CacheSize int

	// BatchSize is the concurrent-analysis limit for multi-domain runs.
	BatchSize int

	// UserAgent is sent with direct page fetches.
	UserAgent string

	// Verbose enables debug-level log output.
	Verbose bool

	// JSONReport selects JSON report output. Mutually exclusive with
	// MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown report output. Mutually exclusive
	// with JSONReport.
	MarkdownReport bool

	// ReportFile writes the report to a file instead of stdout.
	ReportFile string

	// Domains is the list of domains to analyze.
	Domains []string

	// NoCache disables the in-memory result cache for this run.
	NoCache bool

	// DBDir is the directory for the SQLite database. Empty disables
	// persistence.
	DBDir string

	// DetectLanguage enables content-language detection on snapshots.
	DetectLanguage bool

	// ConfigFilePath is an explicit config file path. Empty means the
	// default search order (current directory, then home).
	ConfigFilePath string

	// SiteConfigs holds per-domain overrides loaded from the config file.
	SiteConfigs *File
}

// NewConfig creates a Config with default values. Defaults are non-zero
// for most fields, so zero-value construction would be wrong.
func NewConfig() *Config {
	return &Config{
		APIURL:           DefaultScrapeAPIURL,
		RemoteTimeout:    DefaultRemoteTimeout,
		LocalTimeout:     DefaultLocalTimeout,
		MinContentLength: DefaultMinContentLength,
		CacheTTL:         DefaultCacheTTL,
		CacheSize:        DefaultCacheSize,
		BatchSize:        DefaultBatchSize,
		UserAgent:        DefaultUserAgent,
	}
}

// LoadEnv fills credentials from the environment, reading a .env file
// first when one exists in the working directory. Explicitly set fields
// are never overwritten.
func (c *Config) LoadEnv() {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if url := os.Getenv(EnvAPIURL); url != "" && c.APIURL == DefaultScrapeAPIURL {
		c.APIURL = url
	}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if len(c.Domains) == 0 {
		return ErrNoDomain
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.RemoteTimeout <= 0 || c.LocalTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// XDGDataDir returns the XDG data directory for gsoscan, used as the
// default database location.
// On Linux: ~/.local/share/gsoscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for gsoscan.
// On Linux: ~/.config/gsoscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
