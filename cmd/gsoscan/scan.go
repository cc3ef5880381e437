package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gso-insight/gsoscan/internal/analyzer"
	"github.com/gso-insight/gsoscan/internal/cache"
	"github.com/gso-insight/gsoscan/internal/config"
	"github.com/gso-insight/gsoscan/internal/crawler"
	"github.com/gso-insight/gsoscan/internal/database"
	"github.com/gso-insight/gsoscan/internal/extract"
	"github.com/gso-insight/gsoscan/internal/log"
	"github.com/gso-insight/gsoscan/internal/model"
	"github.com/gso-insight/gsoscan/internal/report"
	"github.com/pemistahl/lingua-go"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [domain]",
		Short: "Analyze a website's visibility to AI assistants and generative search",
		Long: `Scan fetches a website's content and scores ten GSO visibility dimensions.

Content is obtained through a tiered crawler chain: the remote scrape
API first (when an API key is configured), then a direct HTTP fetch.
When neither tier yields usable content, deterministic fallback scores
are produced so the command always succeeds for a valid domain.

Examples:
  # Analyze a single domain
  gsoscan scan acme.example

  # Analyze multiple domains concurrently
  gsoscan scan acme.example shop.example clinicare.org

  # Use the remote scrape API for JavaScript-rendered sites
  gsoscan scan --api-key fc-xxxx acme.example

  # Output JSON report to a file
  gsoscan scan --json -o report.json acme.example

  # Use a custom configuration file
  gsoscan scan -c myconfig.yaml acme.example

Configuration file (.gsoscan) example:
  sites:
    acme.example:
      industry: technology
      headers:
        Authorization: "Bearer token"
    shop.example:
      industry: ecommerce
      cookie: "session=abc123"`,
		Args: cobra.ArbitraryArgs,
		RunE: runScanCmd,
	}

	// Crawler flags
	cmd.Flags().StringP("api-key", "k", "",
		"Remote scrape API key (default: SCRAPE_API_KEY environment variable)")
	cmd.Flags().String("api-url", "",
		"Remote scrape API endpoint (default: SCRAPE_API_URL or the hosted endpoint)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultLocalTimeout,
		"Timeout for each direct page fetch")
	cmd.Flags().DurationP("remote-timeout", "T", config.DefaultRemoteTimeout,
		"Timeout for each remote scrape API call")

	// Batch analysis flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses")

	// Analysis behavior flags
	cmd.Flags().Bool("no-cache", false,
		"Disable the in-memory result cache for this run")
	cmd.Flags().Bool("detect-language", false,
		"Detect the content language of analyzed pages")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .gsoscan in current or home directory)")

	// Database location
	cmd.Flags().String("db", "",
		"Database directory for analysis history (default: XDG data directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential redaction
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	apiKey, err := cmd.Flags().GetString("api-key")
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}

	apiURL, err := cmd.Flags().GetString("api-url")
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	cfg.LocalTimeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.RemoteTimeout, err = cmd.Flags().GetDuration("remote-timeout")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.NoCache, err = cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}

	cfg.DetectLanguage, err = cmd.Flags().GetBool("detect-language")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Fill API credentials from .env and environment for fields the
	// flags left unset.
	cfg.LoadEnv()

	// Load site-specific configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.SiteConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		// Use empty config if no file found and user didn't explicitly specify one
		cfg.SiteConfigs = &config.File{
			Sites: make(map[string]config.SiteConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Always save to database; default location follows XDG
	cfg.DBDir, err = cmd.Flags().GetString("db")
	if err != nil {
		return nil, err
	}
	if cfg.DBDir == "" {
		cfg.DBDir = config.XDGDataDir()
	}

	// Get positional arguments (domains)
	cfg.Domains = args

	return cfg, nil
}

// runScan executes the analysis.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting analysis",
		"domains", cfg.Domains,
		"remoteAPI", cfg.APIKey != "",
		"batchSize", cfg.BatchSize,
	)

	// Open database connection for result history
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	logger.Info("database opened", "dir", cfg.DBDir)

	// The language detector loads models for every supported language,
	// so build it once and share it across targets.
	var extractor *extract.Extractor
	if cfg.DetectLanguage {
		detector := lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
		extractor = extract.New(extract.WithLanguageDetector(detector))
	} else {
		extractor = extract.New()
	}

	// Use concurrent analysis if multiple domains
	if len(cfg.Domains) > 1 && cfg.BatchSize > 1 {
		return runBatchScan(ctx, cfg, db, extractor, logger)
	}

	// Single domain or sequential analysis
	return runSequentialScan(ctx, cfg, db, extractor, logger)
}

// runSequentialScan analyzes domains one at a time, applying
// site-specific configuration to each.
func runSequentialScan(ctx context.Context, cfg *config.Config, db *database.Store, extractor *extract.Extractor, logger *slog.Logger) error {
	for _, domain := range cfg.Domains {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Get site-specific configuration
		siteConfig := getSiteConfig(cfg, domain)

		// Create a service with site-specific options
		service := newServiceForTarget(cfg, db, extractor, logger, domain, siteConfig)

		fmt.Printf("Analyzing %s...\n", domain)
		startTime := time.Now()

		result, err := service.Analyze(ctx, domain)
		if err != nil {
			logger.Error("analysis failed", "domain", domain, "error", err)
			fmt.Fprintf(os.Stderr, "Analysis error for %s: %v\n", domain, err)
			continue
		}

		elapsed := time.Since(startTime)
		fmt.Printf("Analysis completed in %s\n\n", elapsed.Round(time.Millisecond))

		if err := outputReport(cfg, result); err != nil {
			logger.Error("report failed", "domain", domain, "error", err)
		}
	}

	return nil
}

// runBatchScan analyzes multiple domains concurrently.
func runBatchScan(ctx context.Context, cfg *config.Config, db *database.Store, extractor *extract.Extractor, logger *slog.Logger) error {
	fmt.Printf("Starting batch analysis of %d domains (concurrency: %d)...\n\n",
		len(cfg.Domains), cfg.BatchSize)

	startTime := time.Now()

	// Warn user about batch processing limitation
	if cfg.SiteConfigs != nil && len(cfg.SiteConfigs.Sites) > 0 {
		logger.Warn("batch processing applies header and cookie defaults only; per-site headers and cookies are ignored",
			"siteCount", len(cfg.SiteConfigs.Sites))
	}

	// Industry pins stay per-domain even in batch mode because the
	// override map is keyed by domain.
	industries := make(map[string]string)
	if cfg.SiteConfigs != nil {
		if cfg.SiteConfigs.Defaults.Industry != "" {
			for _, domain := range cfg.Domains {
				industries[domain] = cfg.SiteConfigs.Defaults.Industry
			}
		}
		for domain, siteConfig := range cfg.SiteConfigs.Sites {
			if siteConfig.Industry != "" {
				industries[domain] = siteConfig.Industry
			}
		}
	}

	var defaults config.SiteConfig
	if cfg.SiteConfigs != nil {
		defaults = cfg.SiteConfigs.Defaults
	}

	service := analyzer.New(
		analyzer.WithProviders(buildProviders(cfg, defaults)...),
		analyzer.WithCache(buildCache(cfg)),
		analyzer.WithExtractor(extractor),
		analyzer.WithStore(db),
		analyzer.WithLogger(logger),
		analyzer.WithMinContentLength(cfg.MinContentLength),
		analyzer.WithIndustryOverrides(industries),
	)

	results, err := service.AnalyzeAll(ctx, cfg.Domains, cfg.BatchSize)
	if err != nil {
		return err
	}

	for i, result := range results {
		fmt.Printf("[%d/%d] Analysis completed: %s\n", i+1, len(results), result.Domain)
		if err := outputReport(cfg, result); err != nil {
			logger.Error("report failed", "domain", result.Domain, "error", err)
		}
	}

	elapsed := time.Since(startTime)
	fmt.Printf("\nBatch analysis completed in %s\n", elapsed.Round(time.Millisecond))

	return nil
}

// getSiteConfig returns the site-specific configuration for a domain,
// merged over the file's defaults.
func getSiteConfig(cfg *config.Config, domain string) config.SiteConfig {
	if cfg.SiteConfigs == nil {
		return config.SiteConfig{}
	}
	if normalized, err := model.NewDomain(domain); err == nil {
		domain = normalized.String()
	}
	return cfg.SiteConfigs.GetSiteConfig(domain)
}

// newServiceForTarget creates an analysis service with site-specific
// crawler options and industry pinning applied.
func newServiceForTarget(cfg *config.Config, db *database.Store, extractor *extract.Extractor, logger *slog.Logger, domain string, siteConfig config.SiteConfig) *analyzer.Service {
	opts := []analyzer.Option{
		analyzer.WithProviders(buildProviders(cfg, siteConfig)...),
		analyzer.WithCache(buildCache(cfg)),
		analyzer.WithExtractor(extractor),
		analyzer.WithStore(db),
		analyzer.WithLogger(logger),
		analyzer.WithMinContentLength(cfg.MinContentLength),
	}

	if siteConfig.Industry != "" {
		normalized := domain
		if d, err := model.NewDomain(domain); err == nil {
			normalized = d.String()
		}
		opts = append(opts, analyzer.WithIndustryOverrides(map[string]string{
			normalized: siteConfig.Industry,
		}))
	}

	return analyzer.New(opts...)
}

// buildProviders assembles the ordered crawler chain: the remote
// scrape API when a key is configured, then the direct fetcher.
func buildProviders(cfg *config.Config, siteConfig config.SiteConfig) []crawler.Provider {
	var providers []crawler.Provider

	if cfg.APIKey != "" {
		providers = append(providers, crawler.NewRemote(cfg.APIKey, cfg.APIURL,
			crawler.WithRemoteHTTPClient(&http.Client{Timeout: cfg.RemoteTimeout}),
		))
	}

	localOpts := []crawler.LocalOption{
		crawler.WithLocalHTTPClient(&http.Client{Timeout: cfg.LocalTimeout}),
		crawler.WithUserAgent(cfg.UserAgent),
	}
	if len(siteConfig.Headers) > 0 {
		localOpts = append(localOpts, crawler.WithHeaders(siteConfig.Headers))
	}
	if siteConfig.Cookie != "" {
		localOpts = append(localOpts, crawler.WithCookie(siteConfig.Cookie))
	}
	providers = append(providers, crawler.NewLocal(localOpts...))

	return providers
}

// buildCache creates the result cache. A zero TTL makes every lookup a
// miss, which is how --no-cache is implemented.
func buildCache(cfg *config.Config) *cache.Cache {
	if cfg.NoCache {
		return cache.New(cache.WithTTL(0))
	}
	return cache.New(
		cache.WithTTL(cfg.CacheTTL),
		cache.WithMaxEntries(cfg.CacheSize),
	)
}

// outputReport outputs the analysis report in the requested format.
func outputReport(cfg *config.Config, result *model.AnalysisResult) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output
	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, report.WithPrettyPrint())
		_, err := writer.Write(result)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(result)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	_, err := writer.Write(result)
	return err
}
