// Package analyzer orchestrates one visibility analysis: normalize the
// domain, obtain page content through the provider chain, extract a
// snapshot, score every metric, and assemble the final result. When no
// provider delivers usable content the deterministic fallback scorer
// takes over, so Analyze always produces a result for a valid domain.
package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/gso-insight/gsoscan/internal/benchmark"
	"github.com/gso-insight/gsoscan/internal/cache"
	"github.com/gso-insight/gsoscan/internal/crawler"
	"github.com/gso-insight/gsoscan/internal/extract"
	"github.com/gso-insight/gsoscan/internal/fallback"
	"github.com/gso-insight/gsoscan/internal/insight"
	"github.com/gso-insight/gsoscan/internal/model"
	"github.com/gso-insight/gsoscan/internal/scoring"
)

// Store persists completed analyses. The snapshot is nil when the
// fallback path produced the result.
type Store interface {
	SaveAnalysis(ctx context.Context, snap *model.PageSnapshot, result *model.AnalysisResult) error
}

// Service runs analyses. Build it once and reuse it; all fields are
// read-only after construction and the providers are safe for
// concurrent use.
type Service struct {
	providers  []crawler.Provider
	cache      *cache.Cache
	extractor  *extract.Extractor
	analyzers  []scoring.Analyzer
	formatter  insight.Formatter
	fallback   *fallback.Scorer
	store      Store
	logger     *slog.Logger
	minContent int
	industries map[string]string
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithProviders sets the ordered content-provider chain. Providers are
// tried in slice order; the first usable result wins.
func WithProviders(providers ...crawler.Provider) Option {
	return func(s *Service) {
		s.providers = providers
	}
}

// WithCache sets the result cache.
func WithCache(c *cache.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithExtractor sets the snapshot extractor.
func WithExtractor(e *extract.Extractor) Option {
	return func(s *Service) {
		s.extractor = e
	}
}

// WithAnalyzers replaces the metric analyzer set.
func WithAnalyzers(analyzers ...scoring.Analyzer) Option {
	return func(s *Service) {
		s.analyzers = analyzers
	}
}

// WithFormatter replaces the insight formatter.
func WithFormatter(f insight.Formatter) Option {
	return func(s *Service) {
		s.formatter = f
	}
}

// WithFallback replaces the fallback scorer.
func WithFallback(f *fallback.Scorer) Option {
	return func(s *Service) {
		s.fallback = f
	}
}

// WithStore enables best-effort persistence of completed analyses.
func WithStore(store Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMinContentLength overrides the usable-content threshold.
func WithMinContentLength(n int) Option {
	return func(s *Service) {
		s.minContent = n
	}
}

// WithIndustryOverrides pins the benchmark industry for specific
// domains instead of keyword detection. Keys are normalized domains,
// values are industry keys understood by the benchmark tables.
func WithIndustryOverrides(overrides map[string]string) Option {
	return func(s *Service) {
		s.industries = overrides
	}
}

// WithClock replaces the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service. Without options it runs with no providers, so
// every analysis takes the fallback path; callers normally supply at
// least WithProviders.
func New(opts ...Option) *Service {
	s := &Service{
		cache:      cache.New(),
		extractor:  extract.New(),
		analyzers:  scoring.Analyzers(),
		formatter:  insight.NewTacticsFormatter(),
		fallback:   fallback.NewScorer(),
		minContent: crawler.MinContentLength,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Analyze runs one analysis for a raw domain or URL string.
// The only error it returns is domain validation failure; crawl and
// persistence problems degrade the result instead of failing it.
func (s *Service) Analyze(ctx context.Context, raw string) (*model.AnalysisResult, error) {
	domain, err := model.NewDomain(raw)
	if err != nil {
		return nil, err
	}

	if cached := s.cache.Get(domain.String()); cached != nil {
		s.logger.Debug("serving cached analysis", "domain", domain.String())
		return cached, nil
	}

	result := s.analyze(ctx, domain)
	s.cache.Set(domain.String(), result)
	return result, nil
}

func (s *Service) analyze(ctx context.Context, domain model.Domain) *model.AnalysisResult {
	snap := s.fetchSnapshot(ctx, domain)
	if snap == nil {
		s.logger.Info("no usable content, using deterministic fallback", "domain", domain.String())
		result := s.fallback.Analyze(domain)
		s.persist(ctx, nil, result)
		return result
	}

	result := s.score(snap)
	s.persist(ctx, snap, result)
	return result
}

// fetchSnapshot walks the provider chain and extracts the first usable
// result. It returns nil when every tier fails.
func (s *Service) fetchSnapshot(ctx context.Context, domain model.Domain) *model.PageSnapshot {
	url := domain.URL()
	for _, provider := range s.providers {
		start := s.now()
		res, err := provider.Fetch(ctx, url)
		if err != nil {
			s.logger.Warn("provider failed",
				"provider", provider.Name(),
				"domain", domain.String(),
				"error", err,
			)
			continue
		}
		if len(res.Markdown) < s.minContent {
			s.logger.Warn("provider returned insufficient content",
				"provider", provider.Name(),
				"domain", domain.String(),
				"length", len(res.Markdown),
			)
			continue
		}

		s.logger.Debug("provider succeeded",
			"provider", provider.Name(),
			"domain", domain.String(),
			"length", len(res.Markdown),
		)
		return s.extractor.Extract(extract.Input{
			Domain:        domain,
			URL:           url,
			Content:       res.Markdown,
			Title:         res.Title,
			Description:   res.Description,
			StatusCode:    res.StatusCode,
			CrawlerUsed:   provider.Name(),
			CrawlDuration: s.now().Sub(start),
		})
	}
	return nil
}

// score runs every metric analyzer over the snapshot and assembles the
// aggregate result.
func (s *Service) score(snap *model.PageSnapshot) *model.AnalysisResult {
	industry := benchmark.DetectIndustry(snap.Domain, snap.Content)
	if pinned, ok := s.industries[snap.Domain]; ok && pinned != "" {
		industry = benchmark.Industry(pinned)
	}

	metrics := make(map[model.Metric]model.MetricScore, len(s.analyzers))
	scores := make([]int, 0, len(s.analyzers))
	for _, a := range s.analyzers {
		res := a.Analyze(snap)
		scores = append(scores, res.Score)
		metrics[a.Metric()] = model.MetricScore{
			Score:     res.Score,
			Reasoning: res.Reasoning,
			Insights:  s.formatter.Format(a.Metric(), res.Score, res.Signals),
			Benchmark: benchmark.Compare(a.Metric(), res.Score, industry),
		}
	}

	overall := model.MeanScore(scores)
	return &model.AnalysisResult{
		Domain:           snap.Domain,
		OverallScore:     overall,
		OverallBenchmark: benchmark.CompareOverall(overall, industry),
		ConfidenceLevel:  model.ConfidenceRealData,
		Metrics:          metrics,
		Summary:          insight.DefaultSummary(),
		Industry:         industry.String(),
		AnalysisDate:     s.now(),
		CrawlerUsed:      snap.CrawlerUsed,
		WordCount:        snap.WordCount,
		Title:            snap.Title,
	}
}

// persist saves the analysis when a store is configured. Persistence is
// best effort: failures are logged and never surfaced to the caller.
func (s *Service) persist(ctx context.Context, snap *model.PageSnapshot, result *model.AnalysisResult) {
	if s.store == nil {
		return
	}
	if err := s.store.SaveAnalysis(ctx, snap, result); err != nil {
		s.logger.Warn("failed to persist analysis", "domain", result.Domain, "error", err)
	}
}
