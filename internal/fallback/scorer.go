package fallback

import (
	"fmt"
	"time"

	"github.com/gso-insight/gsoscan/internal/benchmark"
	"github.com/gso-insight/gsoscan/internal/insight"
	"github.com/gso-insight/gsoscan/internal/model"
)

// CrawlerName is recorded in AnalysisResult.CrawlerUsed for fallback runs.
const CrawlerName = "fallback"

// metricRange fixes the score window a metric's hash is folded into.
type metricRange struct {
	metric model.Metric
	seed   string
	min    int
	max    int

	// legacy marks the six original dimensions whose mean forms the
	// overall score. The four later additions are scored and reported
	// but kept out of the mean so historical overall scores for a
	// given domain never shift.
	legacy bool
}

// ranges lists all ten dimensions in canonical order. Seeds, windows, and
// the legacy set are contractual: changing any of them changes every
// fallback score ever shown for a domain.
var ranges = []metricRange{
	{metric: model.MetricAIRecommendationRate, seed: "ai", min: 25, max: 75, legacy: true},
	{metric: model.MetricCompetitiveRanking, seed: "competitive", min: 20, max: 80, legacy: true},
	{metric: model.MetricContentRelevance, seed: "content", min: 30, max: 85, legacy: true},
	{metric: model.MetricBrandMentionQuality, seed: "brand", min: 20, max: 75, legacy: true},
	{metric: model.MetricSearchCompatibility, seed: "search", min: 25, max: 80, legacy: true},
	{metric: model.MetricWebsiteAuthority, seed: "authority", min: 15, max: 70, legacy: true},
	{metric: model.MetricConsistencyScore, seed: "consistency", min: 30, max: 80},
	{metric: model.MetricTopicCoverage, seed: "topic", min: 25, max: 80},
	{metric: model.MetricTrustSignals, seed: "trust", min: 20, max: 75},
	{metric: model.MetricExpertiseRating, seed: "expertise", min: 25, max: 80},
}

// Scorer produces deterministic analysis results without page content.
type Scorer struct {
	formatter insight.Formatter
	now       func() time.Time
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithFormatter replaces the insight formatter.
func WithFormatter(f insight.Formatter) Option {
	return func(s *Scorer) {
		s.formatter = f
	}
}

// WithClock replaces the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		s.now = now
	}
}

// NewScorer creates a fallback scorer with the standard tactic formatter.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		formatter: insight.NewTacticsFormatter(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze builds a complete, repeatable result for the normalized domain.
// Calling it twice for the same domain yields identical scores.
func (s *Scorer) Analyze(domain model.Domain) *model.AnalysisResult {
	host := domain.String()
	industry := benchmark.DetectIndustry(host, "")

	metrics := make(map[model.Metric]model.MetricScore, len(ranges))
	legacyScores := make([]int, 0, 6)
	for _, r := range ranges {
		score := Score(host, r.seed, r.min, r.max)
		if r.legacy {
			legacyScores = append(legacyScores, score)
		}

		reasoning := fmt.Sprintf("Deterministic analysis of %s for %s", host, r.metric.DisplayName())
		metrics[r.metric] = model.MetricScore{
			Score:     score,
			Reasoning: reasoning,
			Insights:  s.formatter.Format(r.metric, score, []string{reasoning}),
			Benchmark: benchmark.Compare(r.metric, score, industry),
		}
	}

	overall := model.MeanScore(legacyScores)
	return &model.AnalysisResult{
		Domain:           host,
		OverallScore:     overall,
		OverallBenchmark: benchmark.CompareOverall(overall, industry),
		ConfidenceLevel:  model.ConfidenceFallback,
		Metrics:          metrics,
		Summary:          insight.DefaultSummary(),
		Industry:         industry.String(),
		AnalysisDate:     s.now(),
		CrawlerUsed:      CrawlerName,
	}
}
