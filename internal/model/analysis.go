package model

import (
	"math"
	"time"
)

// Confidence levels reported with each analysis so consumers can tell
// which tier produced the result.
const (
	// ConfidenceRealData is reported when scores were derived from
	// actually crawled content.
	ConfidenceRealData = 90

	// ConfidenceFallback is reported when scores came from the
	// deterministic fallback because no content could be obtained.
	ConfidenceFallback = 50
)

// BenchmarkComparison contextualizes a score against industry averages.
type BenchmarkComparison struct {
	// IndustryAverage is the average score for the detected industry.
	IndustryAverage int `json:"industryAverage"`

	// OverallAverage is the cross-industry average.
	OverallAverage int `json:"overallAverage"`

	// Status classifies the score against the industry average.
	Status Status `json:"status"`

	// Comparison is a human-readable comparison sentence.
	Comparison string `json:"comparison"`

	// Industry is the display name of the detected industry.
	Industry string `json:"industry"`
}

// MetricScore is the result for a single visibility dimension.
type MetricScore struct {
	// Score is the dimension score, always within [0, 100].
	// Individual analyzers clamp to roughly 8-95 to avoid extremes.
	Score int `json:"score"`

	// Reasoning is a short explanation of how the score was derived.
	Reasoning string `json:"reasoning"`

	// Insights holds 2-4 human-readable insight strings.
	Insights []string `json:"insights"`

	// Benchmark is the industry comparison, nil when unavailable.
	Benchmark *BenchmarkComparison `json:"benchmark,omitempty"`
}

// Summary holds the fixed recommendation lists attached to every analysis.
// These are drawn from static pools and are intentionally not personalized
// to the analyzed page.
type Summary struct {
	CriticalIssues            []string `json:"criticalIssues"`
	QuickWins                 []string `json:"quickWins"`
	InvestmentRecommendations []string `json:"investmentRecommendations"`
}

// AnalysisResult is the aggregate outcome of one analysis run.
// It is constructed fresh per request, cached by normalized domain,
// and never mutated after construction.
type AnalysisResult struct {
	// Domain is the normalized domain that was analyzed.
	Domain string `json:"domain"`

	// OverallScore is the rounded arithmetic mean of the ten metric
	// scores (real-data path) or of the six legacy metrics (fallback).
	OverallScore int `json:"overallScore"`

	// OverallBenchmark contextualizes the overall score, nil when
	// no benchmark could be computed.
	OverallBenchmark *BenchmarkComparison `json:"overallBenchmark,omitempty"`

	// ConfidenceLevel is ConfidenceRealData or ConfidenceFallback.
	ConfidenceLevel int `json:"confidenceLevel"`

	// Metrics maps each of the ten dimensions to its score.
	Metrics map[Metric]MetricScore `json:"metrics"`

	// Summary holds the fixed issue/win/investment lists.
	Summary Summary `json:"summary"`

	// Industry is the detected industry key (e.g. "technology", "general").
	Industry string `json:"industry"`

	// AnalysisDate is when the analysis was computed.
	AnalysisDate time.Time `json:"analysisDate"`

	// CrawlerUsed names the content source: the crawl backend for
	// real-data analyses, or "fallback" for deterministic scoring.
	CrawlerUsed string `json:"crawlerUsed"`

	// WordCount is the analyzed page's word count, zero on the fallback path.
	WordCount int `json:"wordCount"`

	// Title is the analyzed page's title, empty on the fallback path.
	Title string `json:"title,omitempty"`
}

// MeanScore returns the rounded arithmetic mean of the given scores.
// Rounding is half-up to match the scoring contract.
func MeanScore(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

// ClampScore bounds a score to [min, max].
// Analyzers use this to avoid reporting extreme values.
func ClampScore(score, min, max int) int {
	if score < min {
		return min
	}
	if score > max {
		return max
	}
	return score
}
