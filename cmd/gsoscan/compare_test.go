package main

import (
	"testing"
	"time"

	"github.com/gso-insight/gsoscan/internal/model"
)

// TestNewCompareCmd tests the compare command creation.
func TestNewCompareCmd(t *testing.T) {
	t.Parallel()

	cmd := NewCompareCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "compare [domain]" {
			t.Errorf("expected use 'compare [domain]', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has list flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("list")
		if flag == nil {
			t.Fatal("expected list flag")
		}
		if flag.Shorthand != "l" {
			t.Errorf("expected shorthand 'l', got %q", flag.Shorthand)
		}
	})

	t.Run("has list-domains flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("list-domains")
		if flag == nil {
			t.Fatal("expected list-domains flag")
		}
		if flag.Shorthand != "L" {
			t.Errorf("expected shorthand 'L', got %q", flag.Shorthand)
		}
	})

	t.Run("has json flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("json")
		if flag == nil {
			t.Fatal("expected json flag")
		}
		if flag.Shorthand != "j" {
			t.Errorf("expected shorthand 'j', got %q", flag.Shorthand)
		}
	})
}

// comparisonResult builds an analysis result with uniform metric scores
// for comparison tests.
func comparisonResult(overall int, metricScore int, date time.Time) *model.AnalysisResult {
	metrics := make(map[model.Metric]model.MetricScore, len(model.Metrics()))
	for _, metric := range model.Metrics() {
		metrics[metric] = model.MetricScore{Score: metricScore}
	}
	return &model.AnalysisResult{
		Domain:          "acme.example",
		OverallScore:    overall,
		ConfidenceLevel: model.ConfidenceRealData,
		Metrics:         metrics,
		AnalysisDate:    date,
		CrawlerUsed:     "local",
	}
}

// TestCompareAnalyses tests comparison construction.
func TestCompareAnalyses(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("improved", func(t *testing.T) {
		t.Parallel()
		previous := comparisonResult(50, 50, base)
		current := comparisonResult(60, 60, base.AddDate(0, 0, 7))

		comparison := compareAnalyses(previous, current)

		if comparison.Direction != scoreDirectionImproved {
			t.Errorf("expected direction %q, got %q", scoreDirectionImproved, comparison.Direction)
		}
		if comparison.OverallDelta != 10 {
			t.Errorf("expected overall delta 10, got %d", comparison.OverallDelta)
		}
		if len(comparison.MetricChanges) != len(model.Metrics()) {
			t.Fatalf("expected %d metric changes, got %d", len(model.Metrics()), len(comparison.MetricChanges))
		}
		for _, change := range comparison.MetricChanges {
			if change.Delta != 10 {
				t.Errorf("metric %s: expected delta 10, got %d", change.Metric, change.Delta)
			}
		}
	})

	t.Run("declined", func(t *testing.T) {
		t.Parallel()
		previous := comparisonResult(60, 60, base)
		current := comparisonResult(45, 45, base.AddDate(0, 0, 7))

		comparison := compareAnalyses(previous, current)

		if comparison.Direction != scoreDirectionDeclined {
			t.Errorf("expected direction %q, got %q", scoreDirectionDeclined, comparison.Direction)
		}
		if comparison.OverallDelta != -15 {
			t.Errorf("expected overall delta -15, got %d", comparison.OverallDelta)
		}
	})

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()
		previous := comparisonResult(55, 55, base)
		current := comparisonResult(55, 55, base.AddDate(0, 0, 7))

		comparison := compareAnalyses(previous, current)

		if comparison.Direction != scoreDirectionUnchanged {
			t.Errorf("expected direction %q, got %q", scoreDirectionUnchanged, comparison.Direction)
		}
		if comparison.OverallDelta != 0 {
			t.Errorf("expected overall delta 0, got %d", comparison.OverallDelta)
		}
	})

	t.Run("metric changes preserve canonical order", func(t *testing.T) {
		t.Parallel()
		previous := comparisonResult(50, 50, base)
		current := comparisonResult(60, 60, base.AddDate(0, 0, 7))

		comparison := compareAnalyses(previous, current)

		for i, metric := range model.Metrics() {
			if comparison.MetricChanges[i].Metric != metric {
				t.Errorf("position %d: expected metric %s, got %s", i, metric, comparison.MetricChanges[i].Metric)
			}
		}
	})

	t.Run("captures analysis metadata", func(t *testing.T) {
		t.Parallel()
		previous := comparisonResult(50, 50, base)
		previous.ConfidenceLevel = model.ConfidenceFallback
		previous.CrawlerUsed = "fallback"
		current := comparisonResult(60, 60, base.AddDate(0, 0, 7))

		comparison := compareAnalyses(previous, current)

		if comparison.PreviousAnalysis.ConfidenceLevel != model.ConfidenceFallback {
			t.Errorf("expected previous confidence %d, got %d",
				model.ConfidenceFallback, comparison.PreviousAnalysis.ConfidenceLevel)
		}
		if comparison.PreviousAnalysis.CrawlerUsed != "fallback" {
			t.Errorf("expected previous crawler 'fallback', got %q", comparison.PreviousAnalysis.CrawlerUsed)
		}
		if comparison.CurrentAnalysis.CrawlerUsed != "local" {
			t.Errorf("expected current crawler 'local', got %q", comparison.CurrentAnalysis.CrawlerUsed)
		}
		if !comparison.CurrentAnalysis.AnalysisDate.After(comparison.PreviousAnalysis.AnalysisDate) {
			t.Error("expected current analysis to be newer than previous")
		}
	})
}
