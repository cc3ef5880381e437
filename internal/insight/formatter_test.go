package insight

import (
	"strings"
	"testing"

	"github.com/gso-insight/gsoscan/internal/model"
)

func TestTacticsFormatter_Format(t *testing.T) {
	t.Parallel()

	f := NewTacticsFormatter()

	t.Run("real signals keep first two and fill to three", func(t *testing.T) {
		t.Parallel()
		signals := []string{
			"Email contact information available",
			"Pricing information is transparent",
			"Phone contact information available",
		}
		got := f.Format(model.MetricTrustSignals, 70, signals)
		if len(got) != 3 {
			t.Fatalf("expected 3 insights, got %d: %v", len(got), got)
		}
		if got[0] != signals[0] || got[1] != signals[1] {
			t.Errorf("expected first two signals retained, got %v", got)
		}
	})

	t.Run("tactics whose topic is covered are skipped", func(t *testing.T) {
		t.Parallel()
		signals := []string{"Multiple customer testimonials found"}
		got := f.Format(model.MetricTrustSignals, 70, signals)
		for _, ins := range got[1:] {
			if strings.Contains(strings.ToLower(ins), "testimonials") {
				t.Errorf("expected testimonial tactic to be skipped, got %v", got)
			}
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 insights, got %d", len(got))
		}
	})

	t.Run("deterministic marker forces pool-only selection", func(t *testing.T) {
		t.Parallel()
		signals := []string{"Deterministic analysis based on domain characteristics"}
		got := f.Format(model.MetricContentRelevance, 50, signals)
		want := tactics[model.MetricContentRelevance][:4]
		if len(got) != 4 {
			t.Fatalf("expected 4 tactics for low score, got %d", len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("expected tactic %q at %d, got %q", want[i], i, got[i])
			}
		}
	})

	t.Run("score bands select 2, 3, or 4 tactics", func(t *testing.T) {
		t.Parallel()
		if got := f.Format(model.MetricTopicCoverage, 85, nil); len(got) != 2 {
			t.Errorf("expected 2 tactics for score 85, got %d", len(got))
		}
		if got := f.Format(model.MetricTopicCoverage, 60, nil); len(got) != 3 {
			t.Errorf("expected 3 tactics for score 60, got %d", len(got))
		}
		if got := f.Format(model.MetricTopicCoverage, 59, nil); len(got) != 4 {
			t.Errorf("expected 4 tactics for score 59, got %d", len(got))
		}
	})
}

func TestSummaryPools(t *testing.T) {
	t.Parallel()

	t.Run("fixed slices in pool order", func(t *testing.T) {
		t.Parallel()
		issues := CriticalIssues(3)
		if len(issues) != 3 {
			t.Fatalf("expected 3 issues, got %d", len(issues))
		}
		if issues[0] != "Missing clear H1-H2-H3 heading structure for AI content parsing" {
			t.Errorf("unexpected first issue: %q", issues[0])
		}
		wins := QuickWins(3)
		if wins[1] != "Create a brief TL;DR summary at the top of your main pages" {
			t.Errorf("unexpected second quick win: %q", wins[1])
		}
		recs := InvestmentRecommendations(3)
		if len(recs) != 3 {
			t.Fatalf("expected 3 recommendations, got %d", len(recs))
		}
	})

	t.Run("count is bounded by pool size", func(t *testing.T) {
		t.Parallel()
		if got := CriticalIssues(100); len(got) != 10 {
			t.Errorf("expected full pool of 10, got %d", len(got))
		}
		if got := QuickWins(-1); len(got) != 0 {
			t.Errorf("expected empty slice, got %d", len(got))
		}
	})

	t.Run("identical summary for every analysis", func(t *testing.T) {
		t.Parallel()
		a, b := DefaultSummary(), DefaultSummary()
		for i := range a.CriticalIssues {
			if a.CriticalIssues[i] != b.CriticalIssues[i] {
				t.Fatal("summary must be identical across calls")
			}
		}
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		t.Parallel()
		first := QuickWins(3)
		first[0] = "mutated"
		if QuickWins(3)[0] == "mutated" {
			t.Error("pool must not be affected by caller mutation")
		}
	})
}
