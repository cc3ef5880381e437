package insight

import (
	"strings"

	"github.com/gso-insight/gsoscan/internal/model"
)

// DeterministicMarker appears in signals produced by the fallback scorer.
// Signals carrying it are placeholders, not real content observations, so
// the formatter ignores them and serves tactics only.
const DeterministicMarker = "Deterministic analysis"

// Formatter produces the insight strings shown for one metric.
// It is injected into the assembler so analyzers stay free of
// presentation concerns.
type Formatter interface {
	// Format returns 2-4 insight strings for the metric, combining
	// analyzer signals with the static tactic pool.
	Format(metric model.Metric, score int, signals []string) []string
}

// TacticsFormatter is the standard Formatter backed by the static pools.
//
// Design decision: Selection lives here rather than in each analyzer
// because the mixing rules (signal preference, topic deduplication,
// score-banded pool sizes) are shared across all ten metrics and are
// presentation policy, not scoring logic.
type TacticsFormatter struct{}

// NewTacticsFormatter creates the standard formatter.
func NewTacticsFormatter() *TacticsFormatter {
	return &TacticsFormatter{}
}

// tacticTopics maps a substring identifying a tactic's topic to the
// substrings that indicate an analyzer signal already covers that topic.
// A matching tactic is skipped so the final list does not repeat itself
// or contradict a positive observation.
var tacticTopics = []struct {
	tactic  string
	covered []string
}{
	{tactic: "heading structure", covered: []string{"heading", "well-structured"}},
	{tactic: "reviews", covered: []string{"testimonial", "review"}},
	{tactic: "testimonials", covered: []string{"testimonial", "review"}},
	{tactic: "contact information", covered: []string{"contact"}},
	{tactic: "certifications", covered: []string{"certification", "trust badge"}},
	{tactic: "summaries", covered: []string{"words", "content length"}},
}

// Format implements Formatter.
//
// When real signals exist (none carrying the deterministic marker), up to
// two are kept and the list is filled to three from the tactic pool,
// skipping tactics whose topic a kept signal already covers. Without real
// signals the pool alone supplies 2, 3, or 4 tactics depending on score:
// lower scores warrant more remediation guidance.
func (f *TacticsFormatter) Format(metric model.Metric, score int, signals []string) []string {
	pool := tactics[metric]

	if hasRealSignals(signals) {
		out := make([]string, 0, 3)
		for _, s := range signals {
			if len(out) == 2 {
				break
			}
			out = append(out, s)
		}
		for _, tactic := range pool {
			if len(out) == 3 {
				break
			}
			if topicCovered(tactic, out) {
				continue
			}
			out = append(out, tactic)
		}
		return out
	}

	switch {
	case score >= 80:
		return poolSlice(pool, 2)
	case score >= 60:
		return poolSlice(pool, 3)
	default:
		return poolSlice(pool, 4)
	}
}

func hasRealSignals(signals []string) bool {
	if len(signals) == 0 {
		return false
	}
	for _, s := range signals {
		if strings.Contains(s, DeterministicMarker) {
			return false
		}
	}
	return true
}

func topicCovered(tactic string, chosen []string) bool {
	tacticLower := strings.ToLower(tactic)
	for _, topic := range tacticTopics {
		if !strings.Contains(tacticLower, topic.tactic) {
			continue
		}
		for _, insight := range chosen {
			insightLower := strings.ToLower(insight)
			for _, kw := range topic.covered {
				if strings.Contains(insightLower, kw) {
					return true
				}
			}
		}
	}
	return false
}
