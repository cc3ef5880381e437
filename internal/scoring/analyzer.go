// Package scoring holds the per-dimension metric analyzers. Each analyzer
// is a pure function over a PageSnapshot: no shared state, no I/O, and a
// score is always produced even for empty input. Analyzers emit raw signal
// strings describing what they observed; turning signals into the final
// insight list is the insight formatter's job, not theirs.
package scoring

import "github.com/gso-insight/gsoscan/internal/model"

// maxScore caps every analyzer so no dimension reports a perfect result.
const maxScore = 95

// Result is one analyzer's raw output before insight formatting and
// benchmark attachment.
type Result struct {
	// Score is the dimension score within [0, 100].
	Score int

	// Reasoning is a short explanation of the score.
	Reasoning string

	// Signals are content-derived observations, empty for the
	// simplified analyzers that work from counts alone.
	Signals []string
}

// Analyzer scores one visibility dimension from a page snapshot.
type Analyzer interface {
	// Metric identifies the dimension this analyzer scores.
	Metric() model.Metric

	// Analyze scores the snapshot. It must be side-effect-free and
	// total: degenerate input yields a low score, never an error.
	Analyze(snap *model.PageSnapshot) Result
}

// Analyzers returns one analyzer per tracked metric, in canonical
// metric order.
func Analyzers() []Analyzer {
	return []Analyzer{
		&AIRecommendation{},
		&CompetitiveRanking{},
		&ContentRelevance{},
		&BrandMention{},
		&SearchCompatibility{},
		&WebsiteAuthority{},
		&Consistency{},
		&TopicCoverage{},
		&TrustSignals{},
		&Expertise{},
	}
}
