package scoring

import (
	"fmt"

	"github.com/gso-insight/gsoscan/internal/model"
)

// ContentRelevance scores content depth and document structure: word
// count bands, title and description presence, heading structure, and
// paragraph organization.
type ContentRelevance struct{}

// Metric implements Analyzer.
func (a *ContentRelevance) Metric() model.Metric {
	return model.MetricContentRelevance
}

// Analyze implements Analyzer.
func (a *ContentRelevance) Analyze(snap *model.PageSnapshot) Result {
	score := 10
	var signals []string

	switch {
	case snap.WordCount > 2000:
		score += 25
		signals = append(signals, "Comprehensive content with 2000+ words")
	case snap.WordCount > 1000:
		score += 20
		signals = append(signals, "Good content length with 1000+ words")
	case snap.WordCount > 500:
		score += 15
		signals = append(signals, "Moderate content length")
	default:
		signals = append(signals, "Content length is below recommended 500+ words")
	}

	if snap.HasTitle() {
		score += 15
		signals = append(signals, "Page has proper title tag")
	} else {
		signals = append(signals, "Missing or empty title tag")
	}

	if snap.HasDescription() {
		score += 15
		signals = append(signals, "Page has meta description")
	} else {
		signals = append(signals, "Missing meta description")
	}

	headings := snap.HeadingCount()
	switch {
	case headings > 5:
		score += 15
		signals = append(signals, "Well-structured content with multiple headings")
	case headings > 0:
		score += 10
		signals = append(signals, "Basic heading structure present")
	default:
		signals = append(signals, "No heading structure found - add H1, H2, H3 tags")
	}

	if snap.ParagraphCount > 5 {
		score += 10
		signals = append(signals, "Content well-organized in paragraphs")
	}

	return Result{
		Score:     model.ClampScore(score, 0, maxScore),
		Reasoning: fmt.Sprintf("Content relevance scored based on %d words, %d headings, and structural elements.", snap.WordCount, headings),
		Signals:   signals,
	}
}
