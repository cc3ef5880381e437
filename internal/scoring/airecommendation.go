package scoring

import (
	"fmt"
	"strings"

	"github.com/gso-insight/gsoscan/internal/model"
)

// aiKeywords are matched case-insensitively as substrings, so short
// entries like "ai" also hit inside longer words. That looseness is part
// of the scoring contract; tightening it would shift existing scores.
var aiKeywords = []string{
	"artificial intelligence", "machine learning", "ai", "ml", "automation",
	"smart", "intelligent", "algorithm", "data science", "neural", "deep learning",
}

var technicalTerms = []string{"api", "algorithm", "model", "training", "prediction", "classification"}

// AIRecommendation scores how likely AI assistants are to surface the
// page, from AI/automation keyword density and technical depth.
type AIRecommendation struct{}

// Metric implements Analyzer.
func (a *AIRecommendation) Metric() model.Metric {
	return model.MetricAIRecommendationRate
}

// Analyze implements Analyzer. Base 20; each keyword adds 3 per
// occurrence capped at 15; an AI-focused title adds 15; more than three
// technical terms add 10.
func (a *AIRecommendation) Analyze(snap *model.PageSnapshot) Result {
	lower := strings.ToLower(snap.Content)
	lowerTitle := strings.ToLower(snap.Title)

	score := 20
	var found []string
	var signals []string

	for _, kw := range aiKeywords {
		n := strings.Count(lower, kw)
		if n == 0 {
			continue
		}
		found = append(found, kw)
		score += min(15, n*3)
	}

	for _, kw := range aiKeywords {
		if lowerTitle != "" && strings.Contains(lowerTitle, kw) {
			score += 15
			signals = append(signals, "Website title indicates AI focus")
			break
		}
	}

	technical := 0
	for _, term := range technicalTerms {
		if strings.Contains(lower, term) {
			technical++
		}
	}
	if technical > 3 {
		score += 10
		signals = append(signals, "Strong technical AI terminology usage")
	}

	score = model.ClampScore(score, 0, maxScore)

	if len(found) == 0 {
		signals = append(signals, "No AI-related keywords found - consider adding AI/automation content")
	} else {
		sample := found
		if len(sample) > 3 {
			sample = sample[:3]
		}
		signals = append(signals, fmt.Sprintf("Found %d AI-related terms: %s", len(found), strings.Join(sample, ", ")))
	}

	return Result{
		Score:     score,
		Reasoning: fmt.Sprintf("AI recommendation rate based on %d AI keywords found and technical depth analysis.", len(found)),
		Signals:   signals,
	}
}
