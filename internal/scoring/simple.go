package scoring

import "github.com/gso-insight/gsoscan/internal/model"

// The analyzers in this file use simplified count-based formulas rather
// than full content analysis. They are approximations a later model can
// replace; their scores are deterministic so repeated runs agree. None
// of them emit signals, so their insights come from the tactic pools.

// CompetitiveRanking estimates market positioning from content depth.
//
// Design decision: the score is derived from word and heading counts
// folded into the 60-79 window instead of sampling randomly inside it.
// Two runs over the same page must produce the same result.
type CompetitiveRanking struct{}

// Metric implements Analyzer.
func (a *CompetitiveRanking) Metric() model.Metric {
	return model.MetricCompetitiveRanking
}

// Analyze implements Analyzer.
func (a *CompetitiveRanking) Analyze(snap *model.PageSnapshot) Result {
	depth := snap.WordCount/150 + snap.HeadingCount()
	return Result{
		Score:     60 + min(19, depth),
		Reasoning: "Competitive ranking based on content depth and market positioning",
	}
}

// BrandMention scores brand visibility from social presence.
type BrandMention struct{}

// Metric implements Analyzer.
func (a *BrandMention) Metric() model.Metric {
	return model.MetricBrandMentionQuality
}

// Analyze implements Analyzer.
func (a *BrandMention) Analyze(snap *model.PageSnapshot) Result {
	score := 45
	if len(snap.SocialLinks) > 0 {
		score = 75
	}
	return Result{
		Score:     score,
		Reasoning: "Brand mention quality based on social presence and content consistency",
	}
}

// SearchCompatibility scores basic SEO elements.
type SearchCompatibility struct{}

// Metric implements Analyzer.
func (a *SearchCompatibility) Metric() model.Metric {
	return model.MetricSearchCompatibility
}

// Analyze implements Analyzer.
func (a *SearchCompatibility) Analyze(snap *model.PageSnapshot) Result {
	score := 25
	if snap.HasTitle() {
		score += 20
	}
	if snap.HasDescription() {
		score += 20
	}
	if snap.HeadingCount() > 0 {
		score += 25
	}
	return Result{
		Score:     score,
		Reasoning: "Search compatibility based on SEO elements and structure",
	}
}

// WebsiteAuthority scores perceived authority from content depth,
// linking, and trust factors. It folds in the trust-signals score, so it
// recomputes that analyzer on the same snapshot rather than sharing
// state with it.
type WebsiteAuthority struct {
	trust TrustSignals
}

// Metric implements Analyzer.
func (a *WebsiteAuthority) Metric() model.Metric {
	return model.MetricWebsiteAuthority
}

// Analyze implements Analyzer.
func (a *WebsiteAuthority) Analyze(snap *model.PageSnapshot) Result {
	score := 40
	if snap.WordCount > 1000 {
		score += 20
	} else {
		score += 10
	}
	if snap.LinkCount > 5 {
		score += 15
	} else {
		score += 5
	}
	if a.trust.Analyze(snap).Score > 70 {
		score += 15
	}
	return Result{
		Score:     min(85, score),
		Reasoning: "Website authority based on content depth, linking, and trust factors",
	}
}

// Consistency scores structural and messaging consistency.
type Consistency struct{}

// Metric implements Analyzer.
func (a *Consistency) Metric() model.Metric {
	return model.MetricConsistencyScore
}

// Analyze implements Analyzer.
func (a *Consistency) Analyze(snap *model.PageSnapshot) Result {
	score := 50
	if snap.HeadingCount() > 3 {
		score += 20
	} else {
		score += 10
	}
	if len(snap.ServicesListed) > 0 {
		score += 15
	}
	return Result{
		Score:     min(90, score),
		Reasoning: "Consistency score based on content structure and messaging",
	}
}

// TopicCoverage scores content breadth.
type TopicCoverage struct{}

// Metric implements Analyzer.
func (a *TopicCoverage) Metric() model.Metric {
	return model.MetricTopicCoverage
}

// Analyze implements Analyzer.
func (a *TopicCoverage) Analyze(snap *model.PageSnapshot) Result {
	score := 43
	if snap.WordCount > 1500 {
		score += 25
	} else {
		score += 15
	}
	if snap.HeadingCount() > 5 {
		score += 20
	} else {
		score += 10
	}
	return Result{
		Score:     min(88, score),
		Reasoning: "Topic coverage based on content breadth and depth",
	}
}

// Expertise scores credentials and social proof.
type Expertise struct{}

// Metric implements Analyzer.
func (a *Expertise) Metric() model.Metric {
	return model.MetricExpertiseRating
}

// Analyze implements Analyzer.
func (a *Expertise) Analyze(snap *model.PageSnapshot) Result {
	score := 57 + len(snap.Certifications)*10
	if snap.TestimonialsCount > 0 {
		score += 15
	}
	return Result{
		Score:     min(92, score),
		Reasoning: "Expertise rating based on credentials and social proof",
	}
}
