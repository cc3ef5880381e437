// Package insight selects the human-readable insight strings shown for each
// metric, preferring analyzer-derived signals and falling back to a static
// pool of proven GSO tactics. It also owns the fixed summary pools
// (critical issues, quick wins, investment recommendations).
package insight

import "github.com/gso-insight/gsoscan/internal/model"

// tactics maps each metric to its proven tactic pool, in priority order.
// These strings are presentation copy shared with the product UI; do not
// reword them without coordinating a copy change.
var tactics = map[model.Metric][]string{
	model.MetricAIRecommendationRate: {
		"Rely on spoken search queries - use naturally asked questions as H2 headings",
		"Monitor your brand with AI visibility tools like Peec AI regularly",
		"Write directly and concisely - facts, short and clear without metaphors",
		"Clear heading structure: H1=Topic, H2=Questions, H3=Sub-points for AI parsing",
	},
	model.MetricCompetitiveRanking: {
		"Show real authority with expert profiles, case studies, and industry seals",
		"Build links to strong third-party sources to establish credibility",
		"Use clear heading structure so AI immediately understands your expertise",
		"Monitor competitors' AI visibility and adapt your strategy accordingly",
	},
	model.MetricContentRelevance: {
		"Write directly and concisely - no unnecessary continuous text or metaphors",
		"Offer summaries with TL;DR or Key Takeaways at the beginning",
		"Use spoken search queries instead of classic keywords for ChatGPT optimization",
		"Create short intermediate conclusions for longer texts to help AI extraction",
	},
	model.MetricBrandMentionQuality: {
		"Monitor your brand for AI visibility with tools like Peec AI",
		"Customize 'About Us,' FAQ, and profiles anywhere for consistent messaging",
		"Use clear heading structure to help AI understand your brand positioning",
		"Show real reviews from Google and industry portals for brand credibility",
	},
	model.MetricSearchCompatibility: {
		"Use 'More Questions' section from Google as H2 headings with brief answers",
		"Rely on spoken search queries over traditional keyword optimization",
		"Create clear heading structure: H1=Topic, H2=Questions, H3=Sub-points",
		"Offer summaries and key takeaways for faster AI information extraction",
	},
	model.MetricWebsiteAuthority: {
		"Show real authority: expert profiles, case studies, seals, third-party links",
		"Display real reviews from Google, industry portals, and user Q&A",
		"Build trust with machines through verified credentials and certifications",
		"Create comprehensive FAQ sections that answer user questions directly",
	},
	model.MetricConsistencyScore: {
		"Maintain consistent messaging across all pages and profiles",
		"Use clear heading structure throughout your site for AI parsing consistency",
		"Ensure brand voice remains direct and concise across all content",
		"Regularly monitor and update outdated content for accuracy",
	},
	model.MetricTopicCoverage: {
		"Answer naturally asked questions found in Google's 'More Questions' section",
		"Create comprehensive guides with TL;DR summaries for better coverage",
		"Use spoken search queries to cover conversational topic variations",
		"Offer short intermediate conclusions to break down complex topics",
	},
	model.MetricTrustSignals: {
		"Show real reviews from Google reviews and industry portals",
		"Display expert profiles, case studies, and industry certifications",
		"Add customer testimonials and answers to user questions",
		"Include links to authoritative third-party sources and partnerships",
	},
	model.MetricExpertiseRating: {
		"Create detailed expert profiles with credentials and experience",
		"Showcase case studies and real customer success stories",
		"Display industry certifications, awards, and professional memberships",
		"Link to authoritative sources and demonstrate thought leadership",
	},
}

// criticalIssuesPool holds the critical issue summaries in fixed order.
// Every analysis shows the first entries of these pools regardless of the
// analyzed page; the copy is deliberately not personalized.
var criticalIssuesPool = []string{
	"Missing clear H1-H2-H3 heading structure for AI content parsing",
	"No FAQ section answering common customer questions",
	"Lack of expert profiles or authority signals for credibility",
	"Missing TL;DR summaries for complex content sections",
	"No customer reviews or testimonials visible to AI systems",
	"Content uses metaphors instead of direct, factual language",
	"Missing 'About Us' section with clear value proposition",
	"No contact information easily accessible for trust signals",
	"Outdated content that doesn't reflect current offerings",
	"Lack of case studies or social proof elements",
}

var quickWinsPool = []string{
	"Add H2 headings with naturally asked questions from Google's 'More Questions'",
	"Create a brief TL;DR summary at the top of your main pages",
	"Update 'About Us' page with clear, direct language about your expertise",
	"Add customer testimonials or Google reviews to homepage",
	"Create an FAQ section answering top 5 customer questions",
	"Add expert team profiles with credentials and experience",
	"Include contact information (email/phone) in header or footer",
	"Rewrite product descriptions using direct, factual language",
	"Add brief case studies or customer success examples",
	"Create clear service/product summaries without industry jargon",
}

var investmentRecommendationsPool = []string{
	"Comprehensive content audit using spoken search query optimization",
	"Professional brand monitoring setup with AI visibility tools",
	"Authority building campaign: expert profiles, case studies, certifications",
	"Review acquisition strategy across Google and industry platforms",
	"Content restructuring with proper H1-H2-H3 hierarchy throughout site",
	"FAQ expansion covering all customer journey touchpoints",
	"Trust signal implementation: seals, certifications, third-party links",
	"Comprehensive about/team pages with expertise demonstration",
	"Customer success story development and case study creation",
	"Regular AI visibility monitoring and optimization program",
}

// CriticalIssues returns the first count critical issues from the pool.
func CriticalIssues(count int) []string {
	return poolSlice(criticalIssuesPool, count)
}

// QuickWins returns the first count quick wins from the pool.
func QuickWins(count int) []string {
	return poolSlice(quickWinsPool, count)
}

// InvestmentRecommendations returns the first count recommendations.
func InvestmentRecommendations(count int) []string {
	return poolSlice(investmentRecommendationsPool, count)
}

// DefaultSummary builds the standard 3/3/3 summary every analysis carries.
func DefaultSummary() model.Summary {
	return model.Summary{
		CriticalIssues:            CriticalIssues(3),
		QuickWins:                 QuickWins(3),
		InvestmentRecommendations: InvestmentRecommendations(3),
	}
}

func poolSlice(pool []string, count int) []string {
	if count < 0 {
		count = 0
	}
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]string, count)
	copy(out, pool[:count])
	return out
}
