package model

// Metric identifies one GSO visibility dimension.
// The string values double as JSON keys and database column prefixes,
// so they must remain stable across releases.
type Metric string

// The ten tracked visibility dimensions.
const (
	MetricAIRecommendationRate Metric = "aiRecommendationRate"
	MetricCompetitiveRanking   Metric = "competitiveRanking"
	MetricContentRelevance     Metric = "contentRelevance"
	MetricBrandMentionQuality  Metric = "brandMentionQuality"
	MetricSearchCompatibility  Metric = "searchCompatibility"
	MetricWebsiteAuthority     Metric = "websiteAuthority"
	MetricConsistencyScore     Metric = "consistencyScore"
	MetricTopicCoverage        Metric = "topicCoverage"
	MetricTrustSignals         Metric = "trustSignals"
	MetricExpertiseRating      Metric = "expertiseRating"
)

// Metrics returns all tracked metrics in canonical presentation order.
// The order matters for report output and for the overall-score mean,
// which must cover exactly these ten dimensions.
func Metrics() []Metric {
	return []Metric{
		MetricAIRecommendationRate,
		MetricCompetitiveRanking,
		MetricContentRelevance,
		MetricBrandMentionQuality,
		MetricSearchCompatibility,
		MetricWebsiteAuthority,
		MetricConsistencyScore,
		MetricTopicCoverage,
		MetricTrustSignals,
		MetricExpertiseRating,
	}
}

// String returns the metric's stable string key.
func (m Metric) String() string {
	return string(m)
}

// IsValid reports whether the metric is one of the ten tracked dimensions.
func (m Metric) IsValid() bool {
	for _, known := range Metrics() {
		if m == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for report output.
func (m Metric) DisplayName() string {
	switch m {
	case MetricAIRecommendationRate:
		return "AI Recommendation Rate"
	case MetricCompetitiveRanking:
		return "Competitive Ranking"
	case MetricContentRelevance:
		return "Content Relevance"
	case MetricBrandMentionQuality:
		return "Brand Mention Quality"
	case MetricSearchCompatibility:
		return "Search Compatibility"
	case MetricWebsiteAuthority:
		return "Website Authority"
	case MetricConsistencyScore:
		return "Consistency Score"
	case MetricTopicCoverage:
		return "Topic Coverage"
	case MetricTrustSignals:
		return "Trust Signals"
	case MetricExpertiseRating:
		return "Expertise Rating"
	default:
		return string(m)
	}
}

// Status classifies a score against an industry benchmark average.
type Status string

// Benchmark status values, from best to worst.
const (
	StatusExcellent    Status = "excellent"
	StatusAboveAverage Status = "above_average"
	StatusAverage      Status = "average"
	StatusBelowAverage Status = "below_average"
	StatusPoor         Status = "poor"
)

// String returns the status's stable string value.
func (s Status) String() string {
	return string(s)
}
