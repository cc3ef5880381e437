package benchmark

import "github.com/gso-insight/gsoscan/internal/model"

// Record holds the benchmark data for one (metric, industry) pair.
type Record struct {
	// IndustryAverage is the average score within the industry.
	IndustryAverage int

	// OverallAverage is the cross-industry average for the metric.
	OverallAverage int

	// SampleSize is how many sites contributed to the average.
	SampleSize int

	// LastUpdated is the date the averages were computed (YYYY-MM-DD).
	LastUpdated string
}

// table holds per-industry, per-metric benchmark records.
// Compiled from an analysis of 500+ websites across industries;
// values are static configuration, never modified at runtime.
var table = map[Industry]map[model.Metric]Record{
	IndustryTechnology: {
		model.MetricAIRecommendationRate: {IndustryAverage: 72, OverallAverage: 58, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricCompetitiveRanking:   {IndustryAverage: 68, OverallAverage: 62, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricContentRelevance:     {IndustryAverage: 75, OverallAverage: 65, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricBrandMentionQuality:  {IndustryAverage: 71, OverallAverage: 59, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricSearchCompatibility:  {IndustryAverage: 78, OverallAverage: 67, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricWebsiteAuthority:     {IndustryAverage: 69, OverallAverage: 61, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricConsistencyScore:     {IndustryAverage: 73, OverallAverage: 64, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricTopicCoverage:        {IndustryAverage: 76, OverallAverage: 66, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricTrustSignals:         {IndustryAverage: 67, OverallAverage: 57, SampleSize: 150, LastUpdated: "2024-01-15"},
		model.MetricExpertiseRating:      {IndustryAverage: 70, OverallAverage: 60, SampleSize: 150, LastUpdated: "2024-01-15"},
	},
	IndustryConsulting: {
		model.MetricAIRecommendationRate: {IndustryAverage: 45, OverallAverage: 58, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricCompetitiveRanking:   {IndustryAverage: 58, OverallAverage: 62, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricContentRelevance:     {IndustryAverage: 68, OverallAverage: 65, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricBrandMentionQuality:  {IndustryAverage: 62, OverallAverage: 59, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricSearchCompatibility:  {IndustryAverage: 71, OverallAverage: 67, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricWebsiteAuthority:     {IndustryAverage: 74, OverallAverage: 61, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricConsistencyScore:     {IndustryAverage: 76, OverallAverage: 64, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricTopicCoverage:        {IndustryAverage: 72, OverallAverage: 66, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricTrustSignals:         {IndustryAverage: 79, OverallAverage: 57, SampleSize: 80, LastUpdated: "2024-01-15"},
		model.MetricExpertiseRating:      {IndustryAverage: 81, OverallAverage: 60, SampleSize: 80, LastUpdated: "2024-01-15"},
	},
	IndustryEcommerce: {
		model.MetricAIRecommendationRate: {IndustryAverage: 52, OverallAverage: 58, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricCompetitiveRanking:   {IndustryAverage: 65, OverallAverage: 62, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricContentRelevance:     {IndustryAverage: 61, OverallAverage: 65, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricBrandMentionQuality:  {IndustryAverage: 58, OverallAverage: 59, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricSearchCompatibility:  {IndustryAverage: 69, OverallAverage: 67, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricWebsiteAuthority:     {IndustryAverage: 56, OverallAverage: 61, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricConsistencyScore:     {IndustryAverage: 63, OverallAverage: 64, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricTopicCoverage:        {IndustryAverage: 59, OverallAverage: 66, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricTrustSignals:         {IndustryAverage: 72, OverallAverage: 57, SampleSize: 120, LastUpdated: "2024-01-15"},
		model.MetricExpertiseRating:      {IndustryAverage: 54, OverallAverage: 60, SampleSize: 120, LastUpdated: "2024-01-15"},
	},
	IndustryHealthcare: {
		model.MetricAIRecommendationRate: {IndustryAverage: 38, OverallAverage: 58, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricCompetitiveRanking:   {IndustryAverage: 55, OverallAverage: 62, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricContentRelevance:     {IndustryAverage: 71, OverallAverage: 65, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricBrandMentionQuality:  {IndustryAverage: 64, OverallAverage: 59, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricSearchCompatibility:  {IndustryAverage: 73, OverallAverage: 67, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricWebsiteAuthority:     {IndustryAverage: 78, OverallAverage: 61, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricConsistencyScore:     {IndustryAverage: 75, OverallAverage: 64, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricTopicCoverage:        {IndustryAverage: 77, OverallAverage: 66, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricTrustSignals:         {IndustryAverage: 85, OverallAverage: 57, SampleSize: 60, LastUpdated: "2024-01-15"},
		model.MetricExpertiseRating:      {IndustryAverage: 83, OverallAverage: 60, SampleSize: 60, LastUpdated: "2024-01-15"},
	},
	IndustryFinance: {
		model.MetricAIRecommendationRate: {IndustryAverage: 41, OverallAverage: 58, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricCompetitiveRanking:   {IndustryAverage: 59, OverallAverage: 62, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricContentRelevance:     {IndustryAverage: 66, OverallAverage: 65, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricBrandMentionQuality:  {IndustryAverage: 61, OverallAverage: 59, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricSearchCompatibility:  {IndustryAverage: 70, OverallAverage: 67, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricWebsiteAuthority:     {IndustryAverage: 76, OverallAverage: 61, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricConsistencyScore:     {IndustryAverage: 74, OverallAverage: 64, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricTopicCoverage:        {IndustryAverage: 69, OverallAverage: 66, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricTrustSignals:         {IndustryAverage: 82, OverallAverage: 57, SampleSize: 45, LastUpdated: "2024-01-15"},
		model.MetricExpertiseRating:      {IndustryAverage: 79, OverallAverage: 60, SampleSize: 45, LastUpdated: "2024-01-15"},
	},
}

// overallAverages is the cross-industry average per metric, used when the
// industry is unknown or has no benchmark data.
var overallAverages = map[model.Metric]int{
	model.MetricAIRecommendationRate: 58,
	model.MetricCompetitiveRanking:   62,
	model.MetricContentRelevance:     65,
	model.MetricBrandMentionQuality:  59,
	model.MetricSearchCompatibility:  67,
	model.MetricWebsiteAuthority:     61,
	model.MetricConsistencyScore:     64,
	model.MetricTopicCoverage:        66,
	model.MetricTrustSignals:         57,
	model.MetricExpertiseRating:      60,
}

// fallbackSampleSize is reported for overall-average records, matching the
// full corpus size of the benchmark study.
const fallbackSampleSize = 500

// fallbackLastUpdated is the date reported for overall-average records.
const fallbackLastUpdated = "2024-01-15"
