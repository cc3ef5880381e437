package benchmark

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Industry identifies one of the fixed industry categories used for
// benchmark lookups.
type Industry string

// Known industries. IndustryGeneral is the fallback when no keywords match;
// it resolves to cross-industry overall averages.
const (
	IndustryTechnology Industry = "technology"
	IndustryConsulting Industry = "consulting"
	IndustryEcommerce  Industry = "ecommerce"
	IndustryHealthcare Industry = "healthcare"
	IndustryFinance    Industry = "finance"
	IndustryGeneral    Industry = "general"
)

// String returns the industry's stable string key.
func (i Industry) String() string {
	return string(i)
}

// DisplayName returns the capitalized name used in reports.
// The general industry displays as "Overall" because its benchmark is the
// cross-industry average rather than a real vertical.
func (i Industry) DisplayName() string {
	if i == IndustryGeneral {
		return "Overall"
	}
	return cases.Title(language.English).String(string(i))
}

// industryKeywords maps each industry to the domain and content keywords
// that indicate it. Domain keywords are matched against the normalized
// domain; content keywords against lowercased page text.
var industryKeywords = []struct {
	industry Industry
	domain   []string
	content  []string
}{
	{
		industry: IndustryTechnology,
		domain:   []string{"tech", "ai", "software", "apple", "microsoft", "google"},
		content:  []string{"software", "technology", "artificial intelligence"},
	},
	{
		industry: IndustryConsulting,
		domain:   []string{"consulting", "advisory", "strategy"},
		content:  []string{"consulting", "advisory", "strategic"},
	},
	{
		industry: IndustryEcommerce,
		domain:   []string{"shop", "store", "market"},
		content:  []string{"buy now", "add to cart", "checkout"},
	},
	{
		industry: IndustryHealthcare,
		domain:   []string{"health", "medical", "clinic"},
		content:  []string{"healthcare", "medical", "patient"},
	},
	{
		industry: IndustryFinance,
		domain:   []string{"finance", "bank", "invest"},
		content:  []string{"financial", "investment", "banking"},
	},
}

// DetectIndustry infers the industry from the domain string and optional
// page content. The function is pure: identical inputs always yield the
// same industry. The first matching industry in declaration order wins,
// so "healthtech.com" classifies as technology, matching the original
// product's behavior.
func DetectIndustry(domain, content string) Industry {
	domainLower := strings.ToLower(domain)
	contentLower := strings.ToLower(content)

	for _, entry := range industryKeywords {
		for _, kw := range entry.domain {
			if strings.Contains(domainLower, kw) {
				return entry.industry
			}
		}
		for _, kw := range entry.content {
			if contentLower != "" && strings.Contains(contentLower, kw) {
				return entry.industry
			}
		}
	}
	return IndustryGeneral
}
