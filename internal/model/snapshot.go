package model

import "time"

// ContactInfo holds deduplicated contact details extracted from page text.
type ContactInfo struct {
	// Emails contains unique email addresses found in the content.
	Emails []string `json:"emails"`

	// Phones contains unique phone numbers (loose NANP matching).
	Phones []string `json:"phones"`
}

// PageSnapshot is the structured extraction of one crawled page.
// It is created once per analysis run by the extractor and never
// mutated afterwards; every metric analyzer reads from the same snapshot.
//
// Design decision: We keep the raw markdown-like content on the snapshot
// alongside the derived counts because a few analyzers (AI keyword matching,
// industry detection) re-scan the full text rather than working from counts.
type PageSnapshot struct {
	// Domain is the normalized domain the page belongs to.
	Domain string `json:"domain"`

	// URL is the URL that was actually fetched.
	URL string `json:"url"`

	// Content is the markdown-like text the crawl backend produced.
	Content string `json:"content"`

	// Title is the page title, empty if none was found.
	Title string `json:"title,omitempty"`

	// Description is the meta description, empty if none was found.
	Description string `json:"description,omitempty"`

	// StatusCode is the HTTP status of the fetch, zero if unknown.
	StatusCode int `json:"status_code,omitempty"`

	// WordCount is the whitespace-split token count of Content.
	WordCount int `json:"word_count"`

	// H1Tags, H2Tags, and H3Tags hold heading texts by level,
	// matched from markdown-style heading lines.
	H1Tags []string `json:"h1_tags,omitempty"`
	H2Tags []string `json:"h2_tags,omitempty"`
	H3Tags []string `json:"h3_tags,omitempty"`

	// ParagraphCount counts blank-line separated blocks longer than
	// 50 characters. Short blocks are treated as navigation noise.
	ParagraphCount int `json:"paragraph_count"`

	// LinkCount counts markdown-style [text](url) links.
	LinkCount int `json:"link_count"`

	// Contact holds deduplicated emails and phone numbers.
	Contact ContactInfo `json:"contact_info"`

	// SocialLinks are link targets pointing at known social platforms.
	SocialLinks []string `json:"social_links,omitempty"`

	// Certifications are the trust-badge keywords matched in the text
	// (the keywords themselves, not the surrounding context).
	Certifications []string `json:"certifications,omitempty"`

	// TestimonialsCount sums occurrences of testimonial-related keywords.
	// Every literal quote character counts as one occurrence, so this is a
	// rough density proxy that overcounts on quoted text, not a true count.
	TestimonialsCount int `json:"testimonials_count"`

	// PricingMentioned reports whether any pricing keyword appears.
	PricingMentioned bool `json:"pricing_mentioned"`

	// ServicesListed holds up to 5 service-related sentences.
	ServicesListed []string `json:"services_listed,omitempty"`

	// Keywords are the top 20 most frequent words longer than 3 characters.
	Keywords []string `json:"keywords,omitempty"`

	// Language is the detected content language code, empty if
	// detection was disabled or inconclusive.
	Language string `json:"language,omitempty"`

	// CrawlerUsed names the crawl backend that produced the content.
	CrawlerUsed string `json:"crawler_used"`

	// CrawlDuration is how long the fetch took.
	CrawlDuration time.Duration `json:"crawl_duration"`
}

// HeadingCount returns the total number of H1-H3 headings.
func (s *PageSnapshot) HeadingCount() int {
	return len(s.H1Tags) + len(s.H2Tags) + len(s.H3Tags)
}

// HasTitle reports whether a non-empty title was extracted.
func (s *PageSnapshot) HasTitle() bool {
	return s.Title != ""
}

// HasDescription reports whether a non-empty meta description was extracted.
func (s *PageSnapshot) HasDescription() bool {
	return s.Description != ""
}
