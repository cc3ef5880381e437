// Package extract turns crawled markdown-like page content into a
// structured PageSnapshot: headings, links, contact details, trust
// signals, keywords, and language. All metric analyzers read from the
// snapshot rather than re-parsing raw content.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/pemistahl/lingua-go"

	"github.com/gso-insight/gsoscan/internal/model"
)

// maxServices caps how many service-description sentences are kept.
const maxServices = 5

// maxKeywords caps the extracted keyword list.
const maxKeywords = 20

// minParagraphLength filters out short blocks (navigation, buttons)
// when counting paragraphs.
const minParagraphLength = 50

var (
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	// Loose NANP matching: optional country code, optional separators.
	phoneRe = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)

	h1Re = regexp.MustCompile(`(?m)^# (.+)$`)
	h2Re = regexp.MustCompile(`(?m)^## (.+)$`)
	h3Re = regexp.MustCompile(`(?m)^### (.+)$`)

	linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	sentenceEnds = regexp.MustCompile(`[.!?]+`)
)

var socialPlatforms = []string{"facebook", "twitter", "linkedin", "instagram", "youtube", "tiktok"}

var pricingKeywords = []string{"price", "pricing", "cost", "$", "free", "premium", "plan", "subscription"}

var serviceKeywords = []string{"service", "solution", "product", "offer", "provide", "specialize"}

var certificationKeywords = []string{"certified", "accredited", "licensed", "verified", "trusted", "award"}

var testimonialKeywords = []string{"testimonial", "review", "client says", "customer feedback", `"`}

// Input carries one fetched page into the extractor.
type Input struct {
	Domain        model.Domain
	URL           string
	Content       string
	Title         string
	Description   string
	StatusCode    int
	CrawlerUsed   string
	CrawlDuration time.Duration
}

// Extractor builds PageSnapshots from raw page content.
type Extractor struct {
	detector lingua.LanguageDetector
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLanguageDetector enables content-language detection.
// Without it the snapshot's Language field stays empty.
func WithLanguageDetector(d lingua.LanguageDetector) Option {
	return func(e *Extractor) {
		e.detector = d
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract derives all structured fields from the input's content.
// The content is scanned as-is; it is never modified or truncated.
func (e *Extractor) Extract(in Input) *model.PageSnapshot {
	content := in.Content
	lower := strings.ToLower(content)

	snap := &model.PageSnapshot{
		Domain:        in.Domain.String(),
		URL:           in.URL,
		Content:       content,
		Title:         in.Title,
		Description:   in.Description,
		StatusCode:    in.StatusCode,
		WordCount:     len(strings.Fields(content)),
		H1Tags:        headings(h1Re, content),
		H2Tags:        headings(h2Re, content),
		H3Tags:        headings(h3Re, content),
		CrawlerUsed:   in.CrawlerUsed,
		CrawlDuration: in.CrawlDuration,
	}

	snap.Contact.Emails = dedupe(emailRe.FindAllString(content, -1))
	snap.Contact.Phones = dedupe(phoneRe.FindAllString(content, -1))

	snap.ParagraphCount = countParagraphs(content)
	links := linkRe.FindAllStringSubmatch(content, -1)
	snap.LinkCount = len(links)
	snap.SocialLinks = socialLinks(links)

	snap.Certifications = matchKeywords(lower, certificationKeywords)
	snap.TestimonialsCount = countOccurrences(lower, testimonialKeywords)
	snap.PricingMentioned = containsAny(lower, pricingKeywords)
	snap.ServicesListed = serviceSentences(lower)
	snap.Keywords = topKeywords(lower)
	snap.Language = e.detectLanguage(content)

	return snap
}

func (e *Extractor) detectLanguage(content string) string {
	if e.detector == nil || content == "" {
		return ""
	}
	lang, ok := e.detector.DetectLanguageOf(content)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

func headings(re *regexp.Regexp, content string) []string {
	matches := re.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}

func countParagraphs(content string) int {
	count := 0
	for _, block := range strings.Split(content, "\n\n") {
		if len(strings.TrimSpace(block)) > minParagraphLength {
			count++
		}
	}
	return count
}

// socialLinks returns the targets of links whose text or URL mentions a
// known social platform. The whole markdown link is matched so platform
// names in the anchor text count too.
func socialLinks(links [][]string) []string {
	var out []string
	for _, link := range links {
		whole := strings.ToLower(link[0])
		for _, platform := range socialPlatforms {
			if strings.Contains(whole, platform) {
				out = append(out, link[2])
				break
			}
		}
	}
	return out
}

// matchKeywords returns the keywords themselves, not their context.
// Analyzers only need to know which trust badges are present.
func matchKeywords(lower string, keywords []string) []string {
	var out []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

// countOccurrences sums keyword hits across the text. The quote
// character is among the keywords, so quoted prose inflates the count;
// the result is a density proxy, not an exact testimonial count.
func countOccurrences(lower string, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		total += strings.Count(lower, kw)
	}
	return total
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func serviceSentences(lower string) []string {
	var out []string
	for _, sentence := range sentenceEnds.Split(lower, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if !containsAny(sentence, serviceKeywords) {
			continue
		}
		out = append(out, sentence)
		if len(out) == maxServices {
			break
		}
	}
	return out
}

// topKeywords returns the most frequent words longer than three
// characters, ordered by count descending with first occurrence
// breaking ties.
func topKeywords(lower string) []string {
	cleaned := nonWordRe.ReplaceAllString(lower, " ")

	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	// Insertion sort by count keeps the first-occurrence tie order
	// without a comparator that re-derives it.
	sorted := make([]string, 0, len(order))
	for _, word := range order {
		pos := len(sorted)
		for pos > 0 && counts[sorted[pos-1]] < counts[word] {
			pos--
		}
		sorted = append(sorted, "")
		copy(sorted[pos+1:], sorted[pos:])
		sorted[pos] = word
	}

	if len(sorted) > maxKeywords {
		sorted = sorted[:maxKeywords]
	}
	return sorted
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
