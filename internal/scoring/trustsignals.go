package scoring

import (
	"fmt"

	"github.com/gso-insight/gsoscan/internal/model"
)

// TrustSignals scores trust evidence on the page: contact details,
// social presence, certifications, testimonials, and pricing
// transparency.
type TrustSignals struct{}

// Metric implements Analyzer.
func (a *TrustSignals) Metric() model.Metric {
	return model.MetricTrustSignals
}

// Analyze implements Analyzer.
func (a *TrustSignals) Analyze(snap *model.PageSnapshot) Result {
	score := 15
	var signals []string

	if len(snap.Contact.Emails) > 0 {
		score += 15
		signals = append(signals, "Email contact information available")
	} else {
		signals = append(signals, "Add email contact information")
	}

	if len(snap.Contact.Phones) > 0 {
		score += 10
		signals = append(signals, "Phone contact information available")
	}

	switch {
	case len(snap.SocialLinks) >= 3:
		score += 15
		signals = append(signals, "Strong social media presence")
	case len(snap.SocialLinks) > 0:
		score += 10
		signals = append(signals, fmt.Sprintf("Social media presence on %d platform(s)", len(snap.SocialLinks)))
	default:
		signals = append(signals, "Add social media links to build trust")
	}

	if len(snap.Certifications) > 0 {
		score += 15
		signals = append(signals, "Trust badges or certifications mentioned")
	} else {
		signals = append(signals, "Add trust badges, certifications, or awards")
	}

	switch {
	case snap.TestimonialsCount > 5:
		score += 15
		signals = append(signals, "Multiple customer testimonials found")
	case snap.TestimonialsCount > 0:
		score += 10
		signals = append(signals, "Some customer testimonials present")
	default:
		signals = append(signals, "Add customer testimonials and reviews")
	}

	if snap.PricingMentioned {
		score += 10
		signals = append(signals, "Pricing information is transparent")
	} else {
		signals = append(signals, "Consider adding clear pricing information")
	}

	return Result{
		Score:     model.ClampScore(score, 0, maxScore),
		Reasoning: "Trust signals analysis based on contact info, social presence, certifications, and testimonials.",
		Signals:   signals,
	}
}
