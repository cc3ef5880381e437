package model

import (
	"errors"
	"strings"
)

// Domain errors.
var (
	// ErrEmptyDomain is returned when the input domain is empty.
	ErrEmptyDomain = errors.New("domain cannot be empty")
)

// Domain is an immutable value object representing a normalized website domain.
// It accepts either a bare domain ("example.com") or a full URL
// ("https://www.example.com/") and normalizes to a canonical form that is
// stable across equivalent inputs.
//
// Design decision: We normalize eagerly at construction rather than at each
// use site because the normalized form is used both as the cache key and as
// the seed for deterministic fallback scoring. Any drift between the two
// would break result consistency for repeated requests.
type Domain struct {
	host string
}

// NewDomain creates a Domain from raw user input.
// Normalization: trim whitespace, lowercase, strip http/https scheme,
// strip a leading "www.", drop any path component, strip a trailing slash.
func NewDomain(raw string) (Domain, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.TrimPrefix(normalized, "https://")
	normalized = strings.TrimPrefix(normalized, "http://")
	normalized = strings.TrimPrefix(normalized, "www.")
	if i := strings.Index(normalized, "/"); i >= 0 {
		normalized = normalized[:i]
	}
	if normalized == "" {
		return Domain{}, ErrEmptyDomain
	}
	return Domain{host: normalized}, nil
}

// String returns the normalized domain, e.g. "example.com".
func (d Domain) String() string {
	return d.host
}

// URL returns the canonical https URL used for crawling.
func (d Domain) URL() string {
	return "https://" + d.host
}

// IsZero reports whether the domain is the zero value.
func (d Domain) IsZero() bool {
	return d.host == ""
}
