// Package benchmark provides the static industry benchmark table used to
// contextualize GSO metric scores.
//
// The table holds per-(metric, industry) averages compiled from an analysis
// of 500+ websites. It is read-only at runtime; industry detection is pure
// keyword matching over the domain and page content.
package benchmark
