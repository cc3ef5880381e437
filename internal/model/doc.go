// Package model defines the core data structures for GSO analysis.
//
// This package contains value objects (Domain), the structured extraction
// of a crawled page (PageSnapshot), per-metric scoring results (MetricScore),
// and the aggregate analysis result (AnalysisResult). All types are plain
// data with no I/O dependencies, making them safe to share across packages.
package model
