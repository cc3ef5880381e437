package config

import "errors"

// Configuration validation errors.
//
// Design decision: package-level sentinel errors rather than fresh error
// instances in Validate(), so callers can use errors.Is() while still
// getting human-readable messages.
var (
	// ErrNoDomain is returned when no domain to analyze was given.
	ErrNoDomain = errors.New("no domain specified: provide at least one domain to analyze")

	// ErrInvalidTimeout is returned when a timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
