// Package config holds runtime configuration for gsoscan: defaults,
// CLI-populated options, environment credentials, and the optional
// per-domain .gsoscan YAML file. Configuration flows through the
// application by dependency injection; nothing in this package is
// global mutable state.
package config
