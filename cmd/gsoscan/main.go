// Package main provides the entry point for the gsoscan CLI.
//
// gsoscan measures how visible a marketing website is to AI assistants
// and generative search. It crawls a site, scores ten visibility
// dimensions, and reports industry-benchmarked results.
//
// Usage:
//
//	gsoscan scan <domain>
//	gsoscan scan --json <domain>
//
// See --help for all available options.
package main

// main is the entry point for gsoscan.
func main() {
	Execute()
}
