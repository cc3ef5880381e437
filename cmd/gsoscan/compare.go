package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gso-insight/gsoscan/internal/config"
	"github.com/gso-insight/gsoscan/internal/database"
	"github.com/gso-insight/gsoscan/internal/model"
	"github.com/spf13/cobra"
)

// Overall score direction labels used in comparison summaries.
const (
	scoreDirectionImproved  = "improved"
	scoreDirectionDeclined  = "declined"
	scoreDirectionUnchanged = "unchanged"
)

// NewCompareCmd creates the compare command.
// This command compares analysis results with historical data stored in
// the database.
func NewCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [domain]",
		Short: "Compare analysis results with historical data",
		Long: `Compare displays differences between the current and previous analysis results.

This command retrieves historical analysis data from the database and shows:
- Per-metric score changes since the last analysis
- The overall score direction (improved, declined, unchanged)
- Confidence level changes (e.g., fallback scores replaced by real data)

The comparison requires at least two analyses in the database for the
specified domain. Use 'gsoscan scan' to analyze and save results.

Examples:
  # Compare latest two analyses for a domain
  gsoscan compare acme.example

  # List analysis history for a domain
  gsoscan compare --list acme.example

  # Output comparison in JSON format
  gsoscan compare --json acme.example

  # List all analyzed domains in the database
  gsoscan compare --list-domains`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCompareCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List analysis history for the specified domain")
	cmd.Flags().BoolP("list-domains", "L", false,
		"List all analyzed domains in the database")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	// Database location
	cmd.Flags().String("db", "",
		"Database directory for analysis history (default: XDG data directory)")

	return cmd
}

// runCompareCmd executes the compare command.
func runCompareCmd(cmd *cobra.Command, args []string) error {
	// Handle --list-domains flag first (requires database but no domain)
	listDomains, err := cmd.Flags().GetBool("list-domains")
	if err != nil {
		return err
	}

	// Validate arguments before opening database (unless --list-domains)
	var domain string
	if !listDomains {
		if len(args) == 0 {
			return errors.New("domain is required (use --list-domains to see available domains)")
		}

		normalized, err := model.NewDomain(args[0])
		if err != nil {
			return fmt.Errorf("invalid domain %q: %w", args[0], err)
		}
		domain = normalized.String()
	}

	dbDir, err := cmd.Flags().GetString("db")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	// Compare never creates the database; a missing file means no
	// history exists yet.
	db, err := database.Open(dbDir, database.Options{EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	// Handle --list-domains flag
	if listDomains {
		return listAnalyzedDomains(ctx, db)
	}

	// Handle --list flag
	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listHistory {
		return listAnalysisHistory(ctx, db, domain)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	return runComparison(ctx, db, domain, jsonOutput)
}

// listAnalyzedDomains lists all domains that have analysis records in
// the database.
func listAnalyzedDomains(ctx context.Context, db *database.Store) error {
	domains, err := db.Domains(ctx)
	if err != nil {
		return fmt.Errorf("failed to list domains: %w", err)
	}

	if len(domains) == 0 {
		fmt.Println("No analyzed domains found in the database.")
		fmt.Println("\nUse 'gsoscan scan <domain>' to analyze a website.")
		return nil
	}

	fmt.Printf("Analyzed domains (%d):\n\n", len(domains))
	for _, d := range domains {
		fmt.Printf("  • %s\n", d)
	}
	fmt.Println("\nUse 'gsoscan compare --list <domain>' to see analysis history for a domain.")

	return nil
}

// historyListLimit caps how many records the --list flag prints.
const historyListLimit = 50

// listAnalysisHistory lists analysis records for a specific domain.
func listAnalysisHistory(ctx context.Context, db *database.Store, domain string) error {
	results, err := db.History(ctx, domain, historyListLimit)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("No analysis history found for %s\n", domain)
		fmt.Println("\nUse 'gsoscan scan' to analyze this domain.")
		return nil
	}

	fmt.Printf("Analysis history for %s (%d analyses):\n\n", domain, len(results))
	fmt.Printf("  %-20s  %-8s  %-11s  %s\n", "Date", "Overall", "Confidence", "Source")
	fmt.Println("  " + strings.Repeat("-", 60))

	for _, result := range results {
		fmt.Printf("  %-20s  %-8d  %-11d  %s\n",
			result.AnalysisDate.Format("2006-01-02 15:04:05"),
			result.OverallScore,
			result.ConfidenceLevel,
			result.CrawlerUsed,
		)
	}

	fmt.Println("\nUse 'gsoscan compare <domain>' to compare the latest two analyses.")

	return nil
}

// ComparisonResult holds the result of comparing two analyses.
type ComparisonResult struct {
	// Domain is the analyzed domain.
	Domain string `json:"domain"`

	// PreviousAnalysis contains metadata about the previous analysis.
	PreviousAnalysis AnalysisMetadata `json:"previousAnalysis"`

	// CurrentAnalysis contains metadata about the current analysis.
	CurrentAnalysis AnalysisMetadata `json:"currentAnalysis"`

	// MetricChanges lists per-metric deltas in canonical metric order.
	MetricChanges []MetricChange `json:"metricChanges"`

	// OverallDelta is current minus previous overall score.
	OverallDelta int `json:"overallDelta"`

	// Direction is "improved", "declined", or "unchanged".
	Direction string `json:"direction"`
}

// AnalysisMetadata contains metadata about an analysis for comparison
// display.
type AnalysisMetadata struct {
	// AnalysisDate is when the analysis was computed.
	AnalysisDate time.Time `json:"analysisDate"`

	// OverallScore is the analysis's overall score.
	OverallScore int `json:"overallScore"`

	// ConfidenceLevel distinguishes real-data from fallback scores.
	ConfidenceLevel int `json:"confidenceLevel"`

	// CrawlerUsed names the content source.
	CrawlerUsed string `json:"crawlerUsed"`
}

// MetricChange describes one metric's score movement between analyses.
type MetricChange struct {
	// Metric is the stable metric key.
	Metric model.Metric `json:"metric"`

	// Previous is the metric score in the earlier analysis.
	Previous int `json:"previous"`

	// Current is the metric score in the later analysis.
	Current int `json:"current"`

	// Delta is current minus previous.
	Delta int `json:"delta"`
}

// runComparison compares the latest two analyses for a domain.
func runComparison(ctx context.Context, db *database.Store, domain string, jsonOutput bool) error {
	results, err := db.History(ctx, domain, 2)
	if err != nil {
		return fmt.Errorf("failed to get analysis history: %w", err)
	}

	if len(results) == 0 {
		return fmt.Errorf("no analysis history found for %s", domain)
	}
	if len(results) < 2 {
		return fmt.Errorf("at least 2 analyses are required for comparison (found %d)", len(results))
	}

	// History is newest-first
	comparison := compareAnalyses(results[1], results[0])

	if jsonOutput {
		return outputComparisonJSON(comparison)
	}
	return outputComparisonText(comparison)
}

// compareAnalyses builds the comparison between two analyses of the
// same domain.
func compareAnalyses(previous, current *model.AnalysisResult) *ComparisonResult {
	changes := make([]MetricChange, 0, len(model.Metrics()))
	for _, metric := range model.Metrics() {
		changes = append(changes, MetricChange{
			Metric:   metric,
			Previous: previous.Metrics[metric].Score,
			Current:  current.Metrics[metric].Score,
			Delta:    current.Metrics[metric].Score - previous.Metrics[metric].Score,
		})
	}

	delta := current.OverallScore - previous.OverallScore
	direction := scoreDirectionUnchanged
	switch {
	case delta > 0:
		direction = scoreDirectionImproved
	case delta < 0:
		direction = scoreDirectionDeclined
	}

	return &ComparisonResult{
		Domain:           current.Domain,
		PreviousAnalysis: analysisMetadata(previous),
		CurrentAnalysis:  analysisMetadata(current),
		MetricChanges:    changes,
		OverallDelta:     delta,
		Direction:        direction,
	}
}

func analysisMetadata(result *model.AnalysisResult) AnalysisMetadata {
	return AnalysisMetadata{
		AnalysisDate:    result.AnalysisDate,
		OverallScore:    result.OverallScore,
		ConfidenceLevel: result.ConfidenceLevel,
		CrawlerUsed:     result.CrawlerUsed,
	}
}

// outputComparisonJSON writes the comparison as indented JSON to stdout.
func outputComparisonJSON(comparison *ComparisonResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(comparison)
}

// outputComparisonText writes a human-readable comparison to stdout.
func outputComparisonText(comparison *ComparisonResult) error {
	fmt.Printf("Comparison for %s\n", comparison.Domain)
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("Previous: %s  (overall %d, confidence %d, source %s)\n",
		comparison.PreviousAnalysis.AnalysisDate.Format("2006-01-02 15:04:05"),
		comparison.PreviousAnalysis.OverallScore,
		comparison.PreviousAnalysis.ConfidenceLevel,
		comparison.PreviousAnalysis.CrawlerUsed,
	)
	fmt.Printf("Current:  %s  (overall %d, confidence %d, source %s)\n\n",
		comparison.CurrentAnalysis.AnalysisDate.Format("2006-01-02 15:04:05"),
		comparison.CurrentAnalysis.OverallScore,
		comparison.CurrentAnalysis.ConfidenceLevel,
		comparison.CurrentAnalysis.CrawlerUsed,
	)

	fmt.Printf("  %-26s  %8s  %8s  %6s\n", "Metric", "Previous", "Current", "Delta")
	fmt.Println("  " + strings.Repeat("-", 54))
	for _, change := range comparison.MetricChanges {
		fmt.Printf("  %-26s  %8d  %8d  %+6d\n",
			change.Metric.DisplayName(),
			change.Previous,
			change.Current,
			change.Delta,
		)
	}

	fmt.Printf("\nOverall score %s (%+d)\n", comparison.Direction, comparison.OverallDelta)

	return nil
}
