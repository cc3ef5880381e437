package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gso-insight/gsoscan/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
//
// Design decision: plain ASCII formatting rather than ANSI colors so the
// output pipes cleanly to files and other tools.
type SimpleWriter struct {
	baseWriter

	// verbose adds per-metric reasoning to the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables per-metric reasoning in the output.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements Writer.
func (w *SimpleWriter) Write(result *model.AnalysisResult) (int, error) {
	var sb strings.Builder

	rule := strings.Repeat("=", 62)
	sb.WriteString(rule + "\n")
	sb.WriteString(fmt.Sprintf("GSO Visibility Report: %s\n", result.Domain))
	sb.WriteString(rule + "\n\n")

	sb.WriteString(fmt.Sprintf("Overall Score:    %d/100 (%s)\n", result.OverallScore, scoreGrade(result.OverallScore)))
	sb.WriteString(fmt.Sprintf("Confidence:       %d%%\n", result.ConfidenceLevel))
	sb.WriteString(fmt.Sprintf("Industry:         %s\n", result.Industry))
	sb.WriteString(fmt.Sprintf("Content Source:   %s\n", result.CrawlerUsed))
	sb.WriteString(fmt.Sprintf("Analyzed:         %s\n", result.AnalysisDate.Format("2006-01-02 15:04:05 MST")))
	if result.OverallBenchmark != nil {
		sb.WriteString(fmt.Sprintf("Benchmark:        %s\n", result.OverallBenchmark.Comparison))
	}
	sb.WriteString("\n")

	sb.WriteString("Metric Scores\n")
	sb.WriteString(strings.Repeat("-", 62) + "\n")
	for _, metric := range model.Metrics() {
		ms, ok := result.Metrics[metric]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-24s %3d/100 (%s)\n", metric.DisplayName(), ms.Score, scoreGrade(ms.Score)))
		if w.verbose && ms.Reasoning != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", ms.Reasoning))
		}
		for _, insight := range ms.Insights {
			sb.WriteString(fmt.Sprintf("    - %s\n", insight))
		}
	}
	sb.WriteString("\n")

	writeList := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(title + "\n")
		for _, item := range items {
			sb.WriteString(fmt.Sprintf("  - %s\n", item))
		}
		sb.WriteString("\n")
	}
	writeList("Critical Issues", result.Summary.CriticalIssues)
	writeList("Quick Wins", result.Summary.QuickWins)
	writeList("Investment Recommendations", result.Summary.InvestmentRecommendations)

	return io.WriteString(w.output, sb.String())
}
