package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/gso-insight/gsoscan/internal/model"
)

// MarkdownWriter outputs results in Markdown format, designed for
// documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write implements Writer.
func (w *MarkdownWriter) Write(result *model.AnalysisResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeMetrics(md, result)
	w.writeInsights(md, result)
	w.writeSummary(md, result)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H1("GSO Visibility Report")
	md.PlainText("")

	rows := [][]string{
		{"Domain", "`" + result.Domain + "`"},
		{"Overall Score", strconv.Itoa(result.OverallScore) + "/100 (" + scoreGrade(result.OverallScore) + ")"},
		{"Confidence", strconv.Itoa(result.ConfidenceLevel) + "%"},
		{"Industry", result.Industry},
		{"Content Source", result.CrawlerUsed},
		{"Analysis Date", result.AnalysisDate.Format("2006-01-02 15:04:05 MST")},
	}
	if result.OverallBenchmark != nil {
		rows = append(rows, []string{"Benchmark", result.OverallBenchmark.Comparison})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeMetrics(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Metric Scores")
	md.PlainText("")

	rows := make([][]string, 0, len(result.Metrics))
	for _, metric := range model.Metrics() {
		ms, ok := result.Metrics[metric]
		if !ok {
			continue
		}
		status := "-"
		if ms.Benchmark != nil {
			status = string(ms.Benchmark.Status)
		}
		rows = append(rows, []string{
			metric.DisplayName(),
			strconv.Itoa(ms.Score),
			scoreGrade(ms.Score),
			status,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Score", "Grade", "Vs. Industry"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeInsights(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Insights")
	md.PlainText("")

	for _, metric := range model.Metrics() {
		ms, ok := result.Metrics[metric]
		if !ok || len(ms.Insights) == 0 {
			continue
		}
		md.H3(metric.DisplayName())
		md.BulletList(ms.Insights...)
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Recommendations")
	md.PlainText("")

	if len(result.Summary.CriticalIssues) > 0 {
		md.H3("Critical Issues")
		md.BulletList(result.Summary.CriticalIssues...)
		md.PlainText("")
	}
	if len(result.Summary.QuickWins) > 0 {
		md.H3("Quick Wins")
		md.BulletList(result.Summary.QuickWins...)
		md.PlainText("")
	}
	if len(result.Summary.InvestmentRecommendations) > 0 {
		md.H3("Investment Recommendations")
		md.BulletList(result.Summary.InvestmentRecommendations...)
		md.PlainText("")
	}
}
