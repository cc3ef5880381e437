package benchmark

import (
	"fmt"

	"github.com/gso-insight/gsoscan/internal/model"
)

// Lookup returns the benchmark record for a metric within an industry.
// When the industry has no benchmark data, the cross-industry overall
// average is returned with IndustryAverage set to the same value, so a
// comparison is always possible. ok is false only for unknown metrics.
func Lookup(metric model.Metric, industry Industry) (Record, bool) {
	if rows, found := table[industry]; found {
		if rec, found := rows[metric]; found {
			return rec, true
		}
	}

	avg, found := overallAverages[metric]
	if !found {
		return Record{}, false
	}
	return Record{
		IndustryAverage: avg,
		OverallAverage:  avg,
		SampleSize:      fallbackSampleSize,
		LastUpdated:     fallbackLastUpdated,
	}, true
}

// Overall returns the benchmark for the overall score: the rounded mean of
// all per-metric averages for the industry. For unknown industries both
// averages collapse to the cross-industry mean.
func Overall(industry Industry) Record {
	if rows, found := table[industry]; found {
		industrySum, overallSum := 0, 0
		for _, rec := range rows {
			industrySum += rec.IndustryAverage
			overallSum += rec.OverallAverage
		}
		n := len(rows)
		var sample int
		var updated string
		for _, rec := range rows {
			sample = rec.SampleSize
			updated = rec.LastUpdated
			break
		}
		return Record{
			IndustryAverage: roundDiv(industrySum, n),
			OverallAverage:  roundDiv(overallSum, n),
			SampleSize:      sample,
			LastUpdated:     updated,
		}
	}

	sum := 0
	for _, avg := range overallAverages {
		sum += avg
	}
	mean := roundDiv(sum, len(overallAverages))
	return Record{
		IndustryAverage: mean,
		OverallAverage:  mean,
		SampleSize:      fallbackSampleSize,
		LastUpdated:     fallbackLastUpdated,
	}
}

// roundDiv divides and rounds half up, matching the scoring contract.
func roundDiv(sum, n int) int {
	if n == 0 {
		return 0
	}
	return (sum*2 + n) / (n * 2)
}

// Status classifies a score against the record's industry average using
// fixed ±15/±5 point bands. The mapping is monotonic in score.
func Status(score int, rec Record) model.Status {
	avg := rec.IndustryAverage
	switch {
	case score >= avg+15:
		return model.StatusExcellent
	case score >= avg+5:
		return model.StatusAboveAverage
	case score >= avg-5:
		return model.StatusAverage
	case score >= avg-15:
		return model.StatusBelowAverage
	default:
		return model.StatusPoor
	}
}

// Comparison builds the human-readable comparison sentence for a score,
// e.g. "12 points above technology average (68), 6 points above overall
// average (62)".
func Comparison(score int, metric model.Metric, industry Industry) string {
	rec, ok := Lookup(metric, industry)
	if !ok {
		return ""
	}
	return comparisonText(score, rec, industry)
}

func comparisonText(score int, rec Record, industry Industry) string {
	industryName := string(industry)
	if industry == IndustryGeneral {
		industryName = "overall"
	}
	return fmt.Sprintf("%s %s average (%d), %s overall average (%d)",
		diffText(score-rec.IndustryAverage), industryName, rec.IndustryAverage,
		diffText(score-rec.OverallAverage), rec.OverallAverage)
}

func diffText(diff int) string {
	if diff >= 0 {
		return fmt.Sprintf("%d points above", diff)
	}
	return fmt.Sprintf("%d points below", -diff)
}

// Compare builds the full benchmark comparison attached to a metric score.
// Returns nil for unknown metrics so callers can attach it directly.
func Compare(metric model.Metric, score int, industry Industry) *model.BenchmarkComparison {
	rec, ok := Lookup(metric, industry)
	if !ok {
		return nil
	}
	return &model.BenchmarkComparison{
		IndustryAverage: rec.IndustryAverage,
		OverallAverage:  rec.OverallAverage,
		Status:          Status(score, rec),
		Comparison:      comparisonText(score, rec, industry),
		Industry:        industry.DisplayName(),
	}
}

// CompareOverall builds the benchmark comparison for the overall score.
func CompareOverall(score int, industry Industry) *model.BenchmarkComparison {
	rec := Overall(industry)
	return &model.BenchmarkComparison{
		IndustryAverage: rec.IndustryAverage,
		OverallAverage:  rec.OverallAverage,
		Status:          Status(score, rec),
		Comparison:      comparisonText(score, rec, industry),
		Industry:        industry.DisplayName(),
	}
}
