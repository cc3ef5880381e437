// Package report renders analysis results for people and tools: plain
// text for terminals, Markdown for sharing, JSON for integration.
package report

import (
	"io"

	"github.com/gso-insight/gsoscan/internal/model"
)

// Writer renders one analysis result to its configured destination.
//
// Design decision: We use an interface rather than format flags on a
// single writer so destinations compose: the same API writes to stdout,
// files, or both at once via MultiWriter.
type Writer interface {
	// Write outputs the result. Returns the number of bytes written
	// and any error encountered.
	Write(result *model.AnalysisResult) (int, error)
}

// MultiWriter writes the same result to multiple Writers.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the result to all configured Writers, stopping on the
// first error. Returns total bytes written.
func (m *MultiWriter) Write(result *model.AnalysisResult) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(result)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// scoreGrade maps a score to a coarse letter grade shown in text and
// markdown output.
func scoreGrade(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
