package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "api_key", key: "api_key", value: "fc-abcdef0123456789"},
		{name: "authorization header", key: "authorization", value: "Bearer topsecret"},
		{name: "embedded token keyword", key: "scrape_token", value: "opaque"},
		{name: "cookie", key: "cookie", value: "session=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := NewLogger(&buf, true)
			logger.Info("request sent", tt.key, tt.value)

			out := buf.String()
			if strings.Contains(out, tt.value) {
				t.Errorf("output leaked value %q:\n%s", tt.value, out)
			}
			if !strings.Contains(out, MaskValue) {
				t.Errorf("output lacks mask:\n%s", out)
			}
		})
	}
}

func TestRedactHandlerMasksSensitiveValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	// The key looks harmless but the value is a bearer token.
	logger.Info("upstream call", "header", "Bearer abc123")
	if strings.Contains(buf.String(), "abc123") {
		t.Errorf("bearer value leaked:\n%s", buf.String())
	}
}

func TestRedactHandlerKeepsOrdinaryAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)
	logger.Info("analysis complete", "domain", "acme.example", "score", 72)

	out := buf.String()
	if !strings.Contains(out, "acme.example") {
		t.Errorf("ordinary attribute masked:\n%s", out)
	}
	if strings.Contains(out, MaskValue) {
		t.Errorf("unexpected mask in output:\n%s", out)
	}
}

func TestRedactHandlerGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)
	logger.Info("request", slog.Group("http", "url", "https://api.example", "api_key", "fc-abcdef0123456789"))

	out := buf.String()
	if strings.Contains(out, "fc-abcdef0123456789") {
		t.Errorf("group attribute leaked:\n%s", out)
	}
	if !strings.Contains(out, "https://api.example") {
		t.Errorf("harmless group attribute masked:\n%s", out)
	}
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	quiet := NewLogger(&buf, false)
	quiet.Info("hidden at warn level")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level:\n%s", buf.String())
	}

	quiet.Warn("visible warning")
	if !strings.Contains(buf.String(), "visible warning") {
		t.Error("warning not logged")
	}
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)
	logger.Info("structured", "api_key", "fc-abcdef0123456789")

	out := buf.String()
	if !strings.Contains(out, `"msg":"structured"`) {
		t.Errorf("output is not JSON:\n%s", out)
	}
	if strings.Contains(out, "fc-abcdef0123456789") {
		t.Errorf("JSON output leaked key:\n%s", out)
	}
}
