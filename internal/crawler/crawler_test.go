package crawler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRemoteFetch(t *testing.T) {
	t.Parallel()

	markdown := strings.Repeat("Cloud services for growing businesses. ", 10)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		var req scrapeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.URL != "https://acme.example" {
			t.Errorf("request URL = %q, want https://acme.example", req.URL)
		}
		if req.WaitFor != 3000 {
			t.Errorf("waitFor = %d, want 3000", req.WaitFor)
		}
		if len(req.Formats) != 2 || req.Formats[0] != "markdown" {
			t.Errorf("formats = %v, want [markdown html]", req.Formats)
		}

		resp := scrapeResponse{Success: true}
		resp.Data.Markdown = markdown
		resp.Data.Metadata.Title = "Acme"
		resp.Data.Metadata.Description = "Cloud services"
		resp.Data.Metadata.StatusCode = 200
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Fatal(err)
		}
	}))
	defer server.Close()

	provider := NewRemote("test-key", server.URL)
	got, err := provider.Fetch(context.Background(), "https://acme.example")
	if err != nil {
		t.Fatal(err)
	}
	if got.Markdown != markdown {
		t.Error("markdown does not round-trip")
	}
	if got.Title != "Acme" || got.Description != "Cloud services" || got.StatusCode != 200 {
		t.Errorf("metadata = %q/%q/%d, want Acme/Cloud services/200", got.Title, got.Description, got.StatusCode)
	}
}

func TestRemoteFetchFailures(t *testing.T) {
	t.Parallel()

	t.Run("no api key", func(t *testing.T) {
		t.Parallel()
		provider := NewRemote("", "http://unused.example")
		if _, err := provider.Fetch(context.Background(), "https://acme.example"); !errors.Is(err, ErrNoAPIKey) {
			t.Errorf("err = %v, want ErrNoAPIKey", err)
		}
	})

	t.Run("api reports failure", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success": false, "error": "blocked"}`)
		}))
		defer server.Close()

		provider := NewRemote("test-key", server.URL)
		if _, err := provider.Fetch(context.Background(), "https://acme.example"); err == nil {
			t.Error("want error when success flag is false")
		}
	})

	t.Run("content too short", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"success": true, "data": {"markdown": "tiny"}}`)
		}))
		defer server.Close()

		provider := NewRemote("test-key", server.URL)
		if _, err := provider.Fetch(context.Background(), "https://acme.example"); err == nil {
			t.Error("want error for markdown below minimum length")
		}
	})

	t.Run("http error status", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		provider := NewRemote("test-key", server.URL)
		if _, err := provider.Fetch(context.Background(), "https://acme.example"); err == nil {
			t.Error("want error for non-200 status")
		}
	})
}

const localTestPage = `<!DOCTYPE html>
<html>
<head>
<title>Acme Cloud</title>
<meta name="description" content="Managed cloud services">
<script>var tracking = true;</script>
</head>
<body>
<nav><a href="/about">About</a></nav>
<main>
<h1>Welcome to Acme</h1>
<p>We provide managed cloud solutions for growing businesses across the region, with support around the clock.</p>
<h2>Pricing</h2>
<p>Plans start free and scale with premium subscriptions for larger teams.</p>
<p><a href="https://facebook.com/acme">Follow us on Facebook</a></p>
</main>
<footer>Copyright Acme</footer>
</body>
</html>`

func TestLocalFetch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != DefaultUserAgent {
			t.Errorf("User-Agent = %q, want %q", got, DefaultUserAgent)
		}
		fmt.Fprint(w, localTestPage)
	}))
	defer server.Close()

	provider := NewLocal()
	got, err := provider.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatal(err)
	}

	if got.Title != "Acme Cloud" {
		t.Errorf("Title = %q, want %q", got.Title, "Acme Cloud")
	}
	if got.Description != "Managed cloud services" {
		t.Errorf("Description = %q, want %q", got.Description, "Managed cloud services")
	}
	if got.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", got.StatusCode)
	}

	if !strings.Contains(got.Markdown, "# Welcome to Acme") {
		t.Errorf("markdown lacks H1 heading:\n%s", got.Markdown)
	}
	if !strings.Contains(got.Markdown, "## Pricing") {
		t.Errorf("markdown lacks H2 heading:\n%s", got.Markdown)
	}
	if !strings.Contains(got.Markdown, "[Follow us on Facebook](https://facebook.com/acme)") {
		t.Errorf("markdown lacks link:\n%s", got.Markdown)
	}
	if strings.Contains(got.Markdown, "tracking") {
		t.Errorf("script content leaked into markdown:\n%s", got.Markdown)
	}
	if strings.Contains(got.Markdown, "Copyright") {
		t.Errorf("footer content leaked into markdown:\n%s", got.Markdown)
	}
}

func TestLocalFetchCustomHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer token")
		}
		if got := r.Header.Get("Cookie"); got != "session=abc123" {
			t.Errorf("Cookie = %q, want %q", got, "session=abc123")
		}
		fmt.Fprint(w, localTestPage)
	}))
	defer server.Close()

	provider := NewLocal(
		WithHeaders(map[string]string{"Authorization": "Bearer token"}),
		WithCookie("session=abc123"),
	)
	if _, err := provider.Fetch(context.Background(), server.URL); err != nil {
		t.Fatal(err)
	}
}

func TestLocalFetchFailures(t *testing.T) {
	t.Parallel()

	t.Run("error status", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		if _, err := NewLocal().Fetch(context.Background(), server.URL); err == nil {
			t.Error("want error for 404 response")
		}
	})

	t.Run("thin content", func(t *testing.T) {
		t.Parallel()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "<html><body><p>hi</p></body></html>")
		}))
		defer server.Close()

		if _, err := NewLocal().Fetch(context.Background(), server.URL); err == nil {
			t.Error("want error for near-empty page")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := NewLocal().Fetch(ctx, "http://unreachable.invalid"); err == nil {
			t.Error("want error for canceled context")
		}
	})
}

func TestProviderNames(t *testing.T) {
	t.Parallel()

	if got := NewRemote("", "").Name(); got != "remote" {
		t.Errorf("remote name = %q", got)
	}
	if got := NewLocal().Name(); got != "local" {
		t.Errorf("local name = %q", got)
	}
}
