package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/gso-insight/gsoscan/internal/model"
)

func TestCacheGetSet(t *testing.T) {
	t.Parallel()

	c := New()
	if got := c.Get("example.com"); got != nil {
		t.Fatalf("Get on empty cache = %v, want nil", got)
	}

	want := &model.AnalysisResult{Domain: "example.com", OverallScore: 49}
	c.Set("example.com", want)

	got := c.Get("example.com")
	if got != want {
		t.Errorf("Get returned %v, want the stored pointer", got)
	}
	if got := c.Get("other.com"); got != nil {
		t.Errorf("Get for unknown domain = %v, want nil", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(
		WithTTL(time.Hour),
		WithClock(func() time.Time { return now }),
	)

	c.Set("example.com", &model.AnalysisResult{Domain: "example.com"})

	now = now.Add(59 * time.Minute)
	if c.Get("example.com") == nil {
		t.Error("entry expired before TTL elapsed")
	}

	now = now.Add(2 * time.Minute)
	if got := c.Get("example.com"); got != nil {
		t.Errorf("Get after TTL = %v, want nil", got)
	}
	if c.Len() != 0 {
		t.Errorf("Len after expired access = %d, want 0", c.Len())
	}
}

func TestCacheBound(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New(
		WithMaxEntries(3),
		WithClock(func() time.Time { return now }),
	)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("site%d.com", i), &model.AnalysisResult{})
		now = now.Add(time.Minute)
	}
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}

	c.Set("site3.com", &model.AnalysisResult{})
	if c.Len() != 3 {
		t.Errorf("Len after overflow = %d, want 3", c.Len())
	}
	if c.Get("site0.com") != nil {
		t.Error("oldest entry survived eviction")
	}
	if c.Get("site3.com") == nil {
		t.Error("newest entry missing after eviction")
	}
}

func TestCacheSetExistingDoesNotEvict(t *testing.T) {
	t.Parallel()

	c := New(WithMaxEntries(2))
	c.Set("a.com", &model.AnalysisResult{OverallScore: 1})
	c.Set("b.com", &model.AnalysisResult{OverallScore: 2})

	// Overwriting an existing key must not push out its neighbor.
	c.Set("a.com", &model.AnalysisResult{OverallScore: 3})

	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if got := c.Get("a.com"); got == nil || got.OverallScore != 3 {
		t.Errorf("Get(a.com) = %v, want overwritten result", got)
	}
	if c.Get("b.com") == nil {
		t.Error("neighbor evicted by overwrite")
	}
}
