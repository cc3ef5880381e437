package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default APIURL points at hosted scrape endpoint", func(t *testing.T) {
		t.Parallel()
		if cfg.APIURL != DefaultScrapeAPIURL {
			t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultScrapeAPIURL)
		}
	})

	t.Run("default timeouts are 20 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.RemoteTimeout != 20*time.Second || cfg.LocalTimeout != 20*time.Second {
			t.Errorf("timeouts = %v/%v, want 20s each", cfg.RemoteTimeout, cfg.LocalTimeout)
		}
	})

	t.Run("default cache TTL is 24 hours", func(t *testing.T) {
		t.Parallel()
		if cfg.CacheTTL != 24*time.Hour {
			t.Errorf("CacheTTL = %v, want 24h", cfg.CacheTTL)
		}
	})

	t.Run("default batch size is 5", func(t *testing.T) {
		t.Parallel()
		if cfg.BatchSize != 5 {
			t.Errorf("BatchSize = %d, want 5", cfg.BatchSize)
		}
	})

	t.Run("default minimum content length is 100", func(t *testing.T) {
		t.Parallel()
		if cfg.MinContentLength != 100 {
			t.Errorf("MinContentLength = %d, want 100", cfg.MinContentLength)
		}
	})

	t.Run("no API key by default", func(t *testing.T) {
		t.Parallel()
		if cfg.APIKey != "" {
			t.Errorf("APIKey = %q, want empty", cfg.APIKey)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.Domains = []string{"acme.example"}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid config", mutate: func(*Config) {}, wantErr: nil},
		{
			name:    "no domains",
			mutate:  func(c *Config) { c.Domains = nil },
			wantErr: ErrNoDomain,
		},
		{
			name:    "conflicting report formats",
			mutate:  func(c *Config) { c.JSONReport = true; c.MarkdownReport = true },
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.RemoteTimeout = -time.Second },
			wantErr: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvAPIURL, "https://scrape.internal/v1")

	cfg := NewConfig()
	cfg.LoadEnv()

	if cfg.APIKey != "env-key" {
		t.Errorf("APIKey = %q, want env-key", cfg.APIKey)
	}
	if cfg.APIURL != "https://scrape.internal/v1" {
		t.Errorf("APIURL = %q, want override from environment", cfg.APIURL)
	}
}

func TestLoadEnvDoesNotOverwriteExplicitValues(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	cfg := NewConfig()
	cfg.APIKey = "flag-key"
	cfg.LoadEnv()

	if cfg.APIKey != "flag-key" {
		t.Errorf("APIKey = %q, want explicit value preserved", cfg.APIKey)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultConfigFile)
	content := `
defaults:
  industry: technology
sites:
  clinicare.example:
    industry: healthcare
    cookie: "session=abc"
    headers:
      X-Client: gsoscan
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cf, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}

	site := cf.GetSiteConfig("clinicare.example")
	if site.Industry != "healthcare" {
		t.Errorf("Industry = %q, want healthcare", site.Industry)
	}
	if site.Cookie != "session=abc" {
		t.Errorf("Cookie = %q, want session=abc", site.Cookie)
	}
	if site.Headers["X-Client"] != "gsoscan" {
		t.Errorf("Headers = %v, want X-Client set", site.Headers)
	}

	// Unknown domains fall back to defaults.
	other := cf.GetSiteConfig("acme.example")
	if other.Industry != "technology" {
		t.Errorf("default Industry = %q, want technology", other.Industry)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path wins", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("sites: {}"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile = %q, want %q", got, path)
		}
	})

	t.Run("missing explicit path returns empty", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}
