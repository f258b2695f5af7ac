package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir == "" || cfg.UserAgent == "" || cfg.Filter == "" {
		t.Errorf("expected populated defaults, got %+v", cfg)
	}
	if cfg.PageTimeout != 120*time.Second {
		t.Errorf("expected 120s page timeout, got %v", cfg.PageTimeout)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
event_url: https://tickets.example.com/events/7992
page_timeout: 30s
filter: available
row_selectors:
  - ".performance-row"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.EventURL != "https://tickets.example.com/events/7992" {
		t.Errorf("unexpected event URL: %q", cfg.EventURL)
	}
	if cfg.PageTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.PageTimeout)
	}
	if cfg.Filter != "available" {
		t.Errorf("expected filter override, got %q", cfg.Filter)
	}
	if len(cfg.RowSelectors) != 1 {
		t.Errorf("expected 1 row selector, got %v", cfg.RowSelectors)
	}
	// Untouched fields keep their defaults.
	if cfg.UserAgent == "" {
		t.Error("expected default user agent to survive")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("TICKETWATCH_EVENT_URL", "https://env.example.com/events/1")
	t.Setenv("SLACK_WEBHOOK", "https://hooks.slack.example.com/T123")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.EventURL != "https://env.example.com/events/1" {
		t.Errorf("expected env event URL, got %q", cfg.EventURL)
	}
	if cfg.SlackWebhook != "https://hooks.slack.example.com/T123" {
		t.Errorf("expected env webhook, got %q", cfg.SlackWebhook)
	}
}

func TestFinalize(t *testing.T) {
	cfg := Default()
	cfg.EventURL = "https://tickets.example.com/events/7992"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if cfg.SiteOrigin != "https://tickets.example.com" {
		t.Errorf("expected derived site origin, got %q", cfg.SiteOrigin)
	}

	explicit := Default()
	explicit.EventURL = "https://tickets.example.com/events/7992"
	explicit.SiteOrigin = "https://cdn.example.com"
	if err := explicit.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if explicit.SiteOrigin != "https://cdn.example.com" {
		t.Errorf("explicit site origin should survive, got %q", explicit.SiteOrigin)
	}
}

func TestFinalizeRejectsBadURLs(t *testing.T) {
	for _, bad := range []string{"", "not a url", "/relative/only"} {
		cfg := Default()
		cfg.EventURL = bad
		if err := cfg.Finalize(); err == nil {
			t.Errorf("expected error for event URL %q", bad)
		}
	}
}
