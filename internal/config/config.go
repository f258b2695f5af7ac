// Package config holds the explicit configuration for a ticketwatch run.
//
// Configuration is assembled in three layers: compiled defaults, an
// optional YAML file, and environment variables. The resulting struct is
// passed into the pipeline at construction time; no package reads ambient
// process state during extraction.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the watcher configuration.
type Config struct {
	// EventURL is the ticketing page to watch.
	EventURL string `yaml:"event_url"`
	// SiteOrigin resolves site-relative booking links. Derived from
	// EventURL when empty.
	SiteOrigin string `yaml:"site_origin"`
	// UserAgent identifies the watcher to the site.
	UserAgent string `yaml:"user_agent"`
	// DataDir stores run snapshots.
	DataDir string `yaml:"data_dir"`
	// PageTimeout bounds page navigation and settling.
	PageTimeout time.Duration `yaml:"page_timeout"`
	// Filter is the default status filter for the available view.
	Filter string `yaml:"filter"`
	// SlackWebhook receives notifications when set.
	SlackWebhook string `yaml:"slack_webhook"`
	// RowSelectors and FallbackSelectors override the extraction queries.
	RowSelectors      []string `yaml:"row_selectors"`
	FallbackSelectors []string `yaml:"fallback_selectors"`
	// Debug enables verbose logging.
	Debug bool `yaml:"debug"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		UserAgent:   "ticketwatch/1.0 (github.com/maskins/ticketwatch)",
		DataDir:     "~/.local/share/ticketwatch",
		PageTimeout: 120 * time.Second,
		Filter:      "not:sold_out,not:not_on_sale,not:unknown",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto the configuration.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TICKETWATCH_EVENT_URL"); v != "" {
		c.EventURL = v
	}
	if v := os.Getenv("TICKETWATCH_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TICKETWATCH_FILTER"); v != "" {
		c.Filter = v
	}
	if v := os.Getenv("SLACK_WEBHOOK"); v != "" {
		c.SlackWebhook = v
	}
}

// Finalize validates the configuration and derives defaults that depend on
// other fields, such as the site origin.
func (c *Config) Finalize() error {
	if c.EventURL == "" {
		return fmt.Errorf("event URL is required")
	}
	parsed, err := url.Parse(c.EventURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid event URL %q", c.EventURL)
	}
	if c.SiteOrigin == "" {
		c.SiteOrigin = parsed.Scheme + "://" + parsed.Host
	}
	if c.PageTimeout <= 0 {
		c.PageTimeout = Default().PageTimeout
	}
	return nil
}
