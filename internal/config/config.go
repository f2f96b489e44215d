// Package config defines process configuration structures and loading.
//
// Conventions:
// - Defaults come from New; an optional YAML file and env vars override them.
// - External errors are wrapped via this package's sentinel errors.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile is where structured logs go; stdout belongs to the UI.
	// Empty discards logs.
	LogFile string `koanf:"log_file"`

	// RefreshIntervalSec is the poll cadence for live data.
	RefreshIntervalSec int `koanf:"refresh_interval_sec"`

	// ChartWidth caps the rasterized chart width in columns; the detail
	// pane may shrink it further.
	ChartWidth int `koanf:"chart_width"`

	// APIBaseURL points at the NBA live-data CDN.
	APIBaseURL string `koanf:"api_base_url"`

	// RequestTimeoutSec bounds each outbound request.
	RequestTimeoutSec int `koanf:"request_timeout_sec"`

	// RateLimitPerSec throttles outbound requests.
	RateLimitPerSec float64 `koanf:"rate_limit_per_sec"`

	// WatchlistPath overrides the watch-list file location. Empty means
	// the user config dir.
	WatchlistPath string `koanf:"watchlist_path"`

	// Notifications toggles desktop score alerts.
	Notifications bool `koanf:"notifications"`

	// MetricsAddr exposes Prometheus metrics when set, e.g. ":9091".
	// Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		RefreshIntervalSec: 10,
		ChartWidth:         120,
		APIBaseURL:         "https://cdn.nba.com/static/json/liveData",
		RequestTimeoutSec:  15,
		RateLimitPerSec:    4,
		Notifications:      true,
	}
}

// RefreshInterval returns the poll cadence as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSec) * time.Second
}

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}
