package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) from path, or NBACLI_CONFIG when path is empty
//  3. env (prefix NBACLI_)
func Load(path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path == "" {
		path = os.Getenv("NBACLI_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: NBACLI_LOG_LEVEL, NBACLI_REFRESH_INTERVAL_SEC, ...
	// Keys keep their underscores to match the koanf tags on the struct.
	envProvider := env.Provider("NBACLI_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "nbacli_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.RefreshIntervalSec <= 0 {
		return nil, fmt.Errorf("%w: refresh_interval_sec must be positive", ErrInvalidConfig)
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("%w: api_base_url must not be empty", ErrInvalidConfig)
	}
	if cfg.RequestTimeoutSec <= 0 {
		return nil, fmt.Errorf("%w: request_timeout_sec must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
