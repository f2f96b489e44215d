package config

import (
	"errors"
)

// Sentinel errors for dashboard configuration, matchable via errors.Is.
var (
	// ErrInvalidConfig marks a loaded configuration that fails validation.
	ErrInvalidConfig = errors.New("invalid dashboard config")

	// ErrLoadConfig marks a failure reading or decoding a config source.
	ErrLoadConfig = errors.New("load dashboard config failed")
)
