package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DescriptionPath string // .hcl file or directory; empty means built-in defaults

	Segments int // override for the number of replicated segments; negative means unset
	Steps    int
	Delta    float64

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Steps < 0 {
		return nil, errors.New("steps must not be negative")
	}
	if cfg.Steps > 0 && cfg.Delta <= 0 {
		return nil, errors.New("dt must be positive when steps are requested")
	}
	return &cfg, nil
}
