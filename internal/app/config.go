package app

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPaths []string // hcl files or directories

	// Ad-hoc query. Known alone solves; Known with Target explains how Target
	// is derived; Target with Inputs simulates. With none of them set every
	// scenario from the graph files runs.
	Known  []string
	Target string
	Inputs map[string]cty.Value

	Output    string // text or json
	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.GraphPaths) == 0 {
		return nil, errors.New("GraphPaths is a required configuration field and cannot be empty")
	}
	if len(cfg.Inputs) > 0 && cfg.Target == "" {
		return nil, errors.New("inputs require a target to simulate")
	}
	if len(cfg.Inputs) > 0 && len(cfg.Known) > 0 {
		return nil, errors.New("known labels and input values cannot be combined; inputs are known by definition")
	}

	if cfg.Output == "" {
		cfg.Output = "text"
	}
	if cfg.Output != "text" && cfg.Output != "json" {
		return nil, fmt.Errorf("invalid output %q: must be 'text' or 'json'", cfg.Output)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
