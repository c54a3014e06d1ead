package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Lab restricts generation to a single lab identifier. Empty means all
	// labs in the manifest.
	Lab string
	// Cloud is the target cloud provider, "aws" or "azure".
	Cloud string
	// StateDir is the project root containing <cloud>/<lab-dir> terraform
	// directories and the walkthrough markdown files.
	StateDir string
	// ManifestPath optionally overrides the built-in lab manifest.
	ManifestPath string
	// Clean removes previously generated reports instead of generating.
	Clean bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates the raw configuration and returns it, or an error
// describing the first invalid field.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.StateDir == "" {
		return nil, errors.New("StateDir is a required configuration field and cannot be empty")
	}
	switch cfg.Cloud {
	case "aws", "azure":
	default:
		return nil, fmt.Errorf("invalid cloud provider %q: must be 'aws' or 'azure'", cfg.Cloud)
	}

	return &cfg, nil
}
