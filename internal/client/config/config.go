// Package config loads runtime configuration for the notekeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-e string   directory (relative to cwd) for downloaded exports
package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// Config holds runtime settings for the notekeeper CLI.
type Config struct {
	ServerBaseURL string
	ExportDir     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080"
	c.ExportDir = "exports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}

func parseFlags(config *Config) {
	fs := flag.NewFlagSet("cli", flag.ContinueOnError)

	addr := fs.String("a", config.ServerBaseURL, "base URL of the backend HTTP API")
	exportDir := fs.String("e", config.ExportDir, "directory for downloaded exports")

	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-e"})
	if err := fs.Parse(args); err != nil {
		return
	}

	config.ServerBaseURL = *addr
	config.ExportDir = *exportDir
}
