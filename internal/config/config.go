// Package config defines tool configuration and loading.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer optional file and environment sources on top via Load.
// - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// NEOPath is the CSV catalog of near-Earth objects.
	NEOPath string `koanf:"neo_path"`

	// CADPath is the JSON document of close-approach data.
	CADPath string `koanf:"cad_path"`

	// PrintLimit caps how many query results print to stdout when no
	// output file is given.
	PrintLimit int `koanf:"print_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		NEOPath:    "data/neos.csv",
		CADPath:    "data/cad.json",
		PrintLimit: 10,
	}
}
