package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the tool's environment variables.
const envPrefix = "NEOSCOUT_"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if NEOSCOUT_CONFIG is set
//  3. env (prefix NEOSCOUT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: NEOSCOUT_NEO_PATH, NEOSCOUT_LOG_LEVEL, ...
	// Map env keys like NEOSCOUT_NEO_PATH -> neo_path (flat keys), keeping
	// underscores to match the koanf tags on the struct.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.NEOPath == "" {
		return nil, fmt.Errorf("%w: neo_path must not be empty", ErrInvalidConfig)
	}
	if cfg.CADPath == "" {
		return nil, fmt.Errorf("%w: cad_path must not be empty", ErrInvalidConfig)
	}
	return &cfg, nil
}
