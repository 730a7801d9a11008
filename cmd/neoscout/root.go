package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	service "github.com/kianm/neoscout/internal/app"
	"github.com/kianm/neoscout/internal/config"
	"github.com/kianm/neoscout/pkg/logger"
)

// rootFlags are shared by every verb.
type rootFlags struct {
	neoPath  string
	cadPath  string
	logLevel string
}

func rootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "neoscout",
		Short:         "Explore near-Earth objects and their close approaches",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.neoPath, "neofile", "", "path to the NEO catalog CSV")
	cmd.PersistentFlags().StringVar(&flags.cadPath, "cadfile", "", "path to the close-approach JSON")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log verbosity: debug, info, warn, error")

	cmd.AddCommand(inspectCommand(flags))
	cmd.AddCommand(queryCommand(flags))

	return cmd
}

// setup loads config, initializes logging, and returns a loaded service.
// Flags win over config file and environment.
func setup(ctx context.Context, flags *rootFlags) (*service.Service, *config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if flags.neoPath != "" {
		cfg.NEOPath = flags.neoPath
	}
	if flags.cadPath != "" {
		cfg.CADPath = flags.cadPath
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	if err := logger.Init(); err != nil {
		return nil, nil, fmt.Errorf("initialize logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		return nil, nil, err
	}

	svc := service.New(
		service.WithNEOPath(cfg.NEOPath),
		service.WithCADPath(cfg.CADPath),
	)
	if err := svc.Load(ctx); err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}
