// SPDX-License-Identifier: MIT

// Package cli implements the lvlens command line.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlens/config"
	"github.com/katalvlaran/lvlens/cosmology"
	"github.com/katalvlaran/lvlens/internal/logging"
)

// Version is stamped at build time.
var Version = "dev"

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state resolved once per invocation.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:          "lvlens",
		Short:        "lvlens — weak-lensing observables for NFW cluster halos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML config file (optional; defaults and LVLENS_* env otherwise)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json or console")

	cmd.AddCommand(
		predictCmd(a),
		sigmaCritCmd(a),
		distanceCmd(a),
		versionCmd(),
	)

	return cmd
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	source := a.cfgPath
	if source == "" {
		source = "defaults"
	}
	log.Debug().Str("source", source).Str("command", cmd.Name()).Msg("config loaded")

	a.cfg, a.log = cfg, log

	return nil
}

// backend resolves the distance backend, honouring an override kind.
func (a *app) backend(override string) (cosmology.Backend, error) {
	if override != "" {
		a.cfg.Backend.Kind = override
		if err := a.cfg.Validate(); err != nil {
			return nil, err
		}
	}
	b, err := a.cfg.DistanceBackend()
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("backend", b.Name()).Str("requested", a.cfg.Backend.Kind).Msg("distance backend selected")

	return b, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvlens version",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "lvlens %s\n", Version)
			return err
		},
	}
}
