// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// cli carries state shared by all subcommands.
type cli struct {
	configPath string
	logLevel   string
	envFile    string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "reelmatch",
		Short: "Content-based movie recommendations",
		Long: `reelmatch answers "more like this" queries over a precomputed
item-item similarity matrix and can decorate results with TMDB posters.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup()
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file path (default: CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override the configured log level")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before configuration")

	root.AddCommand(
		newServeCmd(c),
		newTitlesCmd(c),
		newRecommendCmd(c),
		newImportCmd(c),
		newVersionCmd(),
	)

	return root
}

// setup loads .env, configuration, and the global logger.
func (c *cli) setup() error {
	if c.envFile != "" {
		// Existing environment variables win over the file.
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", c.envFile, err)
		}
	}

	cfg, err := config.LoadWithKoanfPath(c.configPath)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		if !logging.ValidLevel(c.logLevel) {
			return fmt.Errorf("invalid --log-level %q", c.logLevel)
		}
		cfg.Logging.Level = c.logLevel
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	metrics.SetAppInfo(version)

	c.cfg = cfg
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// No config needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "reelmatch %s\n", version)
			return err
		},
	}
}
