// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/bryonwausau/collabmush/internal/config"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the collabmush CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collabmush",
		Short: "collabmush - cooperative building for a multi-user text world",
		Long: `collabmush manages the cooperative-building layer of a MUSH:
tag-based object ownership, per-type creation quotas, lock-string
permissions, and the building commands on top of them.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("log.level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log.format", "", "log format (json, text)")
	cmd.PersistentFlags().String("store.url", "", "PostgreSQL connection URL")

	cmd.AddCommand(NewSandboxCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewValidateConfigCmd())

	return cmd
}

// loadConfig builds the effective configuration from defaults, the
// --config file, and flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(configFile, cmd.Flags())
}
