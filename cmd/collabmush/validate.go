// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package main

import (
	"github.com/spf13/cobra"
)

// NewValidateConfigCmd creates the validate-config subcommand.
func NewValidateConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-config",
		Short: "Validate the configuration file",
		Long: `Load the configuration file named by --config, validate it against
the JSON Schema, and check cross-field consistency.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cmd.Printf("Configuration OK: %d object types, %d attribute types.\n",
				len(cfg.Collab.Types), len(cfg.Collab.PropTypes))
			return nil
		},
	}
}
