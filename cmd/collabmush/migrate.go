// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package main

import (
	"strconv"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/bryonwausau/collabmush/internal/store"
)

// NewMigrateCmd creates the migrate subcommand tree.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE:  runMigrateUp,
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations (drops data)",
			RunE:  runMigrateDown,
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE:  runMigrateStatus,
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "Set the migration version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE:  runMigrateForce,
		},
	)
	return cmd
}

func openMigrator(cmd *cobra.Command) (*store.Migrator, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Store.URL == "" {
		return nil, oops.Code("CONFIG_INVALID").Errorf("store.url is required for migrations")
	}
	return store.NewMigrator(cfg.Store.URL)
}

func runMigrateUp(cmd *cobra.Command, _ []string) error {
	m, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck // close error is not actionable here

	if err := m.Up(); err != nil {
		return err
	}
	cmd.Println("Migrations applied.")
	return nil
}

func runMigrateDown(cmd *cobra.Command, _ []string) error {
	m, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck // close error is not actionable here

	if err := m.Down(); err != nil {
		return err
	}
	cmd.Println("Migrations rolled back.")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, _ []string) error {
	m, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck // close error is not actionable here

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	cmd.Printf("Current version: %d (dirty: %t)\n", version, dirty)

	applied, err := m.AppliedMigrations()
	if err != nil {
		return err
	}
	pending, err := m.PendingMigrations()
	if err != nil {
		return err
	}
	printMigrationList(cmd, "Applied", applied)
	printMigrationList(cmd, "Pending", pending)
	return nil
}

func printMigrationList(cmd *cobra.Command, label string, versions []uint) {
	cmd.Printf("%s: %d\n", label, len(versions))
	for _, v := range versions {
		name, err := store.MigrationName(v)
		if err != nil || name == "" {
			name = "(unknown)"
		}
		cmd.Printf("  %06d %s\n", v, name)
	}
}

func runMigrateForce(cmd *cobra.Command, args []string) error {
	version, err := strconv.Atoi(args[0])
	if err != nil {
		return oops.Code("INVALID_VERSION").With("arg", args[0]).Wrapf(err, "parsing version")
	}

	m, err := openMigrator(cmd)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck // close error is not actionable here

	if err := m.Force(version); err != nil {
		return err
	}
	cmd.Printf("Forced version to %d.\n", version)
	return nil
}
