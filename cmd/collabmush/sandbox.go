// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/bryonwausau/collabmush/internal/collab"
	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/command/handlers"
	"github.com/bryonwausau/collabmush/internal/config"
	"github.com/bryonwausau/collabmush/internal/logging"
	"github.com/bryonwausau/collabmush/internal/observability"
	"github.com/bryonwausau/collabmush/internal/store"
	"github.com/bryonwausau/collabmush/internal/world"
)

// NewSandboxCmd creates the sandbox subcommand: an interactive single-actor
// session for exercising the building commands against a fresh world.
func NewSandboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Run an interactive building session",
		Long: `Start an interactive session as an immortal character in a fresh
world. Building commands are read line by line from stdin. When store.url
is configured, mutations are written through to PostgreSQL.`,
		RunE: runSandbox,
	}
	cmd.Flags().String("actor", "Architect", "name of the sandbox character")
	cmd.Flags().String("tier", "immortal", "privilege tier of the sandbox character")
	cmd.Flags().String("metrics-addr", "", "serve metrics and health probes on this address")
	return cmd
}

func runSandbox(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.SetDefault(cfg.Service, cfg.Log)

	actorName, _ := cmd.Flags().GetString("actor")
	tierName, _ := cmd.Flags().GetString("tier")
	tier, ok := world.ParseTier(tierName)
	if !ok {
		return oops.Code("CONFIG_INVALID").With("tier", tierName).Errorf("unknown tier: %s", tierName)
	}

	ctx := cmd.Context()
	services, actor, err := buildServices(ctx, cfg, actorName, tier)
	if err != nil {
		return err
	}

	registry := command.NewRegistry()
	handlers.RegisterAll(registry)
	dispatcher, err := command.NewDispatcher(registry)
	if err != nil {
		return err
	}

	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		obs := observability.NewServer(addr, nil)
		if _, err := obs.Start(); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := obs.Stop(shutdownCtx); err != nil {
				slog.Warn("failed to stop observability server", "error", err)
			}
		}()
	}

	cmd.Printf("Connected as %s (%s). Available commands:\n", actor.Name(), tier)
	for _, e := range registry.All() {
		cmd.Printf("  %-10s %s\n", e.Name, e.Help)
	}

	return repl(ctx, cmd, dispatcher, actor, services)
}

// buildServices wires the world, policy core, and optional store for one
// sandbox session.
func buildServices(ctx context.Context, cfg *config.Config, actorName string, tier world.Tier) (*command.Services, world.Subject, error) {
	w := world.NewWorld()
	core := collab.New(cfg.Collab, w)

	player, err := w.AddPlayer(actorName+"-account", tier)
	if err != nil {
		return nil, nil, err
	}
	actor, err := w.AddCharacter(actorName, tier, player, cfg.Collab.Types["character"].TypePath)
	if err != nil {
		return nil, nil, err
	}

	services := &command.Services{World: w, Collab: core, Config: cfg}
	if cfg.Store.URL != "" {
		pool, err := store.Connect(ctx, cfg.Store)
		if err != nil {
			return nil, nil, err
		}
		services.Repo = store.NewPostgresRepository(pool)
		slog.InfoContext(ctx, "write-through persistence enabled")
	}
	return services, actor, nil
}

func repl(ctx context.Context, cmd *cobra.Command, dispatcher *command.Dispatcher, actor world.Subject, services *command.Services) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			fmt.Fprint(out, "> ")
			continue
		case "quit", "exit":
			return nil
		}

		exec := &command.Execution{
			Actor:    actor,
			Output:   out,
			Services: services,
		}
		if err := dispatcher.Dispatch(ctx, line, exec); err != nil {
			fmt.Fprintln(out, command.PlayerMessage(err))
		}
		fmt.Fprint(out, "> ")
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return oops.Code("INPUT_FAILED").Wrap(err)
	}
	return nil
}
