// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

// Package command provides the building-command registry, parser, and
// dispatch system.
package command

import (
	"context"
	"io"

	"github.com/oklog/ulid/v2"

	"github.com/bryonwausau/collabmush/internal/collab"
	"github.com/bryonwausau/collabmush/internal/config"
	"github.com/bryonwausau/collabmush/internal/store"
	"github.com/bryonwausau/collabmush/internal/world"
)

// Handler is the function signature for command handlers.
type Handler func(ctx context.Context, exec *Execution) error

// Entry is a registered command.
type Entry struct {
	Name    string  // canonical name (e.g., "@create")
	Handler Handler // command implementation
	Help    string  // short description (one line)
	Usage   string  // usage pattern (e.g., "@create <name>")
}

// Execution carries the context of one command invocation.
type Execution struct {
	ID        ulid.ULID // per-execution id for log correlation
	Actor     world.Subject
	Args      string
	InvokedAs string
	Output    io.Writer
	Services  *Services
}

// Services provides access to core services for command handlers.
// Handlers must not keep references to services beyond the execution.
type Services struct {
	World  *world.World
	Collab *collab.Core
	Config *config.Config
	// Repo persists world mutations when set. Nil runs memory-only.
	Repo store.Repository
}
