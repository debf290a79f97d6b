// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package command

import (
	"context"
	"log/slog"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("collabmush/command")

// Dispatcher parses input, resolves the command, and executes it.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) (*Dispatcher, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	return &Dispatcher{registry: registry}, nil
}

// Dispatch parses and executes a command. Each dispatch gets a fresh
// execution id so log lines from one command can be correlated.
func (d *Dispatcher) Dispatch(ctx context.Context, input string, exec *Execution) (err error) {
	if exec.Actor == nil {
		return ErrNoActor()
	}

	parsed, err := Parse(input)
	if err != nil {
		return err
	}
	name, sw := StripSwitch(parsed.Name)

	exec.ID = ulid.Make()

	ctx, span := tracer.Start(ctx, "command.execute",
		trace.WithAttributes(
			attribute.String("command.name", name),
			attribute.String("execution.id", exec.ID.String()),
			attribute.String("actor.name", exec.Actor.Name()),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	entry, ok := d.registry.Get(name)
	if !ok {
		err = ErrUnknownCommand(name)
		recordCommand(name, err)
		return err
	}

	exec.Args = parsed.Args
	exec.InvokedAs = parsed.Name
	if sw != "" {
		span.SetAttributes(attribute.String("command.switch", sw))
	}

	err = entry.Handler(ctx, exec)
	recordCommand(name, err)
	if err != nil {
		slog.WarnContext(ctx, "command execution failed",
			"command", name,
			"execution_id", exec.ID.String(),
			"actor", exec.Actor.Name(),
			"error", err,
		)
	}
	return err
}
