// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bryonwausau/collabmush/internal/collab"
	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/lock"
	"github.com/bryonwausau/collabmush/internal/world"
)

// CreateHandler handles @create.
// Syntax: @create <name>[;<alias>...]
func CreateHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@create"
	if strings.TrimSpace(exec.Args) == "" {
		return command.ErrInvalidArgs(cmd, "@create <name>[;<alias>...]")
	}

	obj, err := createTyped(ctx, exec, cmd, exec.Services.Config.Collab.DefaultType, exec.Args)
	if err != nil {
		return err
	}
	writeOutputf(ctx, exec, cmd, "Created: %s (#%d).\n", obj.Name, obj.ID)
	return nil
}

// DigHandler handles @dig.
// Syntax: @dig <name>[;<alias>...]
func DigHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@dig"
	if strings.TrimSpace(exec.Args) == "" {
		return command.ErrInvalidArgs(cmd, "@dig <name>[;<alias>...]")
	}

	obj, err := createTyped(ctx, exec, cmd, exec.Services.Config.Collab.RoomType, exec.Args)
	if err != nil {
		return err
	}
	writeOutputf(ctx, exec, cmd, "Dug room: %s (#%d).\n", obj.Name, obj.ID)
	return nil
}

// OpenHandler handles @open.
// Syntax: @open <name>[;<alias>...] = <destination>
func OpenHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@open"
	name, destQuery, found := command.SplitEquals(exec.Args)
	if !found || name == "" || destQuery == "" {
		return command.ErrInvalidArgs(cmd, "@open <name>[;<alias>...] = <destination>")
	}

	dest, err := resolveObject(exec, destQuery)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such destination: %s\n", destQuery)
		return err
	}

	obj, err := createTyped(ctx, exec, cmd, exec.Services.Config.Collab.ExitType, name)
	if err != nil {
		return err
	}
	obj.Destination = dest
	persistObject(ctx, exec, obj)
	writeOutputf(ctx, exec, cmd, "Opened exit %s (#%d) to %s (#%d).\n",
		obj.Name, obj.ID, dest.Name, dest.ID)
	return nil
}

// createTyped runs the shared creation path: creation lock, quota headroom,
// object creation, and ownership stamping. spec is "<name>[;<alias>...]".
func createTyped(ctx context.Context, exec *command.Execution, cmd, typeKey, spec string) (*world.Object, error) {
	svc := exec.Services
	cfg := svc.Config.Collab
	actor := exec.Actor

	tc, ok := cfg.Types[typeKey]
	if !ok {
		writeOutput(ctx, exec, cmd, "That object type is not configured.")
		return nil, command.WorldError("That object type is not configured.", collab.ErrUnknownType)
	}

	if tc.CreateLock != "" {
		passed, err := lock.CheckString(tc.CreateLock, "create", svc.Collab.Locks(),
			lock.Context{Subject: actor})
		if err != nil || !passed {
			writeOutput(ctx, exec, cmd, "You don't have permission to create that.")
			return nil, command.ErrPermissionDenied(cmd)
		}
	}

	remaining, err := svc.Collab.QuotaCheck(actor, typeKey)
	if err != nil {
		return nil, command.WorldError("That object type is not configured.", err)
	}
	if remaining < 1 {
		collab.RecordQuotaRefusal()
		slog.InfoContext(ctx, "creation refused by quota",
			"actor", actor.Name(), "type_key", typeKey)
		writeOutput(ctx, exec, cmd, "You have hit your quota for that object type.")
		return nil, command.ErrQuotaExceeded(typeKey)
	}

	parts := strings.Split(spec, ";")
	obj, err := svc.World.CreateObject(strings.TrimSpace(parts[0]), tc.TypePath)
	if err != nil {
		writeOutput(ctx, exec, cmd, "That name won't work.")
		return nil, command.WorldError("That name won't work.", err)
	}
	for _, alias := range parts[1:] {
		if a := strings.TrimSpace(alias); a != "" {
			if err := obj.AddAlias(a); err != nil {
				writeOutputf(ctx, exec, cmd, "Skipping alias %q: %s\n", a, err)
			}
		}
	}

	svc.Collab.SetOwner(actor, obj)
	persistObject(ctx, exec, obj)
	return obj, nil
}
