// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"
	"strings"

	"github.com/bryonwausau/collabmush/internal/command"
)

// DestroyHandler handles @destroy. Only owners may destroy; privileged
// non-owners must say @destroy/force and still pass the permission check, so
// a wizard cannot vaporize someone's work by typo.
// Syntax: @destroy[/force] <object>
func DestroyHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@destroy"
	target := strings.TrimSpace(exec.Args)
	if target == "" {
		return command.ErrInvalidArgs(cmd, "@destroy[/force] <object>")
	}

	obj, err := resolveObject(exec, target)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such object: %s\n", target)
		return err
	}
	if obj.Character != nil {
		writeOutput(ctx, exec, cmd, "You can't destroy a character's body.")
		return command.ErrPermissionDenied(cmd)
	}

	c := exec.Services.Collab
	owner := c.IsOwner(exec.Actor, obj, true) || c.IsOwner(exec.Actor, obj, false)
	if !owner {
		_, sw := command.StripSwitch(exec.InvokedAs)
		if sw != "force" || !c.CollabCheck(exec.Actor, obj) {
			writeOutput(ctx, exec, cmd, "You don't own that.")
			return command.ErrPermissionDenied(cmd)
		}
	}

	if err := exec.Services.World.DeleteObject(obj.ID); err != nil {
		writeOutput(ctx, exec, cmd, "Failed to destroy object.")
		return command.WorldError("Failed to destroy object.", err)
	}
	persistDelete(ctx, exec, obj.ID)
	writeOutputf(ctx, exec, cmd, "Destroyed: %s (#%d).\n", obj.Name, obj.ID)
	return nil
}
