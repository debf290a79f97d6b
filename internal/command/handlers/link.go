// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"
	"strings"

	"github.com/bryonwausau/collabmush/internal/command"
)

// LinkHandler handles @link.
// Syntax: @link <exit> = <destination>
func LinkHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@link"
	objQuery, destQuery, found := command.SplitEquals(exec.Args)
	if !found || objQuery == "" || destQuery == "" {
		return command.ErrInvalidArgs(cmd, "@link <exit> = <destination>")
	}

	obj, err := resolveObject(exec, objQuery)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such object: %s\n", objQuery)
		return err
	}
	dest, err := resolveObject(exec, destQuery)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such destination: %s\n", destQuery)
		return err
	}

	if !exec.Services.Collab.CollabCheck(exec.Actor, obj) {
		writeOutput(ctx, exec, cmd, "You don't have permission to modify that.")
		return command.ErrPermissionDenied(cmd)
	}

	obj.Destination = dest
	persistObject(ctx, exec, obj)
	writeOutputf(ctx, exec, cmd, "Linked %s (#%d) to %s (#%d).\n",
		obj.Name, obj.ID, dest.Name, dest.ID)
	return nil
}

// UnlinkHandler handles @unlink.
// Syntax: @unlink <exit>
func UnlinkHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@unlink"
	target := strings.TrimSpace(exec.Args)
	if target == "" {
		return command.ErrInvalidArgs(cmd, "@unlink <exit>")
	}

	obj, err := resolveObject(exec, target)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such object: %s\n", target)
		return err
	}

	if !exec.Services.Collab.CollabCheck(exec.Actor, obj) {
		writeOutput(ctx, exec, cmd, "You don't have permission to modify that.")
		return command.ErrPermissionDenied(cmd)
	}

	if obj.Destination == nil {
		writeOutputf(ctx, exec, cmd, "%s isn't linked to anything.\n", obj.Name)
		return nil
	}
	obj.Destination = nil
	persistObject(ctx, exec, obj)
	writeOutputf(ctx, exec, cmd, "Unlinked %s (#%d).\n", obj.Name, obj.ID)
	return nil
}
