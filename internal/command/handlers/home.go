// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"

	"github.com/bryonwausau/collabmush/internal/command"
)

// HomeHandler handles @home. Without an equals sign it reports the object's
// home; with one it sets it.
// Syntax: @home <object>[ = <destination>]
func HomeHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@home"
	objQuery, destQuery, found := command.SplitEquals(exec.Args)
	if objQuery == "" {
		return command.ErrInvalidArgs(cmd, "@home <object>[ = <destination>]")
	}

	obj, err := resolveObject(exec, objQuery)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such object: %s\n", objQuery)
		return err
	}

	if !found {
		if obj.Home == nil {
			writeOutputf(ctx, exec, cmd, "%s has no home.\n", obj.Name)
			return nil
		}
		writeOutputf(ctx, exec, cmd, "Home of %s is %s (#%d).\n",
			obj.Name, obj.Home.Name, obj.Home.ID)
		return nil
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

	obj.Home = dest
	persistObject(ctx, exec, obj)
	writeOutputf(ctx, exec, cmd, "Home of %s set to %s (#%d).\n",
		obj.Name, dest.Name, dest.ID)
	return nil
}
