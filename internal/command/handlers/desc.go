// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"

	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/world"
)

// DescHandler handles @desc, a shorthand for setting the description
// attribute through the usual prefix resolution and write check.
// Syntax: @desc <object> = <text>
func DescHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@desc"
	objQuery, text, found := command.SplitEquals(exec.Args)
	if !found || objQuery == "" {
		return command.ErrInvalidArgs(cmd, "@desc <object> = <text>")
	}

	obj, err := resolveObject(exec, objQuery)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such object: %s\n", objQuery)
		return err
	}
	if err := world.ValidateDescription(text); err != nil {
		writeOutput(ctx, exec, cmd, "That description is too long.")
		return command.WorldError("That description is too long.", err)
	}

	c := exec.Services.Collab
	name, store := c.PrefixCheck(obj, "desc")
	ok, err := c.AttrCheck(exec.Actor, obj, "write", store)
	if err != nil {
		return command.WorldError("Attribute type misconfigured.", err)
	}
	if !ok {
		writeOutput(ctx, exec, cmd, "You don't have permission to describe that.")
		return command.ErrPermissionDenied(cmd)
	}

	store.Add(name, text)
	persistAttr(ctx, exec, obj, store.Kind(), name, text)
	writeOutputf(ctx, exec, cmd, "Description of %s set.\n", obj.Name)
	return nil
}
