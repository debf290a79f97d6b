// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"

	"github.com/bryonwausau/collabmush/internal/command"
)

// SetHandler handles @set in three modes: view without an equals sign, remove
// with an empty right side, write otherwise. The attribute name goes through
// prefix resolution, so wiz_foo lands in the wiz store and _foo in the raw
// store.
// Syntax: @set <object>/<attribute>[ = <value>]
func SetHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@set"
	const usage = "@set <object>/<attribute>[ = <value>]"

	left, value, hasEquals := command.SplitEquals(exec.Args)
	objQuery, attr, found := command.SplitSlash(left)
	if !found || objQuery == "" || attr == "" {
		return command.ErrInvalidArgs(cmd, usage)
	}

	obj, err := resolveObject(exec, objQuery)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such object: %s\n", objQuery)
		return err
	}

	c := exec.Services.Collab
	name, store := c.PrefixCheck(obj, attr)

	switch {
	case !hasEquals:
		ok, err := c.AttrCheck(exec.Actor, obj, "read", store)
		if err != nil {
			return command.WorldError("Attribute type misconfigured.", err)
		}
		if !ok {
			writeOutput(ctx, exec, cmd, "You don't have permission to read that.")
			return command.ErrPermissionDenied(cmd)
		}
		v, isSet := store.Get(name)
		if !isSet {
			writeOutputf(ctx, exec, cmd, "%s is not set on %s.\n", attr, obj.Name)
			return nil
		}
		writeOutputf(ctx, exec, cmd, "%s/%s = %s\n", obj.Name, attr, formatValue(v))
		return nil

	case value == "":
		if !store.Has(name) {
			writeOutputf(ctx, exec, cmd, "%s is not set on %s.\n", attr, obj.Name)
			return nil
		}
		ok, err := c.AttrCheck(exec.Actor, obj, "clear", store)
		if err != nil {
			return command.WorldError("Attribute type misconfigured.", err)
		}
		if !ok {
			writeOutput(ctx, exec, cmd, "You don't have permission to change that.")
			return command.ErrPermissionDenied(cmd)
		}
		store.Remove(name)
		persistAttrDelete(ctx, exec, obj, store.Kind(), name)
		writeOutputf(ctx, exec, cmd, "Removed %s from %s.\n", attr, obj.Name)
		return nil

	default:
		parsed, err := parseValue(value)
		if err != nil {
			writeOutput(ctx, exec, cmd, "That value could not be parsed.")
			return command.ErrMalformedValue(attr, err)
		}
		ok, err := c.AttrCheck(exec.Actor, obj, "write", store)
		if err != nil {
			return command.WorldError("Attribute type misconfigured.", err)
		}
		if !ok {
			writeOutput(ctx, exec, cmd, "You don't have permission to change that.")
			return command.ErrPermissionDenied(cmd)
		}
		store.Add(name, parsed)
		persistAttr(ctx, exec, obj, store.Kind(), name, parsed)
		writeOutputf(ctx, exec, cmd, "Set %s on %s.\n", attr, obj.Name)
		return nil
	}
}
