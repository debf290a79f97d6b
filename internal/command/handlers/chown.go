// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"

	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/lock"
	"github.com/bryonwausau/collabmush/internal/world"
)

// ChownHandler handles @chown. The actor must pass the object's chown lock
// (or own it); giving an object to somebody else additionally needs the
// object's chown_to lock to admit the recipient, or the privilege override
// to admit the actor. Ownership is unchanged on every refusal.
// Syntax: @chown <object> = <character or player>
func ChownHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@chown"
	objQuery, targetQuery, found := command.SplitEquals(exec.Args)
	if !found || objQuery == "" || targetQuery == "" {
		return command.ErrInvalidArgs(cmd, "@chown <object> = <character or player>")
	}

	obj, err := resolveObject(exec, objQuery)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such object: %s\n", objQuery)
		return err
	}
	target, err := resolveSubject(exec, targetQuery)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "Can't give things to %s.\n", targetQuery)
		return err
	}

	c := exec.Services.Collab
	if !c.CollabCheck(exec.Actor, obj, "chown") {
		writeOutput(ctx, exec, cmd, "You don't have permission to do that.")
		return command.ErrPermissionDenied(cmd)
	}

	if !world.SameSubject(target.Account(), exec.Actor.Account()) &&
		!chownToAllowed(exec, obj, target) {
		writeOutputf(ctx, exec, cmd, "%s isn't accepting that object.\n", target.Name())
		return command.ErrPermissionDenied(cmd)
	}

	c.TransferOwner(target, obj)
	persistOwnership(ctx, exec, obj)
	writeOutputf(ctx, exec, cmd, "Ownership of %s (#%d) transferred to %s.\n",
		obj.Name, obj.ID, target.Name())
	return nil
}

// chownToAllowed reports whether obj may be handed to target: the object's
// chown_to lock admits the recipient, or the configured override admits the
// actor.
func chownToAllowed(exec *command.Execution, obj *world.Object, target world.Subject) bool {
	c := exec.Services.Collab
	if lockstring, ok := obj.Lock("chown_to"); ok {
		passed, err := lock.CheckString(lockstring, "chown_to", c.Locks(),
			lock.Context{Subject: target, Object: obj})
		if err == nil && passed {
			return true
		}
	}
	passed, err := lock.CheckString(exec.Services.Config.Collab.OverrideLock, "override",
		c.Locks(), lock.Context{Subject: exec.Actor, Object: obj})
	return err == nil && passed
}
