// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"context"
	"sort"
	"strings"

	"github.com/bryonwausau/collabmush/internal/collab"
	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/world"
)

// ExamineHandler handles @examine: the object overview plus every attribute
// store the actor may read. An object whose owner no longer resolves shows
// ORPHANED rather than an error.
// Syntax: @examine <object>
func ExamineHandler(ctx context.Context, exec *command.Execution) error {
	const cmd = "@examine"
	target := strings.TrimSpace(exec.Args)
	if target == "" {
		return command.ErrInvalidArgs(cmd, "@examine <object>")
	}

	obj, err := resolveObject(exec, target)
	if err != nil {
		writeOutputf(ctx, exec, cmd, "No such object: %s\n", target)
		return err
	}

	c := exec.Services.Collab
	writeOutputf(ctx, exec, cmd, "%s (#%d) [%s]\n", obj.Name, obj.ID, obj.TypePath)
	if aliases := obj.Aliases(); len(aliases) > 0 {
		writeOutputf(ctx, exec, cmd, "Aliases: %s\n", strings.Join(aliases, ", "))
	}

	owner := c.GetOwner(obj, collab.OwnerOpts{})
	if owner == nil {
		writeOutput(ctx, exec, cmd, "Owner: ORPHANED")
	} else {
		writeOutputf(ctx, exec, cmd, "Owner: %s\n", owner.Name())
		trueOwner := c.GetOwner(obj, collab.OwnerOpts{PlayerCheck: true})
		if trueOwner != nil && !world.SameSubject(trueOwner, owner) {
			writeOutputf(ctx, exec, cmd, "True owner: %s\n", trueOwner.Name())
		}
	}
	if c.Protected(obj) {
		writeOutput(ctx, exec, cmd, "Protected.")
	}

	if obj.Destination != nil {
		writeOutputf(ctx, exec, cmd, "Destination: %s (#%d)\n",
			obj.Destination.Name, obj.Destination.ID)
	}
	if obj.Home != nil {
		writeOutputf(ctx, exec, cmd, "Home: %s (#%d)\n", obj.Home.Name, obj.Home.ID)
	}

	locks := obj.Locks()
	if len(locks) > 0 {
		names := make([]string, 0, len(locks))
		for name := range locks {
			names = append(names, name)
		}
		sort.Strings(names)
		writeOutput(ctx, exec, cmd, "Locks:")
		for _, name := range names {
			writeOutputf(ctx, exec, cmd, "  %s: %s\n", name, locks[name])
		}
	}

	kinds := make([]string, 0, len(exec.Services.Config.Collab.PropTypes))
	for kind := range exec.Services.Config.Collab.PropTypes {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		store := obj.Store(kind)
		attrs := store.All()
		if len(attrs) == 0 {
			continue
		}
		readable, err := c.AttrCheck(exec.Actor, obj, "read", store)
		if err != nil || !readable {
			continue
		}
		label := kind
		if label == "" {
			label = "raw"
		}
		writeOutputf(ctx, exec, cmd, "[%s]\n", label)
		for _, a := range attrs {
			writeOutputf(ctx, exec, cmd, "  %s = %s\n", a.Name, formatValue(a.Value))
		}
	}
	return nil
}
