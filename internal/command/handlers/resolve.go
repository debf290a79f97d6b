// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"strconv"
	"strings"

	"github.com/samber/oops"

	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/world"
)

// resolveObject turns a player-supplied reference into an object. "#<id>"
// resolves by id, "me" resolves to the actor's body, anything else matches
// names and aliases (wildcards allowed). Multiple matches resolve to the
// lowest id.
func resolveObject(exec *command.Execution, query string) (*world.Object, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, command.ErrNotFound(query)
	}

	if strings.EqualFold(query, "me") {
		if ch, ok := exec.Actor.(*world.Character); ok && ch.Body() != nil {
			return ch.Body(), nil
		}
		return nil, command.ErrNotFound(query)
	}

	if raw, found := strings.CutPrefix(query, "#"); found {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, command.ErrNotFound(query)
		}
		if obj, ok := exec.Services.World.Object(id); ok {
			return obj, nil
		}
		return nil, command.ErrNotFound(query)
	}

	matches, err := exec.Services.World.Search(query)
	if err != nil || len(matches) == 0 {
		return nil, command.ErrNotFound(query)
	}
	return matches[0], nil
}

// resolveSubject turns a player-supplied reference into an acting subject.
// Names resolve to characters first, then player accounts; "#<id>" resolves
// through the object table and is accepted only for character bodies. Plain
// objects cannot own things.
func resolveSubject(exec *command.Execution, query string) (world.Subject, error) {
	query = strings.TrimSpace(query)
	if strings.EqualFold(query, "me") {
		return exec.Actor, nil
	}

	if strings.HasPrefix(query, "#") {
		obj, err := resolveObject(exec, query)
		if err != nil {
			return nil, err
		}
		if obj.Character == nil {
			return nil, oops.Code(command.CodeInvalidArgs).
				With("target", query).
				With("usage", "@chown <object> = <character or player>").
				Errorf("only players and characters can own objects")
		}
		return obj.Character, nil
	}

	if ch := exec.Services.World.CharacterByName(query); ch != nil {
		return ch, nil
	}
	if p := exec.Services.World.PlayerByName(query); p != nil {
		return p, nil
	}
	return nil, command.ErrNotFound(query)
}
