// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/world"
	"github.com/bryonwausau/collabmush/pkg/errutil"
)

func TestDestroyHandler_OwnerDestroys(t *testing.T) {
	env := newTestEnv(t)
	builder := env.character(t, "alice", world.TierBuilder)
	obj := env.createOwned(t, builder, "widget")

	exec, buf := env.exec(builder, "@destroy", fmt.Sprintf("#%d", obj.ID))
	require.NoError(t, DestroyHandler(t.Context(), exec))
	assert.Contains(t, buf.String(), "Destroyed: widget")

	_, ok := env.world.Object(obj.ID)
	assert.False(t, ok)
}

func TestDestroyHandler_NonOwnerDenied(t *testing.T) {
	env := newTestEnv(t)
	builder := env.character(t, "alice", world.TierBuilder)
	stranger := env.character(t, "bob", world.TierBuilder)
	obj := env.createOwned(t, builder, "widget")

	exec, buf := env.exec(stranger, "@destroy", "widget")
	err := DestroyHandler(t.Context(), exec)
	errutil.AssertErrorCode(t, err, command.CodePermissionDenied)
	assert.Contains(t, buf.String(), "You don't own that.")

	_, ok := env.world.Object(obj.ID)
	assert.True(t, ok)
}

func TestDestroyHandler_ImmortalNeedsForce(t *testing.T) {
	env := newTestEnv(t)
	builder := env.character(t, "alice", world.TierBuilder)
	imm := env.character(t, "deity", world.TierImmortal)
	obj := env.createOwned(t, builder, "widget")

	exec, _ := env.exec(imm, "@destroy", "widget")
	err := DestroyHandler(t.Context(), exec)
	errutil.AssertErrorCode(t, err, command.CodePermissionDenied)

	exec, _ = env.exec(imm, "@destroy/force", "widget")
	require.NoError(t, DestroyHandler(t.Context(), exec))
	_, ok := env.world.Object(obj.ID)
	assert.False(t, ok)
}

func TestDestroyHandler_ForceStillChecksPermission(t *testing.T) {
	env := newTestEnv(t)
	builder := env.character(t, "alice", world.TierBuilder)
	stranger := env.character(t, "bob", world.TierBuilder)
	obj := env.createOwned(t, builder, "widget")

	exec, _ := env.exec(stranger, "@destroy/force", "widget")
	err := DestroyHandler(t.Context(), exec)
	errutil.AssertErrorCode(t, err, command.CodePermissionDenied)

	_, ok := env.world.Object(obj.ID)
	assert.True(t, ok)
}

func TestDestroyHandler_CharacterBodyRefused(t *testing.T) {
	env := newTestEnv(t)
	imm := env.character(t, "deity", world.TierImmortal)
	victim := env.character(t, "bob", world.TierNormal)

	exec, buf := env.exec(imm, "@destroy/force", fmt.Sprintf("#%d", victim.Body().ID))
	err := DestroyHandler(t.Context(), exec)
	errutil.AssertErrorCode(t, err, command.CodePermissionDenied)
	assert.Contains(t, buf.String(), "character's body")
}

func TestDestroyHandler_UnknownObject(t *testing.T) {
	env := newTestEnv(t)
	builder := env.character(t, "alice", world.TierBuilder)

	exec, _ := env.exec(builder, "@destroy", "ghost")
	err := DestroyHandler(t.Context(), exec)
	errutil.AssertErrorCode(t, err, command.CodeNotFound)
}
