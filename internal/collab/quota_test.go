// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package collab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryonwausau/collabmush/internal/config"
	"github.com/bryonwausau/collabmush/internal/world"
)

const objectType = "types.objects.Object"

func ownObject(t *testing.T, core *Core, w *world.World, actor world.Subject) *world.Object {
	t.Helper()
	obj, err := w.CreateObject("widget", objectType)
	require.NoError(t, err)
	core.SetOwner(actor, obj)
	return obj
}

func TestQuotaQuerysetTracksLiveObjects(t *testing.T) {
	core, w := newTestCore(t)
	alice, err := w.AddPlayer("Alice", world.TierNormal)
	require.NoError(t, err)
	eve, err := w.AddPlayer("Eve", world.TierNormal)
	require.NoError(t, err)

	a := ownObject(t, core, w, alice)
	b := ownObject(t, core, w, alice)
	ownObject(t, core, w, eve)

	room, err := w.CreateObject("hall", "types.rooms.Room")
	require.NoError(t, err)
	core.SetOwner(alice, room)

	got := core.QuotaQueryset(alice, objectType)
	require.Len(t, got, 2, "only alice's objects of the requested type count")
	assert.Equal(t, []int64{a.ID, b.ID}, []int64{got[0].ID, got[1].ID})

	require.NoError(t, w.DeleteObject(a.ID))
	assert.Len(t, core.QuotaQueryset(alice, objectType), 1, "deletion restores headroom immediately")
}

func TestQuotaCheckCountsDown(t *testing.T) {
	core, w := newTestCore(t)
	builder, err := w.AddPlayer("Bea", world.TierBuilder)
	require.NoError(t, err)
	builder.Store("wiz").Add("quota_object", 1)

	remaining, err := core.QuotaCheck(builder, "object")
	require.NoError(t, err)
	assert.Equal(t, 1.0, remaining)

	ownObject(t, core, w, builder)
	remaining, err = core.QuotaCheck(builder, "object")
	require.NoError(t, err)
	assert.Equal(t, 0.0, remaining, "builder with quota 1 is out of headroom after one create")

	ownObject(t, core, w, builder)
	remaining, err = core.QuotaCheck(builder, "object")
	require.NoError(t, err)
	assert.Equal(t, 0.0, remaining, "overshoot floors at zero")
}

func TestQuotaCheckBypassLock(t *testing.T) {
	core, w := newTestCore(t)
	imm, err := w.AddPlayer("Ivy", world.TierImmortal)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		ownObject(t, core, w, imm)
	}
	remaining, err := core.QuotaCheck(imm, "object")
	require.NoError(t, err)
	assert.True(t, math.IsInf(remaining, 1), "bypass lock yields unlimited headroom")
}

func TestQuotaDisabled(t *testing.T) {
	cfg := config.Default().Collab
	cfg.QuotasEnabled = false
	w := world.NewWorld()
	core := New(cfg, w)
	norm, err := w.AddPlayer("Norm", world.TierNormal)
	require.NoError(t, err)

	limit, err := core.LimitFor(norm, "object")
	require.NoError(t, err)
	assert.True(t, math.IsInf(limit, 1))

	remaining, err := core.QuotaCheck(norm, "object")
	require.NoError(t, err)
	assert.True(t, math.IsInf(remaining, 1))
}

func TestLimitForOverride(t *testing.T) {
	core, w := newTestCore(t)
	norm, err := w.AddPlayer("Norm", world.TierNormal)
	require.NoError(t, err)

	limit, err := core.LimitFor(norm, "object")
	require.NoError(t, err)
	assert.Equal(t, 10.0, limit, "configured default")

	norm.Store("wiz").Add("quota_object", 50)
	limit, err = core.LimitFor(norm, "object")
	require.NoError(t, err)
	assert.Equal(t, 50.0, limit, "wiz attribute overrides the configured quota")

	norm.Store("wiz").Add("quota_object", "not a number")
	limit, err = core.LimitFor(norm, "object")
	require.NoError(t, err)
	assert.Equal(t, 10.0, limit, "garbage override falls back to the configured quota")
}

func TestLimitForUnknownType(t *testing.T) {
	core, w := newTestCore(t)
	norm, err := w.AddPlayer("Norm", world.TierNormal)
	require.NoError(t, err)

	_, err = core.LimitFor(norm, "castle")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = core.QuotaCheck(norm, "castle")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestQuotaCountsDisplayOwner(t *testing.T) {
	core, w := newTestCore(t)
	alice, err := w.AddPlayer("Alice", world.TierNormal)
	require.NoError(t, err)
	ada, err := w.AddCharacter("Ada", world.TierNormal, alice, "types.characters.Character")
	require.NoError(t, err)

	ownObject(t, core, w, ada)

	assert.Len(t, core.QuotaQueryset(ada, objectType), 1, "charged to the creating character")
	assert.Empty(t, core.QuotaQueryset(alice, objectType), "not to its account")
}
