// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bryonwausau/collabmush/internal/collab"
	"github.com/bryonwausau/collabmush/internal/command"
	"github.com/bryonwausau/collabmush/internal/config"
	"github.com/bryonwausau/collabmush/internal/world"
)

type testEnv struct {
	cfg   *config.Config
	world *world.World
	core  *collab.Core
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Default()
	w := world.NewWorld()
	return &testEnv{cfg: cfg, world: w, core: collab.New(cfg.Collab, w)}
}

// character creates a player account and a bodied character, both at tier.
func (e *testEnv) character(t *testing.T, name string, tier world.Tier) *world.Character {
	t.Helper()
	p, err := e.world.AddPlayer(name+"-account", tier)
	require.NoError(t, err)
	ch, err := e.world.AddCharacter(name, tier, p, e.cfg.Collab.Types["character"].TypePath)
	require.NoError(t, err)
	return ch
}

// exec builds an execution for actor. invokedAs carries any switch.
func (e *testEnv) exec(actor world.Subject, invokedAs, args string) (*command.Execution, *bytes.Buffer) {
	var buf bytes.Buffer
	return &command.Execution{
		Actor:     actor,
		Args:      args,
		InvokedAs: invokedAs,
		Output:    &buf,
		Services: &command.Services{
			World:  e.world,
			Collab: e.core,
			Config: e.cfg,
		},
	}, &buf
}

// createOwned creates an object through the real creation path so it carries
// ownership tags.
func (e *testEnv) createOwned(t *testing.T, actor world.Subject, name string) *world.Object {
	t.Helper()
	exec, _ := e.exec(actor, "@create", name)
	require.NoError(t, CreateHandler(t.Context(), exec))
	matches, err := e.world.Search(name)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	return matches[len(matches)-1]
}
