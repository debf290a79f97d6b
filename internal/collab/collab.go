// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

// Package collab implements the cooperative-building policy layer:
// ownership tags, creation quotas, and permission checks over world
// objects. Ownership is tracked with tags rather than foreign keys so
// owner records survive actor deletion as inert orphans, and quota is
// always derived from the live tag population, never counted separately.
package collab

import (
	"github.com/bryonwausau/collabmush/internal/config"
	"github.com/bryonwausau/collabmush/internal/lock"
	"github.com/bryonwausau/collabmush/internal/world"
)

// Tag categories for ownership records.
const (
	// CategoryOwner holds the true owner: the account that answers for
	// the object's quota and administrative disputes.
	CategoryOwner = "owner"
	// CategoryDisplayOwner holds the display owner: the actor shown as
	// the object's owner, normally the character that created it.
	CategoryDisplayOwner = "display_owner"
)

// Core evaluates ownership, quota, and permission policy against a world.
// It owns the lock function registry and registers the controls()
// predicate so lock strings can reach back into ownership checks.
type Core struct {
	cfg   config.CollabConfig
	world *world.World
	locks *lock.Registry
}

// New creates a Core over w with the given policy configuration.
func New(cfg config.CollabConfig, w *world.World) *Core {
	c := &Core{cfg: cfg, world: w, locks: lock.NewRegistry()}
	c.locks.Register("controls", func(ctx lock.Context, _ []string) bool {
		if ctx.Subject == nil || ctx.Object == nil {
			return false
		}
		return c.IsOwner(ctx.Subject, ctx.Object, true) ||
			c.IsOwner(ctx.Subject, ctx.Object, false)
	})
	return c
}

// Locks exposes the lock function registry so callers can register
// further lock functions.
func (c *Core) Locks() *lock.Registry { return c.locks }

// World returns the world this core evaluates against.
func (c *Core) World() *world.World { return c.world }

// Config returns the policy configuration.
func (c *Core) Config() config.CollabConfig { return c.cfg }

// checkLockString evaluates accessType of lockstring for subject against
// obj. Unparseable or empty lock strings deny.
func (c *Core) checkLockString(lockstring, accessType string, subject world.Subject, obj *world.Object) bool {
	if lockstring == "" {
		return false
	}
	ok, err := lock.CheckString(lockstring, accessType, c.locks, lock.Context{Subject: subject, Object: obj})
	if err != nil {
		return false
	}
	return ok
}
