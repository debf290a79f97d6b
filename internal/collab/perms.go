// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package collab

import (
	"github.com/samber/oops"

	"github.com/bryonwausau/collabmush/internal/world"
)

// protectedAttr is the flag that exempts an object from the privilege
// override. Stored in the wizard-hidden store so only immortals can flip
// it.
const protectedAttr = "protected"

// Protected reports whether obj carries the protection flag.
func (c *Core) Protected(obj *world.Object) bool {
	return obj.Store("wizh").Truthy(protectedAttr)
}

// CollabCheck reports whether actor may perform the operations guarded by
// the named locks on obj. Access is granted when any of these hold:
//
//   - actor is obj's display or true owner, unless owner override is
//     configured off;
//   - obj is not protected and the configured override lock passes;
//   - every named lock on obj (default "control") passes for actor.
//
// Boolean by contract: an unresolvable owner or a missing lock reads as a
// denial, never an error.
func (c *Core) CollabCheck(actor world.Subject, obj *world.Object, locks ...string) bool {
	if actor == nil || obj == nil {
		return false
	}
	outcome := c.collabCheck(actor, obj, locks)
	recordPermissionCheck(outcome)
	return outcome
}

func (c *Core) collabCheck(actor world.Subject, obj *world.Object, locks []string) bool {
	if c.cfg.OwnerOverride &&
		(c.IsOwner(actor, obj, true) || c.IsOwner(actor, obj, false)) {
		return true
	}
	if !c.Protected(obj) && c.checkLockString(c.cfg.OverrideLock, "override", actor, obj) {
		return true
	}
	if len(locks) == 0 {
		locks = []string{"control"}
	}
	for _, name := range locks {
		lockstring, ok := obj.Lock(name)
		if !ok || !c.checkLockString(lockstring, name, actor, obj) {
			return false
		}
	}
	return true
}

// AttrCheck reports whether actor may access attributes in handler under
// accessType (read, write, or clear; clear is checked as write, the
// existence precondition belongs to the caller). Immortal-tier actors
// always pass. The per-type policy comes from the configured lock string
// table; a handler whose kind has no entry is a configuration fault and
// errors.
func (c *Core) AttrCheck(actor world.Subject, obj *world.Object, accessType string, handler *world.AttrStore) (bool, error) {
	lockstring, ok := c.cfg.PropTypes[handler.Kind()]
	if !ok {
		return false, oops.Code("UNKNOWN_ATTR_TYPE").With("attr_type", handler.Kind()).Wrap(ErrUnknownAttrType)
	}
	if actor == nil {
		return false, nil
	}
	if actor.Tier() >= world.TierImmortal || actor.Account().Tier() >= world.TierImmortal {
		return true, nil
	}
	if accessType == "clear" {
		accessType = "write"
	}
	return c.checkLockString(lockstring, accessType, actor, obj), nil
}
