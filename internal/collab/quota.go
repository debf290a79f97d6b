// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package collab

import (
	"math"
	"strconv"

	"github.com/samber/oops"

	"github.com/bryonwausau/collabmush/internal/world"
)

// quotaAttrPrefix names the per-actor override attribute: quota_<typeKey>
// in the actor's wiz store.
const quotaAttrPrefix = "quota_"

// QuotaQueryset returns the live set of objects of typePath display-owned
// by actor, ordered by id. Quota is never a stored counter: deleting an
// object restores headroom immediately because this set shrinks with it.
func (c *Core) QuotaQueryset(actor world.Subject, typePath string) []*world.Object {
	key := OwnerTagKey(actor)
	var out []*world.Object
	for _, o := range c.world.ObjectsTaggedAs(key, CategoryDisplayOwner) {
		if o.TypePath == typePath {
			out = append(out, o)
		}
	}
	return out
}

// LimitFor returns actor's object limit for the configured type key:
// the actor's wiz attribute quota_<typeKey> when set, the type's
// configured quota otherwise. +Inf when quotas are disabled. Unknown type
// keys error.
func (c *Core) LimitFor(actor world.Subject, typeKey string) (float64, error) {
	if !c.cfg.QuotasEnabled {
		return math.Inf(1), nil
	}
	tc, ok := c.cfg.Types[typeKey]
	if !ok {
		return 0, oops.Code("UNKNOWN_TYPE").With("type_key", typeKey).Wrap(ErrUnknownType)
	}
	if v, ok := actor.Store("wiz").Get(quotaAttrPrefix + typeKey); ok {
		if limit, ok := asFloat(v); ok {
			return limit, nil
		}
	}
	return float64(tc.Quota), nil
}

// QuotaCheck returns actor's remaining headroom for typeKey as a float:
// +Inf when the quota bypass lock passes or quotas are disabled, else
// limit minus the live owned count, floored at zero.
func (c *Core) QuotaCheck(actor world.Subject, typeKey string) (float64, error) {
	if c.checkLockString(c.cfg.QuotaBypassLock, "quota", actor, nil) {
		return math.Inf(1), nil
	}
	limit, err := c.LimitFor(actor, typeKey)
	if err != nil {
		return 0, err
	}
	if math.IsInf(limit, 1) {
		return limit, nil
	}
	count := float64(len(c.QuotaQueryset(actor, c.cfg.Types[typeKey].TypePath)))
	return math.Max(limit-count, 0), nil
}

// asFloat widens the numeric types an attribute store may hold. Strings
// are accepted so stores loaded from text survive.
func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
