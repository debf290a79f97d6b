// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package collab

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bryonwausau/collabmush/internal/world"
)

// ownerTagDate is the timestamp layout inside ownership tag keys. Whole
// seconds only: tag keys must round-trip exactly through storage layers
// that drop sub-second precision.
const ownerTagDate = "2006-01-02 15:04:05"

// ownerTag is the wire form of an ownership tag key.
type ownerTag struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Cls  string `json:"cls"`
}

// OwnerTagKey serializes subject into the canonical ownership tag key:
// lowercased JSON carrying id, creation date truncated to the second, and
// entity class. The id alone is not enough: ids can be reused after
// deletion, and the creation date tells a stale tag from a live one.
func OwnerTagKey(subject world.Subject) string {
	ref := subject.Ref()
	raw, err := json.Marshal(ownerTag{
		ID:   ref.ID,
		Date: ref.CreatedAt.UTC().Truncate(time.Second).Format(ownerTagDate),
		Cls:  string(ref.Class),
	})
	if err != nil {
		// ownerTag has no unmarshalable fields
		panic(err)
	}
	return strings.ToLower(string(raw))
}

// ParseOwnerTag decodes an ownership tag key and resolves it to a live
// subject. Corrupt keys and keys whose subject no longer exists (or was
// replaced by an id-reusing newcomer with a different creation date)
// resolve to nil. Never errors: an unresolvable owner is the orphan case,
// not a fault.
func (c *Core) ParseOwnerTag(key string) world.Subject {
	var tag ownerTag
	if err := json.Unmarshal([]byte(key), &tag); err != nil {
		return nil
	}
	createdAt, err := time.ParseInLocation(ownerTagDate, tag.Date, time.UTC)
	if err != nil {
		return nil
	}
	switch world.Class(tag.Cls) {
	case world.ClassPlayer:
		if p := c.world.FindPlayer(tag.ID, createdAt); p != nil {
			return p
		}
	case world.ClassCharacter:
		if ch := c.world.FindCharacter(tag.ID, createdAt); ch != nil {
			return ch
		}
	}
	return nil
}

// SetOwner records actor as the display owner of obj, replacing any
// previous display owner. The true owner is set to actor's account only
// when obj has none yet, so handing an object around does not shift
// quota accountability.
func (c *Core) SetOwner(actor world.Subject, obj *world.Object) {
	tags := obj.Tags()
	tags.Clear(CategoryDisplayOwner)
	tags.Add(OwnerTagKey(actor), CategoryDisplayOwner)
	if len(tags.All(CategoryOwner)) == 0 {
		tags.Add(OwnerTagKey(actor.Account()), CategoryOwner)
	}
}

// TransferOwner reassigns obj to actor outright: both the display owner
// and the true owner are rewritten. Used by chown, where quota
// accountability moves with the object.
func (c *Core) TransferOwner(actor world.Subject, obj *world.Object) {
	tags := obj.Tags()
	tags.Clear(CategoryDisplayOwner)
	tags.Clear(CategoryOwner)
	tags.Add(OwnerTagKey(actor), CategoryDisplayOwner)
	tags.Add(OwnerTagKey(actor.Account()), CategoryOwner)
}

// OwnerOpts selects which owner GetOwner resolves.
type OwnerOpts struct {
	// PlayerCheck resolves the true owner instead of the display owner.
	PlayerCheck bool
	// DisplayOnly suppresses the true-owner fallback when no display
	// owner resolves.
	DisplayOnly bool
}

// GetOwner resolves obj's owner. By default the display owner, falling
// back to the true owner; a character's body with no display tag is owned
// by its character. Returns nil when no owner resolves: either the object
// never had one or its owner is gone (the orphan case).
func (c *Core) GetOwner(obj *world.Object, opts OwnerOpts) world.Subject {
	tags := obj.Tags()
	if opts.PlayerCheck {
		return c.firstResolved(tags.All(CategoryOwner))
	}
	if owner := c.firstResolved(tags.All(CategoryDisplayOwner)); owner != nil {
		return owner
	}
	if obj.Character != nil {
		return obj.Character
	}
	if opts.DisplayOnly {
		return nil
	}
	return c.firstResolved(tags.All(CategoryOwner))
}

func (c *Core) firstResolved(keys []string) world.Subject {
	for _, key := range keys {
		if s := c.ParseOwnerTag(key); s != nil {
			return s
		}
	}
	return nil
}

// IsOwner reports raw ownership of obj by actor, never privilege. With
// checkCharacter the display owner is compared against actor directly;
// otherwise the true owner is compared against actor's account.
func (c *Core) IsOwner(actor world.Subject, obj *world.Object, checkCharacter bool) bool {
	if actor == nil {
		return false
	}
	if checkCharacter {
		owner := c.GetOwner(obj, OwnerOpts{DisplayOnly: true})
		return owner != nil && world.SameSubject(actor, owner)
	}
	owner := c.GetOwner(obj, OwnerOpts{PlayerCheck: true})
	return owner != nil && world.SameSubject(actor.Account(), owner)
}
