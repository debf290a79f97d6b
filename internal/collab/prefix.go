// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package collab

import (
	"strings"

	"github.com/samber/oops"

	"github.com/bryonwausau/collabmush/internal/world"
)

// PrefixCheck resolves a player-facing attribute name to its bare name
// and backing store. Resolution order:
//
//  1. "<prefix>_rest" where prefix is a configured attribute type
//     resolves to ("rest", that type's store);
//  2. a leading underscore resolves to the raw, unprefixed store;
//  3. anything else resolves unchanged to the default store.
func (c *Core) PrefixCheck(obj *world.Object, name string) (string, *world.AttrStore) {
	if idx := strings.Index(name, "_"); idx > 0 {
		prefix := name[:idx]
		if _, ok := c.cfg.PropTypes[prefix]; ok {
			return name[idx+1:], obj.Store(prefix)
		}
	}
	if rest, found := strings.CutPrefix(name, "_"); found {
		return rest, obj.Store("")
	}
	return name, obj.Store(c.cfg.DefaultPropType)
}

// GetHandler returns the store backing the attribute type key: the raw
// store for the empty key, a configured type's store otherwise. Unknown
// keys error.
func (c *Core) GetHandler(obj *world.Object, typeKey string) (*world.AttrStore, error) {
	if _, ok := c.cfg.PropTypes[typeKey]; !ok {
		return nil, oops.Code("UNKNOWN_ATTR_TYPE").With("attr_type", typeKey).Wrap(ErrUnknownAttrType)
	}
	return obj.Store(typeKey), nil
}
