// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package collab

import "errors"

// Sentinel errors for errors.Is checks at the command boundary.
var (
	// ErrPermissions marks a refused operation. Callers map it to a
	// player-facing permission message.
	ErrPermissions = errors.New("permission denied")

	// ErrUnknownType marks a lookup with an unconfigured object type key.
	ErrUnknownType = errors.New("unknown object type")

	// ErrUnknownAttrType marks a lookup with an unconfigured attribute
	// type key. Callers treat this as fatal for the operation.
	ErrUnknownAttrType = errors.New("unknown attribute type")
)
