// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package world

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by all not-found errors in this
// package, for errors.Is checks at the command boundary.
var ErrNotFound = errors.New("not found")

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
