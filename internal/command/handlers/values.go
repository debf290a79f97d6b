// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"encoding/json"
	"strings"
)

// parseValue interprets a player-supplied attribute value. Input that opens
// like a structured literal must parse as JSON; bare numbers, booleans, and
// null parse to their typed values; everything else is plain text.
func parseValue(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	switch trimmed[0] {
	case '{', '[', '"':
		var v any
		if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		switch v.(type) {
		case float64, bool, nil:
			return v, nil
		}
	}
	return trimmed, nil
}

// formatValue renders an attribute value for display. Strings print bare;
// structured values print as JSON.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "<unprintable>"
	}
	return string(raw)
}
