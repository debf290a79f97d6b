// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package command

import (
	"strings"

	"github.com/samber/oops"
)

// ParsedCommand represents a parsed command input.
type ParsedCommand struct {
	Name string // command name (first whitespace-delimited token)
	Args string // unparsed argument string (preserves internal whitespace)
	Raw  string // original input
}

// Parse splits raw input into command name and arguments. The command
// name is the first whitespace-delimited token; arguments preserve
// internal whitespace.
func Parse(input string) (*ParsedCommand, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, oops.Code("EMPTY_INPUT").Errorf("no command provided")
	}

	idx := strings.IndexAny(trimmed, " \t")
	if idx == -1 {
		return &ParsedCommand{Name: trimmed, Raw: input}, nil
	}

	return &ParsedCommand{
		Name: trimmed[:idx],
		Args: strings.TrimLeft(trimmed[idx+1:], " \t"),
		Raw:  input,
	}, nil
}

// SplitEquals splits a building-command argument of the form
// "<left> = <right>" on the first equals sign, trimming both sides.
// found is false when there is no equals sign.
func SplitEquals(args string) (left, right string, found bool) {
	left, right, found = strings.Cut(args, "=")
	return strings.TrimSpace(left), strings.TrimSpace(right), found
}

// SplitSlash splits "<object>/<attribute>" on the first slash, trimming
// both sides. found is false when there is no slash.
func SplitSlash(s string) (left, right string, found bool) {
	left, right, found = strings.Cut(s, "/")
	return strings.TrimSpace(left), strings.TrimSpace(right), found
}

// StripSwitch removes a trailing "/switch" from a command name.
// "@destroy/force" parses to ("@destroy", "force").
func StripSwitch(name string) (cmd, sw string) {
	cmd, sw, _ = strings.Cut(name, "/")
	return cmd, sw
}
