// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package command

import (
	"errors"

	"github.com/samber/oops"
)

// Error codes for command dispatch failures.
const (
	CodeUnknownCommand   = "UNKNOWN_COMMAND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeInvalidArgs      = "INVALID_ARGS"
	CodeWorldError       = "WORLD_ERROR"
	CodeQuotaExceeded    = "QUOTA_EXCEEDED"
	CodeMalformedValue   = "MALFORMED_VALUE"
	CodeNoActor          = "NO_ACTOR"
	CodeNotFound         = "NOT_FOUND"
)

// ErrNilRegistry is returned when constructing a dispatcher without a registry.
var ErrNilRegistry = errors.New("registry must not be nil")

// ErrUnknownCommand creates an error for an unknown command.
func ErrUnknownCommand(cmd string) error {
	return oops.Code(CodeUnknownCommand).
		With("command", cmd).
		Errorf("unknown command: %s", cmd)
}

// ErrPermissionDenied creates an error for a refused operation.
func ErrPermissionDenied(cmd string) error {
	return oops.Code(CodePermissionDenied).
		With("command", cmd).
		Errorf("permission denied for command %s", cmd)
}

// ErrInvalidArgs creates an error for invalid arguments.
func ErrInvalidArgs(cmd, usage string) error {
	return oops.Code(CodeInvalidArgs).
		With("command", cmd).
		With("usage", usage).
		Errorf("invalid arguments")
}

// ErrQuotaExceeded creates an error for a creation refused by quota.
func ErrQuotaExceeded(typeKey string) error {
	return oops.Code(CodeQuotaExceeded).
		With("type_key", typeKey).
		Errorf("quota exhausted for type %s", typeKey)
}

// ErrMalformedValue creates an error for an unparseable attribute value.
func ErrMalformedValue(name string, cause error) error {
	return oops.Code(CodeMalformedValue).
		With("attribute", name).
		Wrapf(cause, "malformed value for attribute %s", name)
}

// ErrNotFound creates an error for an unresolvable object reference.
func ErrNotFound(query string) error {
	return oops.Code(CodeNotFound).
		With("query", query).
		Errorf("no such object: %s", query)
}

// ErrNoActor creates an error for an execution without an actor.
func ErrNoActor() error {
	return oops.Code(CodeNoActor).Errorf("no actor associated with execution")
}

// WorldError creates an error for world state issues with a player-facing
// message.
func WorldError(message string, cause error) error {
	builder := oops.Code(CodeWorldError).With("message", message)
	if cause != nil {
		return builder.Wrap(cause)
	}
	return builder.Errorf("%s", message)
}

// PlayerMessage extracts a player-facing message from an error.
func PlayerMessage(err error) string {
	const fallback = "Something went wrong. Try again."
	if err == nil {
		return fallback
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return fallback
	}

	switch oopsErr.Code() {
	case CodeUnknownCommand:
		return "Unknown command. Try 'help'."
	case CodePermissionDenied:
		return "You don't have permission to do that."
	case CodeInvalidArgs:
		if usage, ok := oopsErr.Context()["usage"].(string); ok && usage != "" {
			return "Usage: " + usage
		}
		return "Invalid arguments."
	case CodeQuotaExceeded:
		return "You have hit your quota for that object type."
	case CodeMalformedValue:
		return "That value could not be parsed."
	case CodeNotFound:
		if query, ok := oopsErr.Context()["query"].(string); ok && query != "" {
			return "No such object: " + query
		}
		return "No such object."
	case CodeNoActor:
		return "No character selected."
	case CodeWorldError:
		if msg, ok := oopsErr.Context()["message"].(string); ok {
			return msg
		}
		return fallback
	default:
		return fallback
	}
}
