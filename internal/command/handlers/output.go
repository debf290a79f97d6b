// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

// Package handlers implements the building commands: creation, destruction,
// ownership transfer, linking, and attribute access, all routed through the
// collab policy layer.
package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bryonwausau/collabmush/internal/command"
)

// logOutputError logs a write failure at warn level with structured context
// and increments the output failure metric. Connection trouble must not fail
// the command itself.
func logOutputError(ctx context.Context, cmd, actor string, bytesWritten int, err error) {
	slog.WarnContext(ctx, "failed to write command output",
		"command", cmd,
		"actor", actor,
		"bytes_written", bytesWritten,
		"error", err,
	)
	recordOutputFailure(cmd)
}

// writeOutput writes a message to the command output and logs any errors.
func writeOutput(ctx context.Context, exec *command.Execution, cmd, msg string) {
	if n, err := fmt.Fprintln(exec.Output, msg); err != nil {
		logOutputError(ctx, cmd, exec.Actor.Name(), n, err)
	}
}

// writeOutputf writes a formatted message to the command output and logs any
// errors.
func writeOutputf(ctx context.Context, exec *command.Execution, cmd, format string, args ...any) {
	if n, err := fmt.Fprintf(exec.Output, format, args...); err != nil {
		logOutputError(ctx, cmd, exec.Actor.Name(), n, err)
	}
}
