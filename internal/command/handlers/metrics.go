// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// outputFailures counts writes to a command's output stream that errored.
var outputFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "collab_command_output_failures_total",
	Help: "Total number of command output write failures",
}, []string{"command"})

func recordOutputFailure(cmd string) {
	outputFailures.WithLabelValues(cmd).Inc()
}
