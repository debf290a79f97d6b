// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package command

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// commandsExecuted counts dispatched commands by name and outcome.
var commandsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "collab_commands_executed_total",
	Help: "Total number of commands dispatched, by command and outcome",
}, []string{"command", "outcome"})

func recordCommand(name string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	commandsExecuted.WithLabelValues(name, outcome).Inc()
}
