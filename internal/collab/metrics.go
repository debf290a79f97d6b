// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CollabMUSH Contributors

package collab

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics for policy evaluation.
var (
	// permissionChecks counts CollabCheck outcomes.
	permissionChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collab_permission_checks_total",
		Help: "Total number of permission checks by outcome",
	}, []string{"outcome"})

	// quotaRefusals counts creations refused for lack of quota headroom.
	quotaRefusals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collab_quota_refusals_total",
		Help: "Total number of object creations refused by quota",
	})
)

// recordPermissionCheck records one CollabCheck outcome.
func recordPermissionCheck(granted bool) {
	outcome := "denied"
	if granted {
		outcome = "granted"
	}
	permissionChecks.WithLabelValues(outcome).Inc()
}

// RecordQuotaRefusal records one quota-refused creation.
func RecordQuotaRefusal() {
	quotaRefusals.Inc()
}
