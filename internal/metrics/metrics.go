// Package metrics exposes the service counters on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eternapdv_orders_created_total",
		Help: "Orders accepted by the store.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eternapdv_status_transitions_total",
		Help: "Committed status transitions by edge.",
	}, []string{"from", "to"})

	RejectedTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eternapdv_rejected_transitions_total",
		Help: "Status changes rejected by the transition table.",
	})

	ReadyAlerts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eternapdv_ready_alerts_total",
		Help: "Ready-order announcements fired by a monitor display.",
	})
)
