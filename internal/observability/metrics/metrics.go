// Package metrics exposes the assistant's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RoutedIntents counts routed actions by kind.
	RoutedIntents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "routed_intents_total",
		Help:      "Routed actions by action kind.",
	}, []string{"kind"})

	// Messages counts stored messages by author role.
	Messages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "messages_total",
		Help:      "Messages appended to sessions, by author role.",
	}, []string{"role"})

	// TicketsCreated counts completed support-intake submissions.
	TicketsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "orderdesk",
		Name:      "tickets_created_total",
		Help:      "Support tickets created from completed intake forms.",
	})
)
