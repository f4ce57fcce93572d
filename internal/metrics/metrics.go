package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RemindersSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_reminders_sent_total",
		Help: "Session reminders posted to the channel",
	})
	ReactionsRelayed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_reactions_relayed_total",
		Help: "Reactions on bot messages relayed to the owner",
	})
	ReactionsIgnored = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "planner_reactions_ignored_total",
		Help: "Reactions on messages not authored by the bot",
	})
	SendErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_send_errors_total",
		Help: "Failed outbound chat calls",
	}, []string{"operation"})
	KeepAlivePings = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planner_keepalive_pings_total",
		Help: "Keep-alive pings by outcome",
	}, []string{"status"})
	NextReminderTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "planner_next_reminder_timestamp_seconds",
		Help: "Unix time the next reminder is scheduled for",
	})
)

// MustRegister registers all planner collectors.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		RemindersSent,
		ReactionsRelayed,
		ReactionsIgnored,
		SendErrors,
		KeepAlivePings,
		NextReminderTimestamp,
	)
}

// ObservePing records the outcome of one keep-alive ping.
func ObservePing(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	KeepAlivePings.WithLabelValues(status).Inc()
}
