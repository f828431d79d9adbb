// Package metrics records notification outcomes with Prometheus and pushes
// them to a Pushgateway, which is how short-lived batch jobs report metrics.
package metrics

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/ariel-frischer/notificator/internal/notify"
)

// DefaultJobName is the Pushgateway job used when none is configured
const DefaultJobName = "notificator"

// Metrics holds the Prometheus collectors for notification outcomes
type Metrics struct {
	NotificationsTotal   *prometheus.CounterVec
	NotificationDuration *prometheus.HistogramVec
	LastSuccessTimestamp *prometheus.GaugeVec
	LastFailureTimestamp *prometheus.GaugeVec

	registry *prometheus.Registry
	pusher   *push.Pusher
}

// New creates a Metrics instance with its own registry. Push is a no-op
// unless pushgatewayURL is set.
func New(pushgatewayURL, jobName string) *Metrics {
	m := &Metrics{
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notificator_notifications_total",
			Help: "Total number of notifications by kind, outcome and failure category",
		}, []string{"kind", "outcome", "category"}),
		NotificationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "notificator_notification_duration_seconds",
			Help:    "Time spent sending a notification in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"kind"}),
		LastSuccessTimestamp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "notificator_last_success_timestamp_seconds",
			Help: "Unix timestamp of the last successful notification",
		}, []string{"kind"}),
		LastFailureTimestamp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "notificator_last_failure_timestamp_seconds",
			Help: "Unix timestamp of the last failed notification",
		}, []string{"kind"}),
	}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(
		m.NotificationsTotal,
		m.NotificationDuration,
		m.LastSuccessTimestamp,
		m.LastFailureTimestamp,
	)

	if pushgatewayURL != "" {
		if jobName == "" {
			jobName = DefaultJobName
		}
		m.pusher = push.New(pushgatewayURL, jobName).Gatherer(m.registry)
		if hostname, err := os.Hostname(); err == nil && hostname != "" {
			m.pusher = m.pusher.Grouping("instance", hostname)
		}
	}

	return m
}

// RecordNotification implements notify.Recorder
func (m *Metrics) RecordNotification(kind notify.Kind, outcome string, category notify.Category, duration time.Duration) {
	if m == nil {
		return
	}
	k := string(kind)
	m.NotificationsTotal.WithLabelValues(k, outcome, string(category)).Inc()
	m.NotificationDuration.WithLabelValues(k).Observe(duration.Seconds())
	if outcome == notify.OutcomeSent {
		m.LastSuccessTimestamp.WithLabelValues(k).SetToCurrentTime()
	} else {
		m.LastFailureTimestamp.WithLabelValues(k).SetToCurrentTime()
	}
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// PushEnabled reports whether a Pushgateway is configured
func (m *Metrics) PushEnabled() bool {
	return m != nil && m.pusher != nil
}

// Push sends all collected metrics to the Pushgateway
func (m *Metrics) Push(ctx context.Context) error {
	if !m.PushEnabled() {
		return nil
	}
	if err := m.pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to Pushgateway: %w", err)
	}
	return nil
}
