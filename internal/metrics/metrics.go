// Package metrics provides counters and Prometheus collectors for
// notification activity. Nothing is exported over the network; the
// snapshot is read in-process and logged on request.
package metrics

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// 1. Internal State (Source of Truth)
var (
	emailSent       int64
	smsSent         int64
	observerUpdates int64
	invalidChoices  int64
	sendFailures    int64
	lastSend        int64
)

const counterInc int64 = 1

// 2. Prometheus Collectors
var (
	promSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifyflow_notifications_sent_total",
			Help: "Total notifications delivered, by channel",
		},
		[]string{"channel"},
	)
	promObserverUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifyflow_observer_updates_total",
			Help: "Total observer updates, by observer",
		},
		[]string{"observer"},
	)
	promInvalidChoices = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifyflow_invalid_choices_total",
			Help: "Total menu selections that did not match a channel",
		},
	)
	promSendFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifyflow_send_failures_total",
			Help: "Total notification sends aborted by a write error",
		},
	)
	promLastSend = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "notifyflow_last_send_timestamp_seconds",
			Help: "Unix timestamp of the last completed send",
		},
	)
)

func init() {
	prometheus.MustRegister(
		promSent,
		promObserverUpdates,
		promInvalidChoices,
		promSendFailures,
		promLastSend,
	)
}

// 3. Public API (Updates both Atomic and Prometheus)

// IncSent increments the delivered counter for the named channel
// ("email" or "sms"). Other names only reach Prometheus.
func IncSent(channel string) {
	switch channel {
	case "email":
		atomic.AddInt64(&emailSent, counterInc)
	case "sms":
		atomic.AddInt64(&smsSent, counterInc)
	}
	promSent.WithLabelValues(channel).Inc()
}

// IncObserverUpdate increments the counter for a delivered observer update.
func IncObserverUpdate(observer string) {
	atomic.AddInt64(&observerUpdates, counterInc)
	promObserverUpdates.WithLabelValues(observer).Inc()
}

// IncInvalidChoice increments the counter for rejected menu selections.
func IncInvalidChoice() {
	atomic.AddInt64(&invalidChoices, counterInc)
	promInvalidChoices.Inc()
}

// IncSendFailure increments the counter for aborted sends.
func IncSendFailure() {
	atomic.AddInt64(&sendFailures, counterInc)
	promSendFailures.Inc()
}

// SetLastSend stores the provided time as the last send timestamp and
// updates the corresponding Prometheus gauge.
func SetLastSend(t time.Time) {
	atomic.StoreInt64(&lastSend, t.Unix())
	promLastSend.Set(float64(t.Unix()))
}

// 4. Snapshot

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	EmailSent       int64 `json:"email_sent"`
	SMSSent         int64 `json:"sms_sent"`
	ObserverUpdates int64 `json:"observer_updates"`
	InvalidChoices  int64 `json:"invalid_choices"`
	SendFailures    int64 `json:"send_failures"`
	LastSend        int64 `json:"last_send_timestamp"`
}

// GetSnapshot returns a StatsSnapshot with the current values of all
// internal counters and timestamps.
func GetSnapshot() StatsSnapshot {
	return StatsSnapshot{
		EmailSent:       atomic.LoadInt64(&emailSent),
		SMSSent:         atomic.LoadInt64(&smsSent),
		ObserverUpdates: atomic.LoadInt64(&observerUpdates),
		InvalidChoices:  atomic.LoadInt64(&invalidChoices),
		SendFailures:    atomic.LoadInt64(&sendFailures),
		LastSend:        atomic.LoadInt64(&lastSend),
	}
}
