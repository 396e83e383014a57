// Package metrics exposes the ledger's aggregate counters to Prometheus by
// observing ledger events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rupturahq/ruptura/internal/ledger"
)

type Collector struct {
	eventsProcessed     prometheus.Counter
	emergencyEvents     prometheus.Counter
	crisisNotifications prometheus.Counter
	severityObserved    *prometheus.CounterVec
}

// NewCollector builds the collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		eventsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ruptura_events_processed_total",
			Help: "Readings accepted and assessed by the ledger.",
		}),
		emergencyEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ruptura_emergency_events_total",
			Help: "Assessments at severity 4 or above.",
		}),
		crisisNotifications: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ruptura_crisis_notifications_total",
			Help: "Assessments that crossed the external notification threshold.",
		}),
		severityObserved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ruptura_assessments_by_severity_total",
			Help: "Assessments broken down by severity level.",
		}, []string{"severity"}),
	}

	reg.MustRegister(c.eventsProcessed, c.emergencyEvents, c.crisisNotifications, c.severityObserved)
	return c
}

func (c *Collector) OnSensorDataReceived(e ledger.SensorDataReceived) {
	c.eventsProcessed.Inc()
}

func (c *Collector) OnDamageAssessed(e ledger.DamageAssessed) {
	c.severityObserved.WithLabelValues(severityLabel(e.SeverityLevel)).Inc()
}

func (c *Collector) OnEmergencyTriggered(e ledger.EmergencyTriggered) {
	c.emergencyEvents.Inc()
}

func (c *Collector) OnCrisisSystemNotified(e ledger.CrisisSystemNotified) {
	c.crisisNotifications.Inc()
}

func severityLabel(level int) string {
	switch level {
	case 1:
		return "minimal"
	case 2:
		return "light"
	case 3:
		return "moderate"
	case 4:
		return "severe"
	case 5:
		return "critical"
	default:
		return "unknown"
	}
}

var _ ledger.Observer = (*Collector)(nil)
