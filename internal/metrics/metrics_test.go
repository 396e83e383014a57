package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/rupturahq/ruptura/internal/ledger"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.OnSensorDataReceived(ledger.SensorDataReceived{SensorID: "S-001"})
	c.OnSensorDataReceived(ledger.SensorDataReceived{SensorID: "S-001"})
	c.OnDamageAssessed(ledger.DamageAssessed{SensorID: "S-001", SeverityLevel: 4})
	c.OnEmergencyTriggered(ledger.EmergencyTriggered{SensorID: "S-001", SeverityLevel: 4})
	c.OnCrisisSystemNotified(ledger.CrisisSystemNotified{SensorID: "S-001", SeverityLevel: 4})

	if got := testutil.ToFloat64(c.eventsProcessed); got != 2 {
		t.Fatalf("events processed = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.emergencyEvents); got != 1 {
		t.Fatalf("emergency events = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.crisisNotifications); got != 1 {
		t.Fatalf("crisis notifications = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.severityObserved.WithLabelValues("severe")); got != 1 {
		t.Fatalf("severe assessments = %v, want 1", got)
	}
}

func TestCollectorAsLedgerObserver(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	led := ledger.New(ledger.NewMemoryStore())
	led.Subscribe(c)

	if err := led.RegisterSensor("S-001"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := led.SubmitReading("S-001", 120, 7, true, "shopping_mall"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got := testutil.ToFloat64(c.eventsProcessed); got != 1 {
		t.Fatalf("events processed = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.severityObserved.WithLabelValues("critical")); got != 1 {
		t.Fatalf("critical assessments = %v, want 1", got)
	}
}
