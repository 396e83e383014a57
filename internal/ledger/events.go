package ledger

import (
	"time"

	"github.com/rupturahq/ruptura/internal/domain"
)

// SensorDataReceived is emitted for every accepted reading, before the
// assessment events.
type SensorDataReceived struct {
	SensorID         string
	DisplacementMm   float64
	SeismicIntensity int
	CollapseFlag     bool
	Timestamp        time.Time
}

// DamageAssessed carries the derived verdict for an accepted reading.
type DamageAssessed struct {
	SensorID      string
	SeverityLevel int
	UrgencyScore  int
	ResponseTeams []domain.ResponseTeam
	Timestamp     time.Time
}

// EmergencyTriggered is emitted only for severity 4 and 5.
type EmergencyTriggered struct {
	SensorID      string
	SeverityLevel int
	Timestamp     time.Time
}

// CrisisSystemNotified is emitted whenever an assessment crosses the
// external-notification threshold.
type CrisisSystemNotified struct {
	SensorID      string
	SeverityLevel int
	UrgencyScore  int
	Timestamp     time.Time
}

// Observer receives ledger events synchronously, inside the submission's
// critical section, so payloads always match what was persisted. Observers
// must not call back into the ledger and must not block.
type Observer interface {
	OnSensorDataReceived(e SensorDataReceived)
	OnDamageAssessed(e DamageAssessed)
	OnEmergencyTriggered(e EmergencyTriggered)
	OnCrisisSystemNotified(e CrisisSystemNotified)
}
