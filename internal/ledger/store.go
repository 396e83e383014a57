package ledger

import "github.com/rupturahq/ruptura/internal/domain"

// Store is the persistence boundary of the ledger. Implementations must make
// AppendSubmission atomic: the reading, its assessment and the sensor's
// last-reading timestamp land together or not at all.
//
// Readings and assessments are append-only; nothing is ever updated in place
// except the Active flag and LastReadingAt on a sensor record.
type Store interface {
	CreateSensor(rec domain.SensorRecord) error
	Sensor(sensorID string) (domain.SensorRecord, bool, error)
	DeactivateSensor(sensorID string) error
	// SensorIDs lists every sensor ever registered, in registration order,
	// including deactivated ones.
	SensorIDs() ([]string, error)

	AppendSubmission(reading domain.SensorReading, assessment domain.DamageAssessment) error
	LatestReading(sensorID string) (domain.SensorReading, bool, error)
	LatestAssessment(sensorID string) (domain.DamageAssessment, bool, error)

	Stats() (domain.SystemStats, error)
}
