package ledger

import (
	"sync"

	"github.com/rupturahq/ruptura/internal/domain"
)

// MemoryStore keeps the full append-only history in process memory. It backs
// the offline demo and the test suite, and doubles as the reference
// implementation of Store semantics.
type MemoryStore struct {
	mu          sync.Mutex
	records     map[string]*domain.SensorRecord
	order       []string
	readings    []domain.SensorReading
	assessments []domain.DamageAssessment
	latest      map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*domain.SensorRecord),
		latest:  make(map[string]int),
	}
}

func (m *MemoryStore) CreateSensor(rec domain.SensorRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := rec
	m.records[rec.SensorID] = &cp
	m.order = append(m.order, rec.SensorID)
	return nil
}

func (m *MemoryStore) Sensor(sensorID string) (domain.SensorRecord, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[sensorID]
	if !ok {
		return domain.SensorRecord{}, false, nil
	}
	return *rec, true, nil
}

func (m *MemoryStore) DeactivateSensor(sensorID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[sensorID]
	if !ok {
		return domain.ErrUnknownSensor
	}
	rec.Active = false
	return nil
}

func (m *MemoryStore) SensorIDs() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.order))
	copy(out, m.order)
	return out, nil
}

func (m *MemoryStore) AppendSubmission(reading domain.SensorReading, assessment domain.DamageAssessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readings = append(m.readings, reading)
	m.assessments = append(m.assessments, assessment)
	m.latest[reading.SensorID] = len(m.readings) - 1

	if rec, ok := m.records[reading.SensorID]; ok {
		ts := reading.RecordedAt
		rec.LastReadingAt = &ts
	}
	return nil
}

func (m *MemoryStore) LatestReading(sensorID string) (domain.SensorReading, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.latest[sensorID]
	if !ok {
		return domain.SensorReading{}, false, nil
	}
	return m.readings[idx], true, nil
}

func (m *MemoryStore) LatestAssessment(sensorID string) (domain.DamageAssessment, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx, ok := m.latest[sensorID]
	if !ok {
		return domain.DamageAssessment{}, false, nil
	}
	return m.assessments[idx], true, nil
}

// Stats recomputes every counter by replaying the log, so the monotonicity
// invariant holds by construction.
func (m *MemoryStore) Stats() (domain.SystemStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := domain.SystemStats{
		TotalSensors:         int64(len(m.order)),
		TotalEventsProcessed: int64(len(m.assessments)),
	}
	for _, a := range m.assessments {
		if a.SeverityLevel >= 4 {
			stats.TotalEmergencyEvents++
		}
		if a.NotifyExternal {
			stats.TotalNotificationsSent++
		}
	}
	return stats, nil
}

var _ Store = (*MemoryStore)(nil)
