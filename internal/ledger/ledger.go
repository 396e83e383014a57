// Package ledger orchestrates the damage-assessment core: registry gating,
// classification, atomic persistence and event emission. Every mutating
// operation is a serialized, all-or-nothing state transition.
package ledger

import (
	"sync"
	"time"

	"github.com/rupturahq/ruptura/internal/domain"
	"github.com/rupturahq/ruptura/internal/engine"
)

type Ledger struct {
	mu        sync.Mutex
	store     Store
	clock     func() time.Time
	observers []Observer
}

type Option func(*Ledger)

// WithClock overrides the ingestion clock. Tests use it to pin timestamps.
func WithClock(fn func() time.Time) Option {
	return func(l *Ledger) { l.clock = fn }
}

func New(store Store, opts ...Option) *Ledger {
	l := &Ledger{store: store, clock: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Subscribe registers an event observer. Not safe to call once submissions
// have started.
func (l *Ledger) Subscribe(obs Observer) {
	l.observers = append(l.observers, obs)
}

// RegisterSensor creates an active registry entry for a new sensor ID.
func (l *Ledger) RegisterSensor(sensorID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok, err := l.store.Sensor(sensorID); err != nil {
		return err
	} else if ok {
		return domain.ErrDuplicateSensor
	}

	return l.store.CreateSensor(domain.SensorRecord{
		SensorID:     sensorID,
		RegisteredAt: l.clock(),
		Active:       true,
	})
}

// DeactivateSensor permanently retires a sensor. There is no reactivation
// path: decommissioned or compromised hardware re-registers under a new ID.
func (l *Ledger) DeactivateSensor(sensorID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok, err := l.store.Sensor(sensorID); err != nil {
		return err
	} else if !ok {
		return domain.ErrUnknownSensor
	}

	return l.store.DeactivateSensor(sensorID)
}

// IsActive reports whether a sensor may submit readings. Unknown sensors are
// reported inactive; the query side is permissive, ingestion is not.
func (l *Ledger) IsActive(sensorID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok, err := l.store.Sensor(sensorID)
	return err == nil && ok && rec.Active
}

// SubmitReading runs the full ingestion transition: gate on the registry,
// classify, score, dispatch, persist atomically, then emit events mirroring
// exactly what was persisted. Any error leaves no trace in the ledger.
func (l *Ledger) SubmitReading(sensorID string, displacementMm float64, seismicIntensity int, collapseFlag bool, category domain.BuildingCategory) (domain.DamageAssessment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok, err := l.store.Sensor(sensorID)
	if err != nil {
		return domain.DamageAssessment{}, err
	}
	if !ok {
		return domain.DamageAssessment{}, domain.ErrUnknownSensor
	}
	if !rec.Active {
		return domain.DamageAssessment{}, domain.ErrSensorInactive
	}

	level, err := engine.Classify(displacementMm, seismicIntensity, collapseFlag)
	if err != nil {
		return domain.DamageAssessment{}, err
	}

	if category == "" {
		category = domain.CategoryResidential
	}
	score := engine.Score(level, category)
	teams, notify := engine.Dispatch(level)

	now := l.clock()
	reading := domain.SensorReading{
		SensorID:         sensorID,
		DisplacementMm:   displacementMm,
		SeismicIntensity: seismicIntensity,
		CollapseFlag:     collapseFlag,
		BuildingCategory: category,
		RecordedAt:       now,
	}
	assessment := domain.DamageAssessment{
		SensorID:       sensorID,
		SeverityLevel:  level,
		UrgencyScore:   score,
		ResponseTeams:  teams,
		NotifyExternal: notify,
		RuleVersion:    engine.RuleVersion,
		AssessedAt:     now,
	}

	if err := l.store.AppendSubmission(reading, assessment); err != nil {
		return domain.DamageAssessment{}, err
	}

	l.emit(reading, assessment)
	return assessment, nil
}

// emit fires observers in the contractual order. Runs under l.mu so event
// payloads cannot diverge from persisted state.
func (l *Ledger) emit(reading domain.SensorReading, a domain.DamageAssessment) {
	for _, obs := range l.observers {
		obs.OnSensorDataReceived(SensorDataReceived{
			SensorID:         reading.SensorID,
			DisplacementMm:   reading.DisplacementMm,
			SeismicIntensity: reading.SeismicIntensity,
			CollapseFlag:     reading.CollapseFlag,
			Timestamp:        reading.RecordedAt,
		})
	}
	for _, obs := range l.observers {
		obs.OnDamageAssessed(DamageAssessed{
			SensorID:      a.SensorID,
			SeverityLevel: a.SeverityLevel,
			UrgencyScore:  a.UrgencyScore,
			ResponseTeams: a.ResponseTeams,
			Timestamp:     a.AssessedAt,
		})
	}
	if a.SeverityLevel >= engine.SeveritySevere {
		for _, obs := range l.observers {
			obs.OnEmergencyTriggered(EmergencyTriggered{
				SensorID:      a.SensorID,
				SeverityLevel: a.SeverityLevel,
				Timestamp:     a.AssessedAt,
			})
		}
	}
	if a.NotifyExternal {
		for _, obs := range l.observers {
			obs.OnCrisisSystemNotified(CrisisSystemNotified{
				SensorID:      a.SensorID,
				SeverityLevel: a.SeverityLevel,
				UrgencyScore:  a.UrgencyScore,
				Timestamp:     a.AssessedAt,
			})
		}
	}
}

// GetReading returns the most recent accepted reading for a sensor.
func (l *Ledger) GetReading(sensorID string) (domain.SensorReading, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r, ok, err := l.store.LatestReading(sensorID)
	if err != nil {
		return domain.SensorReading{}, err
	}
	if !ok {
		return domain.SensorReading{}, domain.ErrNoDataAvailable
	}
	return r, nil
}

// GetAssessment returns the most recent assessment for a sensor.
func (l *Ledger) GetAssessment(sensorID string) (domain.DamageAssessment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok, err := l.store.LatestAssessment(sensorID)
	if err != nil {
		return domain.DamageAssessment{}, err
	}
	if !ok {
		return domain.DamageAssessment{}, domain.ErrNoDataAvailable
	}
	return a, nil
}

// Stats returns a snapshot of the aggregate counters.
func (l *Ledger) Stats() (domain.SystemStats, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Stats()
}

// ListSensorIDs lists all sensor IDs ever registered, in registration order.
func (l *Ledger) ListSensorIDs() ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.SensorIDs()
}
