package domain

import "errors"

// Every failure mode of the core surfaces as one of these sentinels so that
// transport layers can map them without string matching. All of them abort
// the operation before any state is written.
var (
	ErrDuplicateSensor     = errors.New("sensor already registered")
	ErrUnknownSensor       = errors.New("sensor not registered")
	ErrSensorInactive      = errors.New("sensor deactivated")
	ErrInvalidIntensity    = errors.New("seismic intensity out of range")
	ErrInvalidDisplacement = errors.New("displacement must be non-negative")
	ErrNoDataAvailable     = errors.New("no data available for sensor")
)
