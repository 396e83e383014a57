// Package repository is the Postgres-backed ledger store. One transaction per
// submission keeps the append atomic.
package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rupturahq/ruptura/internal/domain"
	"github.com/rupturahq/ruptura/internal/ledger"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

func (r *Repos) CreateSensor(rec domain.SensorRecord) error {
	_, err := r.db.Exec(`INSERT INTO sensors(sensor_id, registered_at, active) VALUES ($1,$2,$3)`,
		rec.SensorID, rec.RegisteredAt, rec.Active)
	return err
}

func (r *Repos) Sensor(sensorID string) (domain.SensorRecord, bool, error) {
	var rec domain.SensorRecord
	err := r.db.Get(&rec, `SELECT sensor_id, registered_at, active, last_reading_at FROM sensors WHERE sensor_id = $1`, sensorID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SensorRecord{}, false, nil
	}
	if err != nil {
		return domain.SensorRecord{}, false, err
	}
	return rec, true, nil
}

func (r *Repos) DeactivateSensor(sensorID string) error {
	res, err := r.db.Exec(`UPDATE sensors SET active = FALSE WHERE sensor_id = $1`, sensorID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrUnknownSensor
	}
	return nil
}

func (r *Repos) SensorIDs() ([]string, error) {
	var out []string
	err := r.db.Select(&out, `SELECT sensor_id FROM sensors ORDER BY registered_at, sensor_id`)
	return out, err
}

func (r *Repos) AppendSubmission(reading domain.SensorReading, assessment domain.DamageAssessment) error {
	teams, err := json.Marshal(assessment.ResponseTeams)
	if err != nil {
		return fmt.Errorf("marshal response teams: %w", err)
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO readings(sensor_id, displacement_mm, seismic_intensity, collapse_flag, building_category, recorded_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		reading.SensorID, reading.DisplacementMm, reading.SeismicIntensity, reading.CollapseFlag, reading.BuildingCategory, reading.RecordedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO assessments(sensor_id, severity_level, urgency_score, response_teams, notify_external, rule_version, assessed_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		assessment.SensorID, assessment.SeverityLevel, assessment.UrgencyScore, teams, assessment.NotifyExternal, assessment.RuleVersion, assessment.AssessedAt)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE sensors SET last_reading_at = $1 WHERE sensor_id = $2`,
		reading.RecordedAt, reading.SensorID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repos) LatestReading(sensorID string) (domain.SensorReading, bool, error) {
	var rd domain.SensorReading
	err := r.db.Get(&rd, `SELECT sensor_id, displacement_mm, seismic_intensity, collapse_flag, building_category, recorded_at FROM readings WHERE sensor_id = $1 ORDER BY id DESC LIMIT 1`, sensorID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SensorReading{}, false, nil
	}
	if err != nil {
		return domain.SensorReading{}, false, err
	}
	return rd, true, nil
}

func (r *Repos) LatestAssessment(sensorID string) (domain.DamageAssessment, bool, error) {
	var row struct {
		domain.DamageAssessment
		Teams []byte `db:"response_teams"`
	}
	err := r.db.Get(&row, `SELECT sensor_id, severity_level, urgency_score, response_teams, notify_external, rule_version, assessed_at FROM assessments WHERE sensor_id = $1 ORDER BY id DESC LIMIT 1`, sensorID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DamageAssessment{}, false, nil
	}
	if err != nil {
		return domain.DamageAssessment{}, false, err
	}

	a := row.DamageAssessment
	if err := json.Unmarshal(row.Teams, &a.ResponseTeams); err != nil {
		return domain.DamageAssessment{}, false, fmt.Errorf("unmarshal response teams: %w", err)
	}
	return a, true, nil
}

func (r *Repos) Stats() (domain.SystemStats, error) {
	var stats domain.SystemStats
	err := r.db.Get(&stats, `SELECT
		(SELECT COUNT(*) FROM sensors) AS total_sensors,
		(SELECT COUNT(*) FROM assessments) AS total_events_processed,
		(SELECT COUNT(*) FROM assessments WHERE severity_level >= 4) AS total_emergency_events,
		(SELECT COUNT(*) FROM assessments WHERE notify_external) AS total_notifications_sent`)
	return stats, err
}

var _ ledger.Store = (*Repos)(nil)
