package database

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/viper"
)

func Connect() (*sqlx.DB, error) {
	dsn := viper.GetString("DB_DSN")
	return sqlx.Connect("pgx", dsn)
}

const schema = `
CREATE TABLE IF NOT EXISTS sensors (
	sensor_id TEXT PRIMARY KEY,
	registered_at TIMESTAMPTZ NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE,
	last_reading_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS readings (
	id BIGSERIAL PRIMARY KEY,
	sensor_id TEXT NOT NULL REFERENCES sensors(sensor_id),
	displacement_mm DOUBLE PRECISION NOT NULL,
	seismic_intensity INT NOT NULL,
	collapse_flag BOOLEAN NOT NULL,
	building_category TEXT NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS assessments (
	id BIGSERIAL PRIMARY KEY,
	sensor_id TEXT NOT NULL REFERENCES sensors(sensor_id),
	severity_level INT NOT NULL,
	urgency_score INT NOT NULL,
	response_teams JSONB NOT NULL,
	notify_external BOOLEAN NOT NULL,
	rule_version INT NOT NULL,
	assessed_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_readings_sensor ON readings(sensor_id, id DESC);
CREATE INDEX IF NOT EXISTS idx_assessments_sensor ON assessments(sensor_id, id DESC);
`

func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
