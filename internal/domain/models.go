package domain

import "time"

// BuildingCategory classifies a structure's occupancy type. It weights the
// urgency score of every assessment produced for a sensor attached to it.
type BuildingCategory string

const (
	CategoryHospital     BuildingCategory = "hospital"
	CategorySchool       BuildingCategory = "school"
	CategoryShoppingMall BuildingCategory = "shopping_mall"
	CategoryOffice       BuildingCategory = "office"
	CategoryResidential  BuildingCategory = "residential"
	CategoryIndustrial   BuildingCategory = "industrial"
	CategoryUnknown      BuildingCategory = "unknown"
)

// ParseBuildingCategory maps a wire value to a category. Empty input defaults
// to residential; anything unrecognized becomes unknown rather than an error,
// since the category only weights urgency and never gates ingestion.
func ParseBuildingCategory(s string) BuildingCategory {
	switch BuildingCategory(s) {
	case CategoryHospital, CategorySchool, CategoryShoppingMall,
		CategoryOffice, CategoryResidential, CategoryIndustrial, CategoryUnknown:
		return BuildingCategory(s)
	case "":
		return CategoryResidential
	default:
		return CategoryUnknown
	}
}

// ResponseTeam is a category of emergency responder eligible for dispatch.
type ResponseTeam string

const (
	TeamSearchRescue         ResponseTeam = "search_rescue"
	TeamFireDepartment       ResponseTeam = "fire_department"
	TeamCrisisCoordination   ResponseTeam = "crisis_coordination"
	TeamMedicalTeams         ResponseTeam = "medical_teams"
	TeamEmergencyAirlift     ResponseTeam = "emergency_airlift"
	TeamStructuralInspection ResponseTeam = "structural_inspection"
	TeamSecurityPatrol       ResponseTeam = "security_patrol"
	TeamMonitoring           ResponseTeam = "monitoring"
)

// SensorReading is one measurement submitted on behalf of a registered
// sensor. RecordedAt is assigned at ingestion, never taken from the caller.
type SensorReading struct {
	SensorID         string           `db:"sensor_id" json:"sensor_id"`
	DisplacementMm   float64          `db:"displacement_mm" json:"displacement_mm"`
	SeismicIntensity int              `db:"seismic_intensity" json:"seismic_intensity"`
	CollapseFlag     bool             `db:"collapse_flag" json:"collapse_flag"`
	BuildingCategory BuildingCategory `db:"building_category" json:"building_category"`
	RecordedAt       time.Time        `db:"recorded_at" json:"recorded_at"`
}

// DamageAssessment is the derived verdict for one reading. Assessments are
// immutable once written; a corrected reading produces a new assessment.
type DamageAssessment struct {
	SensorID       string         `db:"sensor_id" json:"sensor_id"`
	SeverityLevel  int            `db:"severity_level" json:"severity_level"`
	UrgencyScore   int            `db:"urgency_score" json:"urgency_score"`
	ResponseTeams  []ResponseTeam `db:"-" json:"response_teams"`
	NotifyExternal bool           `db:"notify_external" json:"notify_external"`
	RuleVersion    int            `db:"rule_version" json:"rule_version"`
	AssessedAt     time.Time      `db:"assessed_at" json:"assessed_at"`
}

// SensorRecord is a registry entry. Records are never deleted; deactivation
// is permanent.
type SensorRecord struct {
	SensorID      string     `db:"sensor_id" json:"sensor_id"`
	RegisteredAt  time.Time  `db:"registered_at" json:"registered_at"`
	Active        bool       `db:"active" json:"active"`
	LastReadingAt *time.Time `db:"last_reading_at" json:"last_reading_at,omitempty"`
}

// SystemStats are monotonic aggregate counters, recomputable by replaying
// the ledger.
type SystemStats struct {
	TotalSensors           int64 `db:"total_sensors" json:"total_sensors"`
	TotalEventsProcessed   int64 `db:"total_events_processed" json:"total_events_processed"`
	TotalEmergencyEvents   int64 `db:"total_emergency_events" json:"total_emergency_events"`
	TotalNotificationsSent int64 `db:"total_notifications_sent" json:"total_notifications_sent"`
}
