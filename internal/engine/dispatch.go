package engine

import "github.com/rupturahq/ruptura/internal/domain"

// dispatchMatrix maps severity to responder teams, first-to-last in dispatch
// priority order.
var dispatchMatrix = map[int][]domain.ResponseTeam{
	SeverityCritical: {
		domain.TeamSearchRescue,
		domain.TeamFireDepartment,
		domain.TeamCrisisCoordination,
		domain.TeamMedicalTeams,
		domain.TeamEmergencyAirlift,
	},
	SeveritySevere: {
		domain.TeamCrisisCoordination,
		domain.TeamMedicalTeams,
		domain.TeamSearchRescue,
	},
	SeverityModerate: {
		domain.TeamStructuralInspection,
		domain.TeamMedicalTeams,
	},
	SeverityLight: {
		domain.TeamSecurityPatrol,
	},
	SeverityMinimal: {
		domain.TeamMonitoring,
	},
}

// Dispatch returns the responder teams for a severity level and whether the
// external crisis system must be notified. Monitoring-only cases stay below
// the notification threshold so routine seismic noise never floods the
// crisis system.
func Dispatch(severityLevel int) ([]domain.ResponseTeam, bool) {
	teams, ok := dispatchMatrix[severityLevel]
	if !ok {
		teams = dispatchMatrix[SeverityMinimal]
	}

	out := make([]domain.ResponseTeam, len(teams))
	copy(out, teams)

	return out, severityLevel >= SeverityLight
}
