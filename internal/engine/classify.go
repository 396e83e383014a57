// Package engine holds the canonical damage-assessment rules: severity
// classification, urgency scoring and response-team dispatch. Everything in
// here is a pure function of its inputs so that an assessment can be replayed
// and verified against the ledger at any later time.
package engine

import "github.com/rupturahq/ruptura/internal/domain"

// RuleVersion is stamped on every assessment. Bump it if any threshold,
// multiplier or dispatch table below ever changes, so historical records
// stay interpretable.
const RuleVersion = 1

// Severity levels.
const (
	SeverityMinimal  = 1
	SeverityLight    = 2
	SeverityModerate = 3
	SeveritySevere   = 4
	SeverityCritical = 5
)

// Classify maps a raw reading to a severity level. Rules are evaluated
// top-down and the first match wins: a collapse signal is ground truth and
// overrides the numeric channels, and below that either channel exceeding
// its tier threshold is sufficient on its own.
func Classify(displacementMm float64, seismicIntensity int, collapseFlag bool) (int, error) {
	if displacementMm < 0 {
		return 0, domain.ErrInvalidDisplacement
	}
	if seismicIntensity < 0 || seismicIntensity > 7 {
		return 0, domain.ErrInvalidIntensity
	}

	switch {
	case collapseFlag:
		return SeverityCritical, nil
	case seismicIntensity >= 6 || displacementMm > 80:
		return SeveritySevere, nil
	case seismicIntensity >= 5 || displacementMm > 50:
		return SeverityModerate, nil
	case seismicIntensity >= 4 || displacementMm > 20:
		return SeverityLight, nil
	default:
		return SeverityMinimal, nil
	}
}
