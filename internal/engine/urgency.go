package engine

import (
	"math"

	"github.com/rupturahq/ruptura/internal/domain"
)

// categoryMultipliers weights urgency by occupancy type. The table is fixed
// at compile time; a configurable table would break replayability of
// historical assessments.
var categoryMultipliers = map[domain.BuildingCategory]float64{
	domain.CategoryHospital:     2.0,
	domain.CategorySchool:       1.8,
	domain.CategoryShoppingMall: 1.6,
	domain.CategoryOffice:       1.2,
	domain.CategoryResidential:  1.0,
	domain.CategoryIndustrial:   0.8,
	domain.CategoryUnknown:      1.0,
}

// Score computes the 0-100 urgency score for a severity level and building
// category. The result is floored, not rounded, and capped at 100.
func Score(severityLevel int, category domain.BuildingCategory) int {
	base := float64(severityLevel * 20)

	mult, ok := categoryMultipliers[category]
	if !ok {
		mult = 1.0
	}

	score := int(math.Floor(base * mult))
	if score > 100 {
		score = 100
	}
	return score
}
