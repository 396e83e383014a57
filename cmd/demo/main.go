// Command demo runs the canonical earthquake scenarios against a
// memory-backed ledger and prints each verdict plus the final counters. It
// exercises the exact rule path used by the API and the ingestor, with fixed
// inputs instead of sensor traffic.
package main

import (
	"fmt"
	"os"

	"github.com/rupturahq/ruptura/internal/domain"
	"github.com/rupturahq/ruptura/internal/ledger"
)

type scenario struct {
	name         string
	sensorID     string
	displacement float64
	intensity    int
	collapse     bool
	category     domain.BuildingCategory
}

var scenarios = []scenario{
	{"Minor Earthquake", "OMR-IST-FAT-001", 15, 3, false, domain.CategoryResidential},
	{"Moderate Earthquake", "OMR-IST-BEY-002", 45, 4, false, domain.CategoryOffice},
	{"Strong Earthquake", "OMR-IST-KAD-003", 65, 5, false, domain.CategorySchool},
	{"Severe Earthquake", "OMR-IST-BES-004", 90, 6, false, domain.CategoryHospital},
	{"Building Collapse", "OMR-IST-SIS-005", 120, 7, true, domain.CategoryShoppingMall},
}

func main() {
	led := ledger.New(ledger.NewMemoryStore())

	for _, s := range scenarios {
		if err := led.RegisterSensor(s.sensorID); err != nil {
			fmt.Fprintf(os.Stderr, "register %s: %v\n", s.sensorID, err)
			os.Exit(1)
		}
	}

	fmt.Printf("%-20s %-18s %-8s %-8s %-7s %s\n",
		"SCENARIO", "SENSOR", "SEVERITY", "URGENCY", "NOTIFY", "RESPONSE TEAMS")

	for _, s := range scenarios {
		a, err := led.SubmitReading(s.sensorID, s.displacement, s.intensity, s.collapse, s.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "submit %s: %v\n", s.sensorID, err)
			os.Exit(1)
		}
		fmt.Printf("%-20s %-18s %d/5      %3d/100  %-7v %v\n",
			s.name, s.sensorID, a.SeverityLevel, a.UrgencyScore, a.NotifyExternal, a.ResponseTeams)
	}

	stats, err := led.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("sensors registered:   %d\n", stats.TotalSensors)
	fmt.Printf("events processed:     %d\n", stats.TotalEventsProcessed)
	fmt.Printf("emergency events:     %d\n", stats.TotalEmergencyEvents)
	fmt.Printf("crisis notifications: %d\n", stats.TotalNotificationsSent)
}
