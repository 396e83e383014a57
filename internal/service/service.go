package service

import (
	"encoding/json"

	"github.com/rupturahq/ruptura/internal/domain"
	"github.com/rupturahq/ruptura/internal/ledger"
)

type Services struct {
	Ledger   *ledger.Ledger
	Readings *ReadingService
}

func New(l *ledger.Ledger) *Services {
	return &Services{
		Ledger:   l,
		Readings: &ReadingService{ledger: l},
	}
}

type ReadingService struct {
	ledger *ledger.Ledger
}

// FromMQTT decodes a sensor payload and submits it to the ledger. Any error
// (malformed payload, unknown sensor, invalid channel value) drops the
// message without producing an assessment.
func (s *ReadingService) FromMQTT(topic string, payload []byte) error {
	var r struct {
		SensorID         string  `json:"sensor_id"`
		DisplacementMm   float64 `json:"displacement_mm"`
		SeismicIntensity int     `json:"seismic_intensity"`
		CollapseFlag     bool    `json:"collapse_flag"`
		BuildingCategory string  `json:"building_category"`
	}
	if err := json.Unmarshal(payload, &r); err != nil {
		return err
	}

	_, err := s.ledger.SubmitReading(r.SensorID, r.DisplacementMm, r.SeismicIntensity,
		r.CollapseFlag, domain.ParseBuildingCategory(r.BuildingCategory))
	return err
}
