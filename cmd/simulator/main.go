package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/rupturahq/ruptura/internal/config"
)

type reading struct {
	SensorID         string  `json:"sensor_id"`
	DisplacementMm   float64 `json:"displacement_mm"`
	SeismicIntensity int     `json:"seismic_intensity"`
	CollapseFlag     bool    `json:"collapse_flag"`
	BuildingCategory string  `json:"building_category"`
}

var categories = []string{"hospital", "school", "shopping_mall", "office", "residential", "industrial"}

func main() {
	rand.Seed(time.Now().UnixNano())
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	for i := 0; i < 100; i++ {
		displacement := rand.Float64() * 120
		// D7S units flag collapse only under extreme displacement, and even
		// then not on every shake.
		collapse := displacement > 80 && rand.Float64() > 0.7

		r := reading{
			SensorID:         fmt.Sprintf("OMR-IST-%03d", rand.Intn(5)+1),
			DisplacementMm:   displacement,
			SeismicIntensity: rand.Intn(8),
			CollapseFlag:     collapse,
			BuildingCategory: categories[rand.Intn(len(categories))],
		}
		payload, _ := json.Marshal(r)
		token := client.Publish(config.MQTTTopic(), 0, false, payload)
		token.Wait()
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
