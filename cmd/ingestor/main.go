package main

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/rupturahq/ruptura/internal/config"
	"github.com/rupturahq/ruptura/internal/database"
	"github.com/rupturahq/ruptura/internal/ledger"
	"github.com/rupturahq/ruptura/internal/repository"
	"github.com/rupturahq/ruptura/internal/service"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// The ingestor shares the registry with the API, so it needs the durable
	// store: an empty in-process registry would reject every reading.
	if !config.UsePostgres() {
		log.Fatal().Msg("ingestor requires USE_POSTGRES=true")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	svcs := service.New(ledger.New(repository.New(db)))

	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		if err := svcs.Readings.FromMQTT(msg.Topic(), msg.Payload()); err != nil {
			log.Error().Err(err).Msg("ingest failed")
		}
	}

	if token := client.Subscribe(config.MQTTTopic(), 0, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}

	log.Info().Str("topic", config.MQTTTopic()).Msg("ingestor running; Ctrl+C to stop")
	for {
		time.Sleep(10 * time.Second)
	}
}
