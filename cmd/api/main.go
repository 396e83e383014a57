package main

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/rupturahq/ruptura/internal/cloud"
	"github.com/rupturahq/ruptura/internal/config"
	"github.com/rupturahq/ruptura/internal/database"
	httpHandlers "github.com/rupturahq/ruptura/internal/http"
	"github.com/rupturahq/ruptura/internal/ledger"
	"github.com/rupturahq/ruptura/internal/metrics"
	"github.com/rupturahq/ruptura/internal/repository"
	"github.com/rupturahq/ruptura/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	var store ledger.Store
	if config.UsePostgres() {
		db, err := database.Connect()
		if err != nil {
			log.Fatal().Err(err).Msg("db connect failed")
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("db migrate failed")
		}
		store = repository.New(db)
	} else {
		store = ledger.NewMemoryStore()
		log.Warn().Msg("using in-memory store; ledger is not durable")
	}

	led := ledger.New(store)

	reg := prometheus.NewRegistry()
	led.Subscribe(metrics.NewCollector(reg))

	var exporter *cloud.ReportExporter
	if config.UseCloudServices() {
		notifier, err := cloud.NewCrisisNotifier(config.AWSRegion(), config.SNSTopicArn())
		if err != nil {
			log.Fatal().Err(err).Msg("sns client failed")
		}
		led.Subscribe(notifier)

		exporter, err = cloud.NewReportExporter(config.AWSRegion(), config.S3Bucket())
		if err != nil {
			log.Fatal().Err(err).Msg("s3 client failed")
		}
	}

	go func() {
		addr := config.MetricsAddr()
		mux := nethttp.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		log.Info().Str("addr", addr).Msg("metrics listening")
		if err := nethttp.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Msg("metrics server exit")
		}
	}()

	svcs := service.New(led)
	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	httpHandlers.Register(app, svcs, exporter)

	addr := viper.GetString("API_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}
