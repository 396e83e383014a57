package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rupturahq/ruptura/internal/cloud"
	"github.com/rupturahq/ruptura/internal/domain"
	"github.com/rupturahq/ruptura/internal/service"
)

type submitRequest struct {
	SensorID         string  `json:"sensor_id"`
	DisplacementMm   float64 `json:"displacement_mm"`
	SeismicIntensity int     `json:"seismic_intensity"`
	CollapseFlag     bool    `json:"collapse_flag"`
	BuildingCategory string  `json:"building_category"`
}

// Register wires the API routes. exporter is nil when cloud services are
// disabled; the report route then answers 503.
func Register(app *fiber.App, svcs *service.Services, exporter *cloud.ReportExporter) {
	g := app.Group("/")

	g.Post("sensors", func(c *fiber.Ctx) error {
		var req struct {
			SensorID string `json:"sensor_id"`
		}
		if err := c.BodyParser(&req); err != nil || req.SensorID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "sensor_id required"})
		}
		if err := svcs.Ledger.RegisterSensor(req.SensorID); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusCreated)
	})

	g.Delete("sensors/:id", func(c *fiber.Ctx) error {
		if err := svcs.Ledger.DeactivateSensor(c.Params("id")); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	g.Get("sensors", func(c *fiber.Ctx) error {
		ids, err := svcs.Ledger.ListSensorIDs()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"sensor_ids": ids})
	})

	g.Get("sensors/:id/reading", func(c *fiber.Ctx) error {
		rd, err := svcs.Ledger.GetReading(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(rd)
	})

	g.Get("sensors/:id/assessment", func(c *fiber.Ctx) error {
		a, err := svcs.Ledger.GetAssessment(c.Params("id"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(a)
	})

	g.Post("sensors/:id/report", func(c *fiber.Ctx) error {
		if exporter == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "cloud services disabled"})
		}
		id := c.Params("id")
		a, err := svcs.Ledger.GetAssessment(id)
		if err != nil {
			return fail(c, err)
		}
		rd, err := svcs.Ledger.GetReading(id)
		if err != nil {
			return fail(c, err)
		}
		url, err := exporter.UploadAssessmentReport(rd, a)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(fiber.Map{"report_url": url})
	})

	g.Post("readings", func(c *fiber.Ctx) error {
		var req submitRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
		a, err := svcs.Ledger.SubmitReading(req.SensorID, req.DisplacementMm,
			req.SeismicIntensity, req.CollapseFlag,
			domain.ParseBuildingCategory(req.BuildingCategory))
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(a)
	})

	g.Get("stats", func(c *fiber.Ctx) error {
		stats, err := svcs.Ledger.Stats()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(stats)
	})
}

func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrDuplicateSensor):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrUnknownSensor), errors.Is(err, domain.ErrNoDataAvailable):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrSensorInactive):
		status = fiber.StatusGone
	case errors.Is(err, domain.ErrInvalidIntensity), errors.Is(err, domain.ErrInvalidDisplacement):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
