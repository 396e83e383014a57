package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/rupturahq/ruptura/internal/domain"
	"github.com/rupturahq/ruptura/internal/ledger"
	"github.com/rupturahq/ruptura/internal/service"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	Register(app, service.New(ledger.New(ledger.NewMemoryStore())), nil)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*nethttp.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	data, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, data
}

func TestSubmitReadingFlow(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, "POST", "/sensors", `{"sensor_id":"S-001"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, "POST", "/readings",
		`{"sensor_id":"S-001","displacement_mm":90,"seismic_intensity":6,"building_category":"hospital"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("submit status = %d: %s", resp.StatusCode, body)
	}

	var a domain.DamageAssessment
	if err := json.Unmarshal(body, &a); err != nil {
		t.Fatalf("decode assessment: %v", err)
	}
	if a.SeverityLevel != 4 || a.UrgencyScore != 100 || !a.NotifyExternal {
		t.Fatalf("unexpected assessment: %+v", a)
	}

	resp, body = doJSON(t, app, "GET", "/sensors/S-001/assessment", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("assessment status = %d: %s", resp.StatusCode, body)
	}

	resp, body = doJSON(t, app, "GET", "/stats", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("stats status = %d", resp.StatusCode)
	}
	var stats domain.SystemStats
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalSensors != 1 || stats.TotalEventsProcessed != 1 || stats.TotalEmergencyEvents != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestErrorStatusMapping(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"unknown sensor submit", "POST", "/readings", `{"sensor_id":"ghost","displacement_mm":1}`, fiber.StatusNotFound},
		{"no data", "GET", "/sensors/ghost/assessment", "", fiber.StatusNotFound},
		{"deactivate unknown", "DELETE", "/sensors/ghost", "", fiber.StatusNotFound},
		{"missing sensor id", "POST", "/sensors", `{}`, fiber.StatusBadRequest},
		{"report without cloud", "POST", "/sensors/ghost/report", "", fiber.StatusServiceUnavailable},
	}
	for _, c := range cases {
		resp, body := doJSON(t, app, c.method, c.path, c.body)
		if resp.StatusCode != c.want {
			t.Fatalf("%s: status = %d, want %d: %s", c.name, resp.StatusCode, c.want, body)
		}
	}
}

func TestErrorStatusMappingRegistered(t *testing.T) {
	app := newTestApp()

	if resp, _ := doJSON(t, app, "POST", "/sensors", `{"sensor_id":"S-001"}`); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register failed: %d", resp.StatusCode)
	}

	resp, _ := doJSON(t, app, "POST", "/sensors", `{"sensor_id":"S-001"}`)
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("duplicate register status = %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "POST", "/readings", `{"sensor_id":"S-001","displacement_mm":10,"seismic_intensity":9}`)
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("invalid intensity status = %d", resp.StatusCode)
	}

	if resp, _ := doJSON(t, app, "DELETE", "/sensors/S-001", ""); resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("deactivate failed: %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, "POST", "/readings", `{"sensor_id":"S-001","displacement_mm":10,"seismic_intensity":2}`)
	if resp.StatusCode != fiber.StatusGone {
		t.Fatalf("inactive sensor status = %d", resp.StatusCode)
	}
}
