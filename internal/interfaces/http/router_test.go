package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jhoicas/conversor-api/docs"
	"github.com/jhoicas/conversor-api/internal/application/usecase"
	"github.com/jhoicas/conversor-api/internal/domain/catalog"
	"github.com/jhoicas/conversor-api/internal/domain/conversion"
	"github.com/jhoicas/conversor-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/conversor-api/internal/interfaces/http"
	"github.com/jhoicas/conversor-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye una aplicación Fiber con el router completo sobre el catálogo integrado.
// Con withMetrics se registra un recorder sobre un registry propio y se expone /metrics.
func buildTestApp(t *testing.T, withMetrics bool) *fiber.App {
	t.Helper()
	cat := catalog.Standard()
	deps := apphttp.RouterDeps{}

	var uc *usecase.ConversionUseCase
	if withMetrics {
		reg := prometheus.NewRegistry()
		rec := metrics.NewRecorder(reg, metrics.WithNamespace("test"))
		uc = usecase.NewConversionUseCase(cat, conversion.NewEngine(cat), rec, nil)
		deps.Metrics = rec
		deps.Gatherer = reg
		deps.MetricsPath = "/metrics"
	} else {
		uc = usecase.NewConversionUseCase(cat, conversion.NewEngine(cat), nil, nil)
	}
	deps.ConversionUC = uc

	app := fiber.New()
	apphttp.Router(app, deps)
	return app
}

// doRequest ejecuta la petición y devuelve status y cuerpo.
func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, []byte, http.Header) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body, resp.Header
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(body, &m), "cuerpo: %s", body)
	return m
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestListCategories(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, header := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, header.Get(apphttp.HeaderRequestID), "se genera un request id")

	items := decode(t, body)["items"].([]any)
	require.Len(t, items, 13)
	first := items[0].(map[string]any)
	assert.Equal(t, "length", first["id"])
	assert.Equal(t, "meter", first["base_unit"])
}

func TestRequestID_Propagated(t *testing.T) {
	app := buildTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-123")
	_, _, header := doRequest(t, app, req)

	assert.Equal(t, "req-123", header.Get(apphttp.HeaderRequestID))
}

func TestListUnits(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/categories/temperature/units", nil))
	require.Equal(t, fiber.StatusOK, status)

	m := decode(t, body)
	assert.Equal(t, "celsius", m["default_from"])
	assert.Equal(t, "fahrenheit", m["default_to"])
	assert.Len(t, m["items"], 3)
}

func TestListUnits_UnknownCategory(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/categories/lenght/units", nil))
	assert.Equal(t, fiber.StatusNotFound, status)

	m := decode(t, body)
	assert.Equal(t, "CATEGORY_NOT_FOUND", m["code"])
	assert.Contains(t, m["message"], "length", "el mensaje sugiere el id correcto")
}

func TestExportCatalog(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	require.Equal(t, fiber.StatusOK, status)

	cats := decode(t, body)["categories"].([]any)
	require.Len(t, cats, 13)
	fuel := cats[12].(map[string]any)
	units := fuel["units"].([]any)
	mpg := units[1].(map[string]any)
	assert.Equal(t, "mpg_us", mpg["id"])
	assert.Equal(t, "reciprocal", mpg["conversion"].(map[string]any)["kind"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión
// ──────────────────────────────────────────────────────────────────────────────

func TestConvert_Post(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, postJSON("/api/convert",
		`{"category":"length","from":"mile","to":"meter","value":"1"}`))
	require.Equal(t, fiber.StatusOK, status)

	m := decode(t, body)
	assert.Equal(t, 1609.34, m["result"])
	assert.Equal(t, "1609.34", m["display"])
	assert.Equal(t, true, m["finite"])
}

func TestConvert_Query(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet,
		"/api/convert?category=data&from=megabyte&to=byte&value=1", nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "1048576", decode(t, body)["display"])
}

func TestConvert_InfiniteResultIsNull(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, postJSON("/api/convert",
		`{"category":"fuel_consumption","from":"l_per_100km","to":"mpg_us","value":"0"}`))
	require.Equal(t, fiber.StatusOK, status)

	m := decode(t, body)
	v, present := m["result"]
	assert.True(t, present)
	assert.Nil(t, v)
	assert.Equal(t, "Infinity", m["display"])
	assert.Equal(t, false, m["finite"])
}

func TestConvert_Errors(t *testing.T) {
	app := buildTestApp(t, false)

	tests := []struct {
		name       string
		req        *http.Request
		wantStatus int
		wantCode   string
	}{
		{"cuerpo inválido", postJSON("/api/convert", `{"category":`), fiber.StatusBadRequest, "INVALID_BODY"},
		{"faltan ids", postJSON("/api/convert", `{"category":"length","value":"1"}`), fiber.StatusBadRequest, "VALIDATION"},
		{"categoría desconocida", postJSON("/api/convert", `{"category":"nope","from":"a","to":"b","value":"1"}`), fiber.StatusNotFound, "CATEGORY_NOT_FOUND"},
		{"unidad desconocida", postJSON("/api/convert", `{"category":"length","from":"mile","to":"furlong","value":"1"}`), fiber.StatusNotFound, "UNIT_NOT_FOUND"},
		{"query sin ids", httptest.NewRequest(http.MethodGet, "/api/convert?value=1", nil), fiber.StatusBadRequest, "VALIDATION"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body, _ := doRequest(t, app, tt.req)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, decode(t, body)["code"])
		})
	}
}

func TestSwap(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, postJSON("/api/swap",
		`{"category":"temperature","from":"celsius","to":"fahrenheit","value":"212"}`))
	require.Equal(t, fiber.StatusOK, status)

	m := decode(t, body)
	assert.Equal(t, "fahrenheit", m["from"])
	assert.Equal(t, "celsius", m["to"])
	assert.Equal(t, "100", m["conversion"].(map[string]any)["display"])
}

func TestSwap_WithoutCategory(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, postJSON("/api/swap", `{"from":"mile","to":"meter"}`))
	require.Equal(t, fiber.StatusOK, status)

	m := decode(t, body)
	assert.Equal(t, "meter", m["from"])
	_, present := m["conversion"]
	assert.False(t, present)
}

func TestSwap_Validation(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, _ := doRequest(t, app, postJSON("/api/swap", `{"from":"mile"}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode(t, body)["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentación y métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestOpenAPIDoc(t *testing.T) {
	app := buildTestApp(t, false)

	status, body, header := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/api/openapi.json", nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, header.Get("Content-Type"), "application/json")

	m := decode(t, body)
	assert.Equal(t, "2.0", m["swagger"])
	assert.Contains(t, m["paths"], "/api/convert")
}

func TestMetricsEndpoint(t *testing.T) {
	app := buildTestApp(t, true)

	status, _, _ := doRequest(t, app, postJSON("/api/convert",
		`{"category":"length","from":"mile","to":"meter","value":"1"}`))
	require.Equal(t, fiber.StatusOK, status)

	status, body, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, fiber.StatusOK, status)

	text := string(body)
	assert.Contains(t, text, `test_conversions_total{category="length",outcome="ok"} 1`)
	assert.Contains(t, text, `test_http_requests_total{method="POST",route="/api/convert",status="200"} 1`)
}

func TestMetricsEndpoint_LabelsSurviveLaterRequests(t *testing.T) {
	app := buildTestApp(t, true)

	// Fiber reutiliza los buffers de cada petición: las etiquetas no deben cambiar con las siguientes.
	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/convert?category=length&from=mile&to=meter&value=1", nil),
		httptest.NewRequest(http.MethodGet, "/api/convert?category=volume&from=liter&to=milliliter&value=1", nil),
		postJSON("/api/convert", `{"category":"length","from":"meter","to":"foot","value":"3"}`),
		httptest.NewRequest(http.MethodGet, "/api/categories/temperature/units", nil),
		httptest.NewRequest(http.MethodGet, "/api/categories/lenght/units", nil),
	}
	for _, req := range requests {
		doRequest(t, app, req)
	}

	status, body, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, fiber.StatusOK, status, "scrape: %s", body)

	text := string(body)
	assert.Contains(t, text, `test_conversions_total{category="length",outcome="ok"} 2`)
	assert.Contains(t, text, `test_conversions_total{category="volume",outcome="ok"} 1`)
	assert.Contains(t, text, `test_http_requests_total{method="GET",route="/api/convert",status="200"} 2`)
	assert.Contains(t, text, `test_http_requests_total{method="POST",route="/api/convert",status="200"} 1`)
	assert.Contains(t, text, `test_http_requests_total{method="GET",route="/api/categories/:id/units",status="200"} 1`)
	assert.Contains(t, text, `test_http_requests_total{method="GET",route="/api/categories/:id/units",status="404"} 1`)
	assert.NotContains(t, text, "GETT")
}

func TestMetricsEndpoint_DisabledWithoutGatherer(t *testing.T) {
	app := buildTestApp(t, false)

	status, _, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	cat := catalog.Standard()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ConversionUC: usecase.NewConversionUseCase(cat, conversion.NewEngine(cat), nil, log),
		Log:          log,
	})

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set(apphttp.HeaderRequestID, "req-log")
	status, _, _ := doRequest(t, app, req)
	require.Equal(t, fiber.StatusOK, status)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "log: %s", buf.String())
	assert.Equal(t, "http", entry["message"])
	assert.Equal(t, "req-log", entry["request_id"])
	assert.Equal(t, "/api/categories", entry["path"])
	assert.Equal(t, float64(200), entry["status"])
}
