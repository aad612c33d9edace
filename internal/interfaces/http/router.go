package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/conversor-api/internal/application/dto"
	"github.com/jhoicas/conversor-api/internal/application/usecase"
	"github.com/jhoicas/conversor-api/internal/infrastructure/metrics"
	"github.com/jhoicas/conversor-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/swaggo/swag"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ConversionUC *usecase.ConversionUseCase
	Log          *logger.Logger      // nil = sin log de peticiones
	Metrics      *metrics.Recorder   // nil = sin métricas HTTP
	Gatherer     prometheus.Gatherer // nil = no se expone MetricsPath
	MetricsPath  string
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
	}
	if deps.Gatherer != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(metrics.Handler(deps.Gatherer)))
	}

	api := app.Group("/api")

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.ConversionUC)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/categories/:id/units", catalogHandler.ListUnits)
	api.Get("/catalog", catalogHandler.Export)

	// Conversión
	conversionHandler := NewConversionHandler(deps.ConversionUC)
	api.Post("/convert", conversionHandler.Convert)
	api.Get("/convert", conversionHandler.ConvertQuery)
	api.Post("/swap", conversionHandler.Swap)

	// Documento OpenAPI registrado por el paquete docs (swag)
	api.Get("/openapi.json", openAPIDoc)
}

func openAPIDoc(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DOCS_UNAVAILABLE", Message: "documentación no registrada"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.SendString(doc)
}
