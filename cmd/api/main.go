package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/conversor-api/docs"
	"github.com/jhoicas/conversor-api/internal/application/usecase"
	"github.com/jhoicas/conversor-api/internal/domain/catalog"
	"github.com/jhoicas/conversor-api/internal/domain/conversion"
	"github.com/jhoicas/conversor-api/internal/infrastructure/metrics"
	httpRouter "github.com/jhoicas/conversor-api/internal/interfaces/http"
	"github.com/jhoicas/conversor-api/pkg/config"
	"github.com/jhoicas/conversor-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// El catálogo se construye una sola vez, antes de aceptar peticiones, y no se modifica después.
	cat := catalog.Standard()
	engine := conversion.NewEngine(cat)

	var (
		recorder *metrics.Recorder
		gatherer prometheus.Gatherer
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		recorder = metrics.NewRecorder(reg, metrics.WithNamespace(cfg.Metrics.Namespace))
		gatherer = reg
	}

	// recorder se pasa solo si existe: un *Recorder nil dentro de la interfaz no sería nil.
	var conversionUC *usecase.ConversionUseCase
	if recorder != nil {
		conversionUC = usecase.NewConversionUseCase(cat, engine, recorder, log)
	} else {
		conversionUC = usecase.NewConversionUseCase(cat, engine, nil, log)
	}
	log.Info().
		Int("categories", len(cat.ListCategories())).
		Msg("catálogo cargado")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if cfg.Swagger.Enabled {
		// Swagger UI en local: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Conversor API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConversionUC: conversionUC,
		Log:          log,
		Metrics:      recorder,
		Gatherer:     gatherer,
		MetricsPath:  cfg.Metrics.Path,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
