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

	_ "github.com/jhoicas/multistore-api/docs"
	"github.com/jhoicas/multistore-api/internal/application/importer"
	"github.com/jhoicas/multistore-api/internal/infrastructure/postgres"
	"github.com/jhoicas/multistore-api/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/multistore-api/internal/interfaces/http"
	"github.com/jhoicas/multistore-api/pkg/config"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// @title        Multistore API
// @version      1.0
// @description  Importación masiva de ventas, inventario, productos, clientes y proveedores.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	importUC := importer.NewImportUseCase(
		importer.Repositories{
			Stores:     postgres.NewStoreRepository(pool),
			Customers:  postgres.NewCustomerRepository(pool),
			Products:   postgres.NewProductRepository(pool),
			Sources:    postgres.NewSourceRepository(pool),
			Categories: postgres.NewCategoryRepository(pool),
			Inventory:  postgres.NewInventoryReceivedRepository(pool),
		},
		postgres.NewTxRunner(pool),
		spreadsheet.NewXLSXReader(),
		log,
		importer.Options{SalesStoreScoped: cfg.Import.SalesStoreScoped},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.Import.MaxUploadBytes(),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: cfg.Import.MaxDuration + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Multistore API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Importer:      importUC,
		ImportTimeout: cfg.Import.MaxDuration,
		JWTSecret:     cfg.JWT.Secret,
		JWTIssuer:     cfg.JWT.Issuer,
		Log:           log,
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
