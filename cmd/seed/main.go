package main

import (
	"context"

	appseed "github.com/jhoicas/multistore-api/internal/application/seed"
	"github.com/jhoicas/multistore-api/internal/infrastructure/postgres"
	"github.com/jhoicas/multistore-api/pkg/config"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// seed carga proveedores, tipos de cliente y la tienda por defecto. Uso: go run ./cmd/seed
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seeder := appseed.NewSeeder(
		postgres.NewStoreRepository(pool),
		postgres.NewSourceRepository(pool),
		postgres.NewCustomerTypeRepository(pool),
		log,
	)
	rep, err := seeder.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("siembra")
	}
	log.Info().
		Int("sources_created", rep.SourcesCreated).
		Int("customer_types", rep.CustomerTypes).
		Bool("store_created", rep.StoreCreated).
		Msg("siembra completada")
}
