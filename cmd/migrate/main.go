package main

import (
	"context"
	"flag"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/jhoicas/multistore-api/internal/infrastructure/postgres"
	"github.com/jhoicas/multistore-api/internal/infrastructure/postgres/migrations"
	"github.com/jhoicas/multistore-api/pkg/config"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// migrate aplica el esquema embebido. Uso: migrate [-cmd up|down|status|version].
func main() {
	command := flag.String("cmd", "up", "comando goose: up, down, status, version")
	flag.Parse()

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

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("dialecto goose")
	}
	if err := goose.RunContext(ctx, *command, db, "."); err != nil {
		log.Fatal().Err(err).Str("cmd", *command).Msg("migración")
	}
	log.Info().Str("cmd", *command).Msg("migración completada")
}
