package main

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/operations"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Siembra los datos de demostración sin levantar el servidor HTTP.
// Uso: go run ./cmd/seed
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	operationRepo := postgres.NewOperationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	operationUC := operations.NewOperationUseCase(txRunner, operationRepo)
	seedUC := usecase.NewSeedUseCase(productRepo, warehouseRepo, locationRepo, userRepo, operationRepo, operationUC)

	if err := seedUC.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	log.Info().Msg("seed completado")
}
