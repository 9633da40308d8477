package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-store-registry/config"
	"github.com/oksasatya/go-store-registry/internal/application"
	"github.com/oksasatya/go-store-registry/internal/container"
	"github.com/oksasatya/go-store-registry/internal/domain/entity"
	"github.com/oksasatya/go-store-registry/internal/interface/console"
	pginfra "github.com/oksasatya/go-store-registry/internal/infrastructure/postgres"
	"github.com/oksasatya/go-store-registry/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	container.SetConfig(config.Load())
	cfg := container.GetConfig()

	container.SetLogger(helpers.NewLogger(cfg.AppName, cfg.Env))
	logger := container.GetLogger()

	userDB, err := pginfra.OpenUserStore(cfg.UserDSN())
	if err != nil {
		log.Fatalf("failed to open user store: %v", err)
	}
	defer pginfra.Close(userDB)
	container.SetUserDB(userDB)

	productDB, err := pginfra.OpenProductStore(cfg.ProductDSN())
	if err != nil {
		log.Fatalf("failed to open product store: %v", err)
	}
	defer pginfra.Close(productDB)
	container.SetProductDB(productDB)

	container.SetHasher(helpers.NewPasswordHasher(cfg.HashKey, cfg.HashIterations))

	container.SetUserService(application.NewUserService(
		pginfra.NewUserRepository(container.GetUserDB(), logger),
		pginfra.NewRepository[entity.Profile](container.GetUserDB(), logger),
		pginfra.NewRepository[entity.Address](container.GetUserDB(), logger),
		pginfra.NewRepository[entity.Role](container.GetUserDB(), logger),
		pginfra.NewRepository[entity.Phone](container.GetUserDB(), logger),
		pginfra.NewTxRunner(container.GetUserDB()),
		container.GetHasher(),
		logger,
	))
	container.SetProductService(application.NewProductService(
		pginfra.NewProductRepository(container.GetProductDB(), logger),
		pginfra.NewRepository[entity.Category](container.GetProductDB(), logger),
		pginfra.NewRepository[entity.Manufacturer](container.GetProductDB(), logger),
		pginfra.NewRepository[entity.Price](container.GetProductDB(), logger),
		pginfra.NewRepository[entity.ProductionInfo](container.GetProductDB(), logger),
		pginfra.NewTxRunner(container.GetProductDB()),
		logger,
	))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	console.New(container.GetUserService(), container.GetProductService(), os.Stdin, os.Stdout).Run(ctx)
	logger.Info("registry console exited")
}
