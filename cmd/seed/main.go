package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-store-registry/config"
	"github.com/oksasatya/go-store-registry/internal/application"
	"github.com/oksasatya/go-store-registry/internal/container"
	"github.com/oksasatya/go-store-registry/internal/domain/entity"
	pginfra "github.com/oksasatya/go-store-registry/internal/infrastructure/postgres"
	"github.com/oksasatya/go-store-registry/pkg/helpers"
)

// Seeds one demo user and one demo product through the coordinators, so the
// seeded rows go through the same hashing and aggregate assembly as real ones.
func main() {
	_ = godotenv.Load()
	container.SetConfig(config.Load())
	cfg := container.GetConfig()

	container.SetLogger(helpers.NewLogger(cfg.AppName, cfg.Env))
	logger := container.GetLogger()

	userDB, err := pginfra.OpenUserStore(cfg.UserDSN())
	if err != nil {
		log.Fatalf("failed to open user store: %v", err)
	}
	defer pginfra.Close(userDB)

	productDB, err := pginfra.OpenProductStore(cfg.ProductDSN())
	if err != nil {
		log.Fatalf("failed to open product store: %v", err)
	}
	defer pginfra.Close(productDB)

	container.SetHasher(helpers.NewPasswordHasher(cfg.HashKey, cfg.HashIterations))
	hasher := container.GetHasher()

	userService := application.NewUserService(
		pginfra.NewUserRepository(userDB, logger),
		pginfra.NewRepository[entity.Profile](userDB, logger),
		pginfra.NewRepository[entity.Address](userDB, logger),
		pginfra.NewRepository[entity.Role](userDB, logger),
		pginfra.NewRepository[entity.Phone](userDB, logger),
		pginfra.NewTxRunner(userDB),
		hasher,
		logger,
	)
	productService := application.NewProductService(
		pginfra.NewProductRepository(productDB, logger),
		pginfra.NewRepository[entity.Category](productDB, logger),
		pginfra.NewRepository[entity.Manufacturer](productDB, logger),
		pginfra.NewRepository[entity.Price](productDB, logger),
		pginfra.NewRepository[entity.ProductionInfo](productDB, logger),
		pginfra.NewTxRunner(productDB),
		logger,
	)

	ctx := context.Background()

	demoUser := application.UserView{
		FirstName:   "Demo",
		LastName:    "User",
		Email:       "demo@example.com",
		Password:    "password123",
		RoleName:    "admin",
		PhoneNumber: "+46701234567",
		StreetName:  "Main Street 1",
		PostalCode:  "11122",
		City:        "Stockholm",
	}
	if userService.CreateUser(ctx, demoUser) {
		fmt.Printf("seeded user: email=%s password=%s\n", demoUser.Email, demoUser.Password)
	} else {
		fmt.Printf("user %s already present, skipped\n", demoUser.Email)
	}

	demoProduct := application.ProductView{
		Name:             "Widget",
		Description:      "A demonstration widget",
		QuantityInStock:  5,
		ProductionDate:   time.Now().AddDate(0, -1, 0),
		CategoryName:     "Gadgets",
		ManufacturerName: "Acme",
		Price:            9.99,
	}
	if productService.CreateProduct(ctx, demoProduct) {
		fmt.Printf("seeded product: name=%s price=%.2f\n", demoProduct.Name, demoProduct.Price)
	} else {
		fmt.Printf("product %s already present, skipped\n", demoProduct.Name)
	}
}
