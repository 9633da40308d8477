package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oksasatya/go-store-registry/internal/domain/entity"
	"github.com/oksasatya/go-store-registry/internal/domain/repository"
	"github.com/oksasatya/go-store-registry/internal/testutil"
)

func seedUserAggregate(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	logger := testutil.Logger(t)
	ctx := context.Background()

	profile, err := NewRepository[entity.Profile](db, logger).Create(ctx, &entity.Profile{FirstName: "Anna", LastName: "Svensson"})
	require.NoError(t, err)
	address, err := NewRepository[entity.Address](db, logger).Create(ctx, &entity.Address{StreetName: "Main Street 1", PostalCode: "11122", City: "Stockholm"})
	require.NoError(t, err)
	role, err := NewRepository[entity.Role](db, logger).Create(ctx, &entity.Role{Name: "USER-" + email})
	require.NoError(t, err)
	phone, err := NewRepository[entity.Phone](db, logger).Create(ctx, &entity.Phone{Number: "0701234567"})
	require.NoError(t, err)

	user, err := NewRepository[entity.User](db, logger).Create(ctx, &entity.User{
		Email:     email,
		Password:  "hashed",
		ProfileID: profile.ID,
		AddressID: address.ID,
		RoleID:    role.ID,
		PhoneID:   phone.ID,
	})
	require.NoError(t, err)
	return user
}

func TestUserRepositoryGetOneHydrates(t *testing.T) {
	db := testutil.UserDB(t)
	seedUserAggregate(t, db, "anna@example.com")

	repo := NewUserRepository(db, testutil.Logger(t))
	got, err := repo.GetOne(context.Background(), repository.Eq("email", "anna@example.com"))
	require.NoError(t, err)

	require.NotNil(t, got.Profile)
	require.NotNil(t, got.Address)
	require.NotNil(t, got.Role)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "Anna", got.Profile.FirstName)
	assert.Equal(t, "Stockholm", got.Address.City)
	assert.Equal(t, "0701234567", got.Phone.Number)
}

func TestUserRepositoryGetAllHydrates(t *testing.T) {
	db := testutil.UserDB(t)
	seedUserAggregate(t, db, "anna@example.com")
	seedUserAggregate(t, db, "britt@example.com")

	repo := NewUserRepository(db, testutil.Logger(t))
	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotNil(t, u.Profile)
		assert.NotNil(t, u.Address)
		assert.NotNil(t, u.Role)
		assert.NotNil(t, u.Phone)
	}
}

func TestProductRepositoryHydrates(t *testing.T) {
	db := testutil.ProductDB(t)
	logger := testutil.Logger(t)
	ctx := context.Background()

	category, err := NewRepository[entity.Category](db, logger).Create(ctx, &entity.Category{Name: "Gadgets"})
	require.NoError(t, err)
	manufacturer, err := NewRepository[entity.Manufacturer](db, logger).Create(ctx, &entity.Manufacturer{Name: "Acme"})
	require.NoError(t, err)
	price, err := NewRepository[entity.Price](db, logger).Create(ctx, &entity.Price{Amount: 9.99})
	require.NoError(t, err)
	production, err := NewRepository[entity.ProductionInfo](db, logger).Create(ctx, &entity.ProductionInfo{})
	require.NoError(t, err)

	_, err = NewRepository[entity.Product](db, logger).Create(ctx, &entity.Product{
		Name:            "Widget",
		Description:     "A widget",
		QuantityInStock: 5,
		CategoryID:      category.ID,
		ManufacturerID:  manufacturer.ID,
		PriceID:         price.ID,
		ProductionID:    production.ID,
	})
	require.NoError(t, err)

	repo := NewProductRepository(db, logger)
	got, err := repo.GetOne(ctx, repository.Eq("name", "Widget"))
	require.NoError(t, err)
	require.NotNil(t, got.Category)
	require.NotNil(t, got.Manufacturer)
	require.NotNil(t, got.Price)
	require.NotNil(t, got.Production)
	assert.Equal(t, "Gadgets", got.Category.Name)
	assert.InDelta(t, 9.99, got.Price.Amount, 0.001)
}
