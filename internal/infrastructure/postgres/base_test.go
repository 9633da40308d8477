package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-store-registry/internal/domain/entity"
	"github.com/oksasatya/go-store-registry/internal/domain/repository"
	"github.com/oksasatya/go-store-registry/internal/testutil"
)

func TestRepositoryCreateThenGetOne(t *testing.T) {
	db := testutil.UserDB(t)
	repo := NewRepository[entity.Role](db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Role{Name: "ADMIN"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.GetOne(ctx, repository.Eq("name", "ADMIN"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "ADMIN", got.Name)
}

func TestRepositoryGetOneMissing(t *testing.T) {
	db := testutil.UserDB(t)
	repo := NewRepository[entity.Role](db, testutil.Logger(t))

	_, err := repo.GetOne(context.Background(), repository.Eq("name", "NOPE"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepositoryExistsLifecycle(t *testing.T) {
	db := testutil.UserDB(t)
	repo := NewRepository[entity.Phone](db, testutil.Logger(t))
	ctx := context.Background()

	filter := repository.Eq("number", "0701234567")
	assert.False(t, repo.Exists(ctx, filter))

	_, err := repo.Create(ctx, &entity.Phone{Number: "0701234567"})
	require.NoError(t, err)
	assert.True(t, repo.Exists(ctx, filter))

	assert.True(t, repo.Delete(ctx, filter))
	assert.False(t, repo.Exists(ctx, filter))
	assert.False(t, repo.Delete(ctx, filter))
}

func TestRepositoryGetAll(t *testing.T) {
	db := testutil.UserDB(t)
	repo := NewRepository[entity.Address](db, testutil.Logger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.Address{StreetName: "First Street", City: "Gothenburg"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entity.Address{StreetName: "Second Street", City: "Malmo"})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepositoryUpdateOverwritesFields(t *testing.T) {
	db := testutil.UserDB(t)
	repo := NewRepository[entity.Profile](db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Profile{FirstName: "Anna", LastName: "Svensson"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, repository.Eq("id", created.ID),
		&entity.Profile{FirstName: "Britt", LastName: "Larsson"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Britt", updated.FirstName)
	assert.Equal(t, "Larsson", updated.LastName)

	got, err := repo.GetOne(ctx, repository.Eq("id", created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Britt", got.FirstName)
}

func TestRepositoryUpdateMissingWritesNothing(t *testing.T) {
	db := testutil.UserDB(t)
	repo := NewRepository[entity.Profile](db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &entity.Profile{FirstName: "Anna", LastName: "Svensson"})
	require.NoError(t, err)

	// A filter built from a never-persisted record holds the zero identifier
	// and must not touch any existing row.
	_, err = repo.Update(ctx, repository.Eq("id", uint(0)),
		&entity.Profile{FirstName: "Britt", LastName: "Larsson"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := repo.GetOne(ctx, repository.Eq("id", created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)
}

func TestRepositoryUniqueIndexRejection(t *testing.T) {
	db := testutil.UserDB(t)
	repo := NewRepository[entity.Role](db, testutil.Logger(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, &entity.Role{Name: "ADMIN"})
	require.NoError(t, err)

	// The store's unique index is the backstop; the constraint violation
	// surfaces as the merged failure sentinel.
	_, err = repo.Create(ctx, &entity.Role{Name: "ADMIN"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
