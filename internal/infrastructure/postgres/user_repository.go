package postgres

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/oksasatya/go-store-registry/internal/domain/entity"
	"github.com/oksasatya/go-store-registry/internal/domain/repository"
)

// UserRepository hydrates the user aggregate on every read: GetAll and GetOne
// eagerly attach the profile, address, role and phone rows so callers never
// see a partially assembled user.
type UserRepository struct {
	*GormRepository[entity.User]
}

func NewUserRepository(db *gorm.DB, logger *logrus.Logger) *UserRepository {
	return &UserRepository{GormRepository: NewRepository[entity.User](db, logger)}
}

func (r *UserRepository) hydrated(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Preload("Profile").
		Preload("Address").
		Preload("Role").
		Preload("Phone")
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*entity.User, error) {
	var users []*entity.User
	if err := r.hydrated(ctx).Find(&users).Error; err != nil {
		r.log.WithError(err).Error("get all failed")
		return nil, repository.ErrNotFound
	}
	return users, nil
}

func (r *UserRepository) GetOne(ctx context.Context, filter repository.Filter) (*entity.User, error) {
	var user entity.User
	if err := r.hydrated(ctx).Where(condition(filter), filter.Value).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.WithError(err).WithField("filter", filter.String()).Error("get one failed")
		}
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

var _ repository.Repository[entity.User] = (*UserRepository)(nil)
