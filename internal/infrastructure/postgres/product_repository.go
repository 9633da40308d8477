package postgres

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/oksasatya/go-store-registry/internal/domain/entity"
	"github.com/oksasatya/go-store-registry/internal/domain/repository"
)

// ProductRepository hydrates the product aggregate on every read, attaching
// the category, manufacturer, price and production rows.
type ProductRepository struct {
	*GormRepository[entity.Product]
}

func NewProductRepository(db *gorm.DB, logger *logrus.Logger) *ProductRepository {
	return &ProductRepository{GormRepository: NewRepository[entity.Product](db, logger)}
}

func (r *ProductRepository) hydrated(ctx context.Context) *gorm.DB {
	return r.conn(ctx).
		Preload("Category").
		Preload("Manufacturer").
		Preload("Price").
		Preload("Production")
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := r.hydrated(ctx).Find(&products).Error; err != nil {
		r.log.WithError(err).Error("get all failed")
		return nil, repository.ErrNotFound
	}
	return products, nil
}

func (r *ProductRepository) GetOne(ctx context.Context, filter repository.Filter) (*entity.Product, error) {
	var product entity.Product
	if err := r.hydrated(ctx).Where(condition(filter), filter.Value).First(&product).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.WithError(err).WithField("filter", filter.String()).Error("get one failed")
		}
		return nil, repository.ErrNotFound
	}
	return &product, nil
}

var _ repository.Repository[entity.Product] = (*ProductRepository)(nil)
