package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/oksasatya/go-store-registry/internal/domain/entity"
	"github.com/oksasatya/go-store-registry/internal/domain/repository"
	"github.com/oksasatya/go-store-registry/pkg/helpers"
)

// ProductService coordinates the product aggregate the same way UserService
// coordinates users. Product names carry no store-level uniqueness; the
// existence check here is the only duplicate guard, and it is not race-free.
type ProductService struct {
	products      repository.Repository[entity.Product]
	categories    repository.Repository[entity.Category]
	manufacturers repository.Repository[entity.Manufacturer]
	prices        repository.Repository[entity.Price]
	productions   repository.Repository[entity.ProductionInfo]
	tx            repository.TxRunner
	log           *logrus.Entry
}

func NewProductService(
	products repository.Repository[entity.Product],
	categories repository.Repository[entity.Category],
	manufacturers repository.Repository[entity.Manufacturer],
	prices repository.Repository[entity.Price],
	productions repository.Repository[entity.ProductionInfo],
	tx repository.TxRunner,
	logger *logrus.Logger,
) *ProductService {
	return &ProductService{
		products:      products,
		categories:    categories,
		manufacturers: manufacturers,
		prices:        prices,
		productions:   productions,
		tx:            tx,
		log:           helpers.ComponentLogger(logger, "ProductService"),
	}
}

// CreateProduct mints the four dependent rows and then the root referencing
// their generated keys, inside one transaction, guarded by a name existence
// check.
func (s *ProductService) CreateProduct(ctx context.Context, view ProductView) bool {
	if s.ProductExists(ctx, view.Name) {
		return false
	}

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		category, err := s.categories.Create(ctx, &entity.Category{Name: view.CategoryName})
		if err != nil {
			return err
		}
		manufacturer, err := s.manufacturers.Create(ctx, &entity.Manufacturer{Name: view.ManufacturerName})
		if err != nil {
			return err
		}
		price, err := s.prices.Create(ctx, &entity.Price{
			Amount:    view.Price,
			PriceDate: datatypes.Date(time.Now()),
		})
		if err != nil {
			return err
		}
		production, err := s.productions.Create(ctx, &entity.ProductionInfo{
			ProductionDate: datatypes.Date(view.ProductionDate),
		})
		if err != nil {
			return err
		}
		_, err = s.products.Create(ctx, &entity.Product{
			Name:            view.Name,
			Description:     view.Description,
			QuantityInStock: view.QuantityInStock,
			CategoryID:      category.ID,
			ManufacturerID:  manufacturer.ID,
			PriceID:         price.ID,
			ProductionID:    production.ID,
		})
		return err
	})
	if err != nil {
		s.log.WithError(err).WithField("name", view.Name).Error("create product failed")
		return false
	}
	return true
}

// GetAllProducts flattens every hydrated product into a view.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]ProductView, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, flattenProduct(p))
	}
	return views, nil
}

// GetOneProduct fetches the hydrated product by name.
func (s *ProductService) GetOneProduct(ctx context.Context, name string) (*ProductView, error) {
	p, err := s.products.GetOne(ctx, repository.Eq("name", name))
	if err != nil {
		return nil, err
	}
	view := flattenProduct(p)
	return &view, nil
}

// UpdateProduct locates the existing root by identifier and rewrites each
// dependent through the fetched root's dependent keys, then the root through
// its own key. The result only reflects whether the root was found.
func (s *ProductService) UpdateProduct(ctx context.Context, view ProductView) bool {
	existing, err := s.products.GetOne(ctx, repository.Eq("id", view.ID))
	if err != nil {
		return false
	}

	txErr := s.tx.InTx(ctx, func(ctx context.Context) error {
		category := &entity.Category{ID: existing.CategoryID, Name: view.CategoryName}
		_, _ = s.categories.Update(ctx, repository.Eq("id", existing.CategoryID), category)

		manufacturer := &entity.Manufacturer{ID: existing.ManufacturerID, Name: view.ManufacturerName}
		_, _ = s.manufacturers.Update(ctx, repository.Eq("id", existing.ManufacturerID), manufacturer)

		price := &entity.Price{ID: existing.PriceID, Amount: view.Price}
		_, _ = s.prices.Update(ctx, repository.Eq("id", existing.PriceID), price)

		production := &entity.ProductionInfo{
			ID:             existing.ProductionID,
			ProductionDate: datatypes.Date(view.ProductionDate),
		}
		_, _ = s.productions.Update(ctx, repository.Eq("id", existing.ProductionID), production)

		product := &entity.Product{
			Name:            view.Name,
			Description:     view.Description,
			QuantityInStock: view.QuantityInStock,
			CategoryID:      existing.CategoryID,
			ManufacturerID:  existing.ManufacturerID,
			PriceID:         existing.PriceID,
			ProductionID:    existing.ProductionID,
		}
		_, _ = s.products.Update(ctx, repository.Eq("id", existing.ID), product)
		return nil
	})
	if txErr != nil {
		s.log.WithError(txErr).WithField("id", view.ID).Error("update product failed")
		return false
	}
	return true
}

// DeleteProduct fetches the root by name and deletes its dependents by the
// fetched root's keys, then the root itself.
func (s *ProductService) DeleteProduct(ctx context.Context, view ProductView) bool {
	p, err := s.products.GetOne(ctx, repository.Eq("name", view.Name))
	if err != nil {
		return false
	}

	txErr := s.tx.InTx(ctx, func(ctx context.Context) error {
		s.categories.Delete(ctx, repository.Eq("id", p.CategoryID))
		s.manufacturers.Delete(ctx, repository.Eq("id", p.ManufacturerID))
		s.prices.Delete(ctx, repository.Eq("id", p.PriceID))
		s.productions.Delete(ctx, repository.Eq("id", p.ProductionID))
		s.products.Delete(ctx, repository.Eq("id", p.ID))
		return nil
	})
	if txErr != nil {
		s.log.WithError(txErr).WithField("name", view.Name).Error("delete product failed")
		return false
	}
	return true
}

// ProductExists is the duplicate-name guard used before creates.
func (s *ProductService) ProductExists(ctx context.Context, name string) bool {
	if s.products.Exists(ctx, repository.Eq("name", name)) {
		s.log.WithField("name", name).Debug("product already exists")
		return true
	}
	return false
}

func flattenProduct(p *entity.Product) ProductView {
	view := ProductView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		QuantityInStock: p.QuantityInStock,
	}
	if p.Category != nil {
		view.CategoryName = p.Category.Name
	}
	if p.Manufacturer != nil {
		view.ManufacturerName = p.Manufacturer.Name
	}
	if p.Price != nil {
		view.Price = p.Price.Amount
	}
	if p.Production != nil {
		view.ProductionDate = time.Time(p.Production.ProductionDate)
	}
	return view
}
