package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oksasatya/go-store-registry/internal/domain/repository"
	"github.com/oksasatya/go-store-registry/pkg/helpers"
)

// GormRepository is the store-backed implementation of repository.Repository,
// instantiated once per record type. Store failures are logged here and
// surface to callers as the same sentinel as a missing row.
//
// Record types are expected to carry an ID primary-key field.
type GormRepository[T any] struct {
	db  *gorm.DB
	log *logrus.Entry
}

func NewRepository[T any](db *gorm.DB, logger *logrus.Logger) *GormRepository[T] {
	var zero T
	return &GormRepository[T]{
		db:  db,
		log: helpers.ComponentLogger(logger, fmt.Sprintf("repo:%T", zero)),
	}
}

// conn returns the handle for this call: the surrounding transaction when one
// is in the context, the shared pool otherwise.
func (r *GormRepository[T]) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db).WithContext(ctx)
}

func (r *GormRepository[T]) Create(ctx context.Context, record *T) (*T, error) {
	if err := r.conn(ctx).Create(record).Error; err != nil {
		r.log.WithError(err).Error("create failed")
		return nil, repository.ErrNotFound
	}
	return record, nil
}

func (r *GormRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	var records []*T
	if err := r.conn(ctx).Find(&records).Error; err != nil {
		r.log.WithError(err).Error("get all failed")
		return nil, repository.ErrNotFound
	}
	return records, nil
}

func (r *GormRepository[T]) GetOne(ctx context.Context, filter repository.Filter) (*T, error) {
	var record T
	if err := r.conn(ctx).Where(condition(filter), filter.Value).First(&record).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.WithError(err).WithField("filter", filter.String()).Error("get one failed")
		}
		return nil, repository.ErrNotFound
	}
	return &record, nil
}

func (r *GormRepository[T]) Update(ctx context.Context, filter repository.Filter, record *T) (*T, error) {
	db := r.conn(ctx)

	var existing T
	if err := db.Where(condition(filter), filter.Value).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.WithError(err).WithField("filter", filter.String()).Error("update lookup failed")
		}
		return nil, repository.ErrNotFound
	}

	// Overwrite every scalar column of the located row with the new record's
	// fields, keeping the row's own primary key and leaving associated rows
	// untouched.
	if err := db.Model(&existing).
		Select("*").
		Omit("id", clause.Associations).
		Updates(record).Error; err != nil {
		r.log.WithError(err).WithField("filter", filter.String()).Error("update failed")
		return nil, repository.ErrNotFound
	}

	var updated T
	if err := db.Where("id = ?", primaryKey(&existing)).First(&updated).Error; err != nil {
		r.log.WithError(err).Error("update readback failed")
		return nil, repository.ErrNotFound
	}
	return &updated, nil
}

func (r *GormRepository[T]) Delete(ctx context.Context, filter repository.Filter) bool {
	db := r.conn(ctx)

	var record T
	if err := db.Where(condition(filter), filter.Value).First(&record).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.WithError(err).WithField("filter", filter.String()).Error("delete lookup failed")
		}
		return false
	}
	if err := db.Delete(&record).Error; err != nil {
		r.log.WithError(err).WithField("filter", filter.String()).Error("delete failed")
		return false
	}
	return true
}

func (r *GormRepository[T]) Exists(ctx context.Context, filter repository.Filter) bool {
	var count int64
	if err := r.conn(ctx).Model(new(T)).Where(condition(filter), filter.Value).Count(&count).Error; err != nil {
		r.log.WithError(err).WithField("filter", filter.String()).Error("exists failed")
		return false
	}
	return count > 0
}

// condition translates a filter specification to a SQL fragment. Field names
// come from internal call sites, never from user input.
func condition(f repository.Filter) string {
	op := f.Op
	if op == "" {
		op = "="
	}
	return f.Field + " " + op + " ?"
}

func primaryKey[T any](record *T) any {
	v := reflect.ValueOf(record).Elem().FieldByName("ID")
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
