package postgres

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oksasatya/go-store-registry/internal/domain/entity"
)

// Open connects to the store through database/sql with the pgx stdlib driver
// and wraps the connection in a GORM handle. GORM's own query log is silenced;
// diagnostics go through the application logger instead.
func Open(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// OpenUserStore opens the user cluster store and ensures its five tables and
// unique indexes (email, role name) exist.
func OpenUserStore(dsn string) (*gorm.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&entity.Profile{},
		&entity.Address{},
		&entity.Role{},
		&entity.Phone{},
		&entity.User{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenProductStore opens the product cluster store; no uniqueness beyond the
// generated identifiers.
func OpenProductStore(dsn string) (*gorm.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&entity.Category{},
		&entity.Manufacturer{},
		&entity.Price{},
		&entity.ProductionInfo{},
		&entity.Product{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// Close releases the underlying sql connection pool of a GORM handle.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
