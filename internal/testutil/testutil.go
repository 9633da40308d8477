package testutil

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oksasatya/go-store-registry/internal/domain/entity"
)

// Logger returns a logger that swallows output so test logs stay readable.
func Logger(tb testing.TB) *logrus.Logger {
	tb.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// UserDB returns a fresh in-memory store migrated for the user cluster.
func UserDB(tb testing.TB) *gorm.DB {
	return open(tb, "user",
		&entity.Profile{},
		&entity.Address{},
		&entity.Role{},
		&entity.Phone{},
		&entity.User{},
	)
}

// ProductDB returns a fresh in-memory store migrated for the product cluster.
func ProductDB(tb testing.TB) *gorm.DB {
	return open(tb, "product",
		&entity.Category{},
		&entity.Manufacturer{},
		&entity.Price{},
		&entity.ProductionInfo{},
		&entity.Product{},
	)
}

func open(tb testing.TB, suffix string, models ...any) *gorm.DB {
	tb.Helper()

	// One named shared-cache database per test and cluster, so the pool's
	// connections all see the same memory store.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name()) + "-" + suffix
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(models...); err != nil {
		tb.Fatalf("failed to migrate test db: %v", err)
	}
	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
