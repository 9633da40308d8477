package container

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/oksasatya/go-store-registry/config"
	"github.com/oksasatya/go-store-registry/internal/application"
	"github.com/oksasatya/go-store-registry/pkg/helpers"
)

// app-level container to share constructed components across packages

var (
	cfg    *config.Config
	logger *logrus.Logger

	userDB    *gorm.DB
	productDB *gorm.DB

	hasher *helpers.PasswordHasher

	userService    *application.UserService
	productService *application.ProductService
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }

func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetUserDB(db *gorm.DB) { userDB = db }
func GetUserDB() *gorm.DB   { return userDB }

func SetProductDB(db *gorm.DB) { productDB = db }
func GetProductDB() *gorm.DB   { return productDB }

func SetHasher(h *helpers.PasswordHasher) { hasher = h }
func GetHasher() *helpers.PasswordHasher  { return hasher }

func SetUserService(s *application.UserService) { userService = s }
func GetUserService() *application.UserService  { return userService }

func SetProductService(s *application.ProductService) { productService = s }
func GetProductService() *application.ProductService  { return productService }
