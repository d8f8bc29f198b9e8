package database

import (
	"github.com/primebox/storefront/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.RentalPlan{},
		&model.Order{},
		&model.OrderItem{},
		&model.CareerApplication{},
	)
}
