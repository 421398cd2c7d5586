package migrations

import (
	"github.com/foodhubdev/foodhub/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.CustomizationCategory{},
		&models.CustomizationOption{},
		&models.CategoryCustomization{},
		&models.CartRecord{},
		&models.Order{},
	)
}
