package repositories

import (
	"context"

	"github.com/foodhubdev/foodhub/app/models"
	"gorm.io/gorm"
)

type MenuCategoryRepositoryImpl interface {
	GetActiveCategories(ctx context.Context) ([]models.MenuCategory, error)
}

type menuCategoryRepository struct {
	db *gorm.DB
}

func NewMenuCategoryRepository(db *gorm.DB) MenuCategoryRepositoryImpl {
	return &menuCategoryRepository{db}
}

func (r *menuCategoryRepository) GetActiveCategories(ctx context.Context) ([]models.MenuCategory, error) {
	var categories []models.MenuCategory
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order").
		Find(&categories).Error
	return categories, err
}
