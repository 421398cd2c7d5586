package repositories

import (
	"context"

	"github.com/foodhubdev/foodhub/app/models"
	"gorm.io/gorm"
)

type CustomizationRepositoryImpl interface {
	GetForMenuCategory(ctx context.Context, menuCategory string) ([]models.CategoryCustomization, error)
	GetAllLinks(ctx context.Context) ([]models.CategoryCustomization, error)
	GetOptionByID(ctx context.Context, id int64) (*models.CustomizationOption, error)
	CreateOption(ctx context.Context, option *models.CustomizationOption) error
	UpdateOption(ctx context.Context, option *models.CustomizationOption) error
	ToggleOption(ctx context.Context, id int64) (*models.CustomizationOption, error)
}

type customizationRepository struct {
	db *gorm.DB
}

func NewCustomizationRepository(db *gorm.DB) CustomizationRepositoryImpl {
	return &customizationRepository{db}
}

func activeOptions(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("sort_order")
}

func (r *customizationRepository) GetForMenuCategory(ctx context.Context, menuCategory string) ([]models.CategoryCustomization, error) {
	var links []models.CategoryCustomization
	err := r.db.WithContext(ctx).
		Preload("CustomizationCategory").
		Preload("CustomizationCategory.Options", activeOptions).
		Where("menu_category = ?", menuCategory).
		Order("sort_order").
		Find(&links).Error
	return links, err
}

func (r *customizationRepository) GetAllLinks(ctx context.Context) ([]models.CategoryCustomization, error) {
	var links []models.CategoryCustomization
	err := r.db.WithContext(ctx).
		Preload("CustomizationCategory").
		Preload("CustomizationCategory.Options", activeOptions).
		Order("menu_category").
		Order("sort_order").
		Find(&links).Error
	return links, err
}

func (r *customizationRepository) GetOptionByID(ctx context.Context, id int64) (*models.CustomizationOption, error) {
	var option models.CustomizationOption
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&option).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *customizationRepository) CreateOption(ctx context.Context, option *models.CustomizationOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *customizationRepository) UpdateOption(ctx context.Context, option *models.CustomizationOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

func (r *customizationRepository) ToggleOption(ctx context.Context, id int64) (*models.CustomizationOption, error) {
	option, err := r.GetOptionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	option.IsActive = !option.IsActive
	if err := r.db.WithContext(ctx).
		Model(option).
		Update("is_active", option.IsActive).Error; err != nil {
		return nil, err
	}
	return option, nil
}
