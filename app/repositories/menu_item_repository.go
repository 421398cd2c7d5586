package repositories

import (
	"context"

	"github.com/foodhubdev/foodhub/app/models"
	"gorm.io/gorm"
)

type MenuItemRepositoryImpl interface {
	GetActiveItems(ctx context.Context) ([]models.MenuItem, error)
	GetByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	GetPopular(ctx context.Context, limit int) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*models.MenuItem, error)
	Create(ctx context.Context, item *models.MenuItem) error
	Update(ctx context.Context, item *models.MenuItem) error
	SetActive(ctx context.Context, id int64, active bool) error
	CountActiveByCategory(ctx context.Context, category string) (int64, error)
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepositoryImpl {
	return &menuItemRepository{db}
}

func (r *menuItemRepository) GetActiveItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("popular DESC").
		Order("name").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_active = ?", category, true).
		Order("popular DESC").
		Order("name").
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetPopular(ctx context.Context, limit int) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("popular = ? AND is_active = ?", true, true).
		Order("rating DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) GetByID(ctx context.Context, id int64) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuItemRepository) SetActive(ctx context.Context, id int64, active bool) error {
	return r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

func (r *menuItemRepository) CountActiveByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("category = ? AND is_active = ?", category, true).
		Count(&count).Error
	return count, err
}
