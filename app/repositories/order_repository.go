package repositories

import (
	"context"

	"github.com/foodhubdev/foodhub/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SalesSummary struct {
	TotalOrders   int64
	TotalRevenue  decimal.Decimal
	PendingOrders int64
}

type OrderRepositoryImpl interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUser(ctx context.Context, userID string) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	GetSalesSummary(ctx context.Context) (*SalesSummary, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) GetSalesSummary(ctx context.Context) (*SalesSummary, error) {
	summary := &SalesSummary{TotalRevenue: decimal.Zero}

	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Count(&summary.TotalOrders).Error; err != nil {
		return nil, err
	}

	var revenue decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue.Valid {
		summary.TotalRevenue = revenue.Decimal
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("status IN ?", []string{models.OrderStatusPlaced, models.OrderStatusPreparing, models.OrderStatusOutForDelivery}).
		Count(&summary.PendingOrders).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
