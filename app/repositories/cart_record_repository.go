package repositories

import (
	"context"

	"github.com/foodhubdev/foodhub/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRecordRepositoryImpl interface {
	Get(ctx context.Context, userID string) (*models.CartRecord, error)
	Upsert(ctx context.Context, userID string, lines []byte) error
	Delete(ctx context.Context, userID string) error
}

type cartRecordRepository struct {
	db *gorm.DB
}

func NewCartRecordRepository(db *gorm.DB) CartRecordRepositoryImpl {
	return &cartRecordRepository{db}
}

func (r *cartRecordRepository) Get(ctx context.Context, userID string) (*models.CartRecord, error) {
	var record models.CartRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *cartRecordRepository) Upsert(ctx context.Context, userID string, lines []byte) error {
	record := models.CartRecord{UserID: userID, Lines: lines}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"lines", "updated_at"}),
		}).
		Create(&record).Error
}

func (r *cartRecordRepository) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartRecord{}).Error
}
