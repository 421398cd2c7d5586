package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Image       string          `gorm:"size:500" json:"image"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	Rating      float64         `gorm:"type:decimal(2,1);default:4.5" json:"rating"`
	Popular     bool            `gorm:"default:false" json:"popular"`
	IsActive    bool            `gorm:"default:true;index" json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
