package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomizationCategory is one axis of choice for a menu item, e.g. spice
// level or extra toppings. Its machine name keys cart line selections.
type CustomizationCategory struct {
	ID          int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string                `gorm:"size:100;not null;uniqueIndex" json:"name"`
	DisplayName string                `gorm:"size:255;not null" json:"displayName"`
	Description string                `gorm:"type:text" json:"description"`
	IsActive    bool                  `gorm:"default:true" json:"isActive"`
	Options     []CustomizationOption `gorm:"foreignKey:CategoryID" json:"options"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// CategoryCustomization links a customization category to a menu category and
// carries the selection rules. MaxSelections of 1 means single-select.
type CategoryCustomization struct {
	ID                      int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	MenuCategory            string                `gorm:"size:100;not null;index" json:"menuCategory"`
	CustomizationCategoryID int64                 `gorm:"not null;index" json:"customizationCategoryId"`
	CustomizationCategory   CustomizationCategory `gorm:"foreignKey:CustomizationCategoryID" json:"customizationCategory"`
	IsRequired              bool                  `gorm:"default:false" json:"isRequired"`
	MaxSelections           int                   `gorm:"default:1" json:"maxSelections"`
	SortOrder               int                   `gorm:"default:0" json:"sortOrder"`
	CreatedAt               time.Time             `json:"createdAt"`
	UpdatedAt               time.Time             `json:"updatedAt"`
}

type CustomizationOption struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID      int64           `gorm:"not null;index" json:"categoryId"`
	Name            string          `gorm:"size:100;not null" json:"name"`
	DisplayName     string          `gorm:"size:255;not null" json:"displayName"`
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(16,2);default:0.00" json:"priceAdjustment"`
	IsDefault       bool            `gorm:"default:false" json:"isDefault"`
	IsActive        bool            `gorm:"default:true" json:"isActive"`
	SortOrder       int             `gorm:"default:0" json:"sortOrder"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
