package models

import "time"

type MenuCategory struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Icon         string    `gorm:"size:50" json:"icon"`
	DisplayOrder int       `gorm:"default:0" json:"displayOrder"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
