package models

import (
	"time"

	"gorm.io/datatypes"
)

// CartRecord is the server-side cart of an authenticated user, one row per
// user. Lines holds the persisted cart record shape produced by cart.Encode.
type CartRecord struct {
	UserID    string         `gorm:"size:36;primaryKey" json:"userId"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Lines     datatypes.JSON `gorm:"type:json" json:"lines"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
