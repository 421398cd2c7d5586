package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName  string         `gorm:"size:100;not null" json:"firstName"`
	LastName   string         `gorm:"size:100;not null" json:"lastName"`
	Email      string         `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Password   string         `gorm:"size:255;not null" json:"-"`
	Phone      string         `gorm:"size:20" json:"phone"`
	Address    string         `gorm:"type:text" json:"address"`
	City       string         `gorm:"size:100" json:"city"`
	State      string         `gorm:"size:100" json:"state"`
	PostalCode string         `gorm:"size:20" json:"postalCode"`
	Role       string         `gorm:"size:20;default:'customer';not null" json:"role"`
	LastLogin  *time.Time     `json:"lastLogin,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
