package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	OrderStatusPlaced         = "placed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// OrderStatuses lists every status the admin panel may set.
var OrderStatuses = []string{
	OrderStatusPlaced,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

type Order struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderCode string `gorm:"size:32;unique;not null" json:"orderCode"`
	UserID    string `gorm:"size:36;index" json:"userId"`
	User      User   `gorm:"foreignKey:UserID" json:"-"`

	// Items holds the priced line snapshots captured at placement time.
	Items datatypes.JSON `gorm:"type:json;not null" json:"items"`

	Subtotal    decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"subtotal"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"deliveryFee"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"taxAmount"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalAmount"`

	Name          string `gorm:"size:255;not null" json:"name"`
	Email         string `gorm:"size:100;not null" json:"email"`
	Address       string `gorm:"type:text;not null" json:"address"`
	Zipcode       string `gorm:"size:20;not null" json:"zipcode"`
	PaymentMethod string `gorm:"size:20;not null" json:"paymentMethod"`

	Status   string    `gorm:"size:30;default:'placed';index" json:"status"`
	PlacedAt time.Time `gorm:"not null" json:"placedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
