package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/foodhubdev/foodhub/app/cart"
	"github.com/foodhubdev/foodhub/app/models"
	"github.com/foodhubdev/foodhub/app/repositories"
	"github.com/foodhubdev/foodhub/app/utils/calc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrBadStatus     = errors.New("invalid order status")
)

// CheckoutForm carries the delivery details submitted at checkout.
type CheckoutForm struct {
	Name          string `json:"name" validate:"required,min=2,max=255"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required,min=5"`
	Zipcode       string `json:"zipcode" validate:"required,min=4,max=20"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=cod card upi"`
}

// orderLine is the priced snapshot of one cart line frozen into the order's
// items payload at placement time.
type orderLine struct {
	ItemID        int64               `json:"itemId"`
	Name          string              `json:"name"`
	Quantity      int                 `json:"quantity"`
	UnitPrice     decimal.Decimal     `json:"unitPrice"`
	Total         decimal.Decimal     `json:"total"`
	Customization *cart.Customization `json:"customization,omitempty"`
}

// OrderService turns a reconciled cart into a placed order and serves order
// history for customers and the admin panel.
type OrderService struct {
	orderRepo repositories.OrderRepositoryImpl
	carts     *CartService
}

func NewOrderService(orderRepo repositories.OrderRepositoryImpl, carts *CartService) *OrderService {
	return &OrderService{orderRepo: orderRepo, carts: carts}
}

// PlaceOrder freezes the owner's current cart into an order. The cart is
// cleared only after the order row is written, so a failed insert leaves the
// cart intact for a retry.
func (s *OrderService) PlaceOrder(ctx context.Context, local LocalCartStore, userID string, form CheckoutForm) (*models.Order, error) {
	// Strict load: a catalog outage must fail checkout, not look like an
	// empty cart.
	current, err := s.carts.load(ctx, local, userID)
	if err != nil {
		return nil, err
	}
	if current.IsEmpty() {
		return nil, ErrEmptyCart
	}

	summary := calc.Summarize(current.Total())

	lines := make([]orderLine, 0, len(current.Lines))
	for _, line := range current.Lines {
		lines = append(lines, orderLine{
			ItemID:        line.Item.ID,
			Name:          line.Item.Name,
			Quantity:      line.Quantity,
			UnitPrice:     line.UnitPrice(),
			Total:         line.Total(),
			Customization: line.Customization,
		})
	}
	items, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	order := &models.Order{
		OrderCode:     newOrderCode(),
		UserID:        userID,
		Items:         items,
		Subtotal:      summary.Subtotal,
		DeliveryFee:   summary.DeliveryFee,
		TaxAmount:     summary.TaxAmount,
		TotalAmount:   summary.GrandTotal,
		Name:          form.Name,
		Email:         form.Email,
		Address:       form.Address,
		Zipcode:       form.Zipcode,
		PaymentMethod: form.PaymentMethod,
		Status:        models.OrderStatusPlaced,
		PlacedAt:      time.Now(),
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.carts.Clear(ctx, local, userID); err != nil {
		log.Printf("OrderService.PlaceOrder: order %s placed but cart not cleared: %v", order.OrderCode, err)
	}

	return order, nil
}

func (s *OrderService) OrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(ctx, userID)
}

func (s *OrderService) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("%w: %q", ErrBadStatus, status)
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to update order %s: %w", orderID, err)
	}
	return nil
}

func (s *OrderService) SalesSummary(ctx context.Context) (*repositories.SalesSummary, error) {
	return s.orderRepo.GetSalesSummary(ctx)
}

func newOrderCode() string {
	return "FH-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}
