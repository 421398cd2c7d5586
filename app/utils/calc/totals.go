// Package calc holds the order total arithmetic shared by the cart view and
// checkout.
package calc

import "github.com/shopspring/decimal"

const (
	// TaxPercent is applied to the line subtotal.
	TaxPercent = 5
	// FreeDeliveryThreshold is the subtotal at which the delivery fee is waived.
	FreeDeliveryThreshold = 500
	// BaseDeliveryFee is the flat fee below the threshold.
	BaseDeliveryFee = 40
)

// Summary is the cost breakdown for a cart. GrandTotal is the only rounded
// figure; intermediate values stay exact.
type Summary struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	TaxAmount   decimal.Decimal
	GrandTotal  decimal.Decimal
}

// DeliveryFee returns the flat fee, waived once the subtotal reaches the free
// delivery threshold. An empty cart owes no fee.
func DeliveryFee(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(decimal.NewFromInt(FreeDeliveryThreshold)) {
		return decimal.Zero
	}
	return decimal.NewFromInt(BaseDeliveryFee)
}

// CalculateTax returns TaxPercent of the subtotal.
func CalculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(TaxPercent)).Div(decimal.NewFromInt(100))
}

// Summarize builds the full breakdown from a cart subtotal.
func Summarize(subtotal decimal.Decimal) Summary {
	fee := DeliveryFee(subtotal)
	tax := CalculateTax(subtotal)
	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		TaxAmount:   tax,
		GrandTotal:  subtotal.Add(fee).Add(tax).Round(2),
	}
}
