package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeliveryFee(t *testing.T) {
	assert.True(t, DeliveryFee(decimal.NewFromInt(499)).Equal(decimal.NewFromInt(BaseDeliveryFee)))
	assert.True(t, DeliveryFee(decimal.NewFromInt(500)).IsZero(), "fee waived at the threshold")
	assert.True(t, DeliveryFee(decimal.NewFromInt(1200)).IsZero())
	assert.True(t, DeliveryFee(decimal.Zero).IsZero(), "empty cart owes no fee")
}

func TestCalculateTax(t *testing.T) {
	tax := CalculateTax(decimal.NewFromInt(200))
	assert.True(t, tax.Equal(decimal.NewFromInt(10)))
}

func TestSummarize(t *testing.T) {
	s := Summarize(decimal.NewFromInt(299))

	assert.True(t, s.DeliveryFee.Equal(decimal.NewFromInt(40)))
	assert.True(t, s.TaxAmount.Equal(decimal.RequireFromString("14.95")))
	assert.True(t, s.GrandTotal.Equal(decimal.RequireFromString("353.95")))
}

func TestSummarizeFreeDelivery(t *testing.T) {
	s := Summarize(decimal.NewFromInt(600))

	assert.True(t, s.DeliveryFee.IsZero())
	assert.True(t, s.GrandTotal.Equal(decimal.NewFromInt(630)))
}
