// Package format renders money amounts for API responses.
package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var rupee = accounting.Accounting{Symbol: "₹", Precision: 2, Thousand: ",", Decimal: "."}

// Rupee formats a decimal amount as Indian rupees, e.g. "₹1,299.00".
func Rupee(amount decimal.Decimal) string {
	return rupee.FormatMoneyDecimal(amount)
}
