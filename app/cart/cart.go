// Package cart implements the storefront's cart engine: immutable cart
// values, the line identity rule, customization-aware pricing and catalog
// reconciliation. Every operation takes a Cart value and returns a new one;
// persistence is the caller's responsibility.
package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one priced entry in a cart. ID is a synthetic identifier distinct
// from the catalog item id, so quantity updates and removals stay unambiguous
// when several customized lines share the same item.
type Line struct {
	ID            string
	Item          Item
	Quantity      int
	Customization *Customization
}

// Customized reports whether the line carries a non-empty customization
// payload. Customized lines never merge with other lines.
func (l Line) Customized() bool {
	return !l.Customization.Empty()
}

// UnitPrice is the item's base price plus the per-unit adjustments of every
// selected customization option.
func (l Line) UnitPrice() decimal.Decimal {
	return l.Item.Price.Add(l.Customization.Adjustment())
}

// Total is UnitPrice multiplied by quantity, unrounded. Currency rounding
// happens only at display and checkout.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (l Line) clone() Line {
	out := l
	out.Customization = l.Customization.clone()
	return out
}

// Cart is an ordered sequence of lines.
type Cart struct {
	Lines []Line
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) cloneLines() []Line {
	out := make([]Line, len(c.Lines))
	for i, line := range c.Lines {
		out[i] = line.clone()
	}
	return out
}

// AddLine applies the identity rule: a line with a customization payload is
// always appended as a new line, even when it duplicates an item already in
// the cart; a plain line merges into an existing plain line for the same
// catalog item. Quantities below 1 are rejected and the cart is returned
// unchanged.
func (c Cart) AddLine(item Item, quantity int, customization *Customization) Cart {
	if quantity < 1 {
		return c
	}

	lines := c.cloneLines()
	if customization.Empty() {
		for i, line := range lines {
			if line.Item.ID == item.ID && !line.Customized() {
				lines[i].Quantity += quantity
				return Cart{Lines: lines}
			}
		}
		lines = append(lines, Line{ID: uuid.NewString(), Item: item, Quantity: quantity})
		return Cart{Lines: lines}
	}

	lines = append(lines, Line{
		ID:            uuid.NewString(),
		Item:          item,
		Quantity:      quantity,
		Customization: customization.clone(),
	})
	return Cart{Lines: lines}
}

// SetQuantity replaces the quantity of the line with the given synthetic id.
// A quantity below 1 removes the line instead.
func (c Cart) SetQuantity(lineID string, quantity int) Cart {
	if quantity < 1 {
		return c.RemoveLine(lineID)
	}
	lines := c.cloneLines()
	for i, line := range lines {
		if line.ID == lineID {
			lines[i].Quantity = quantity
		}
	}
	return Cart{Lines: lines}
}

// RemoveLine filters out the line with the given synthetic id.
func (c Cart) RemoveLine(lineID string) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		if line.ID == lineID {
			continue
		}
		lines = append(lines, line.clone())
	}
	return Cart{Lines: lines}
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return Cart{}
}

// Line finds a line by its synthetic id.
func (c Cart) Line(lineID string) (Line, bool) {
	for _, line := range c.Lines {
		if line.ID == lineID {
			return line, true
		}
	}
	return Line{}, false
}

// Total sums every line's total. It is invariant under line reordering.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Total())
	}
	return total
}

// ItemCount sums line quantities across the cart, customized duplicates
// included.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}
