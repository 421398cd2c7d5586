package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testItem(id int64, p int64) Item {
	return Item{
		ID:       id,
		Name:     "Margherita Pizza",
		Price:    price(p),
		Category: "Italian",
	}
}

func toppings(names ...string) *Customization {
	choices := make([]Choice, 0, len(names))
	for _, n := range names {
		choices = append(choices, Choice{Option: n, Adjustment: price(20)})
	}
	return &Customization{
		Selections: map[string]Selection{
			"extra_toppings": Multi(choices...),
		},
	}
}

func TestAddLineMergesPlainLines(t *testing.T) {
	item := testItem(1, 299)

	c := Cart{}
	c = c.AddLine(item, 2, nil)
	c = c.AddLine(item, 1, nil)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 3, c.Lines[0].Quantity)
}

func TestAddLineKeepsCustomizedLinesDistinct(t *testing.T) {
	item := testItem(1, 299)

	c := Cart{}
	c = c.AddLine(item, 1, toppings("cheese"))
	c = c.AddLine(item, 2, toppings("cheese"))

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 1, c.Lines[0].Quantity)
	assert.Equal(t, 2, c.Lines[1].Quantity)
	assert.NotEqual(t, c.Lines[0].ID, c.Lines[1].ID)
}

func TestAddLineEmptyCustomizationMergesAsPlain(t *testing.T) {
	item := testItem(1, 299)

	c := Cart{}
	c = c.AddLine(item, 1, nil)
	c = c.AddLine(item, 1, &Customization{Selections: map[string]Selection{"spice_level": Single("", decimal.Zero)}})

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
}

func TestAddLineRejectsInvalidQuantity(t *testing.T) {
	item := testItem(1, 299)

	c := Cart{}.AddLine(item, 1, nil)
	c = c.AddLine(item, 0, nil)
	c = c.AddLine(item, -3, nil)

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestAddLineDoesNotMutateInput(t *testing.T) {
	item := testItem(1, 299)
	original := Cart{}.AddLine(item, 1, nil)

	_ = original.AddLine(item, 5, nil)
	_ = original.AddLine(testItem(2, 199), 1, toppings("olives"))

	require.Len(t, original.Lines, 1)
	assert.Equal(t, 1, original.Lines[0].Quantity)
}

func TestPriceLineWithMultiSelectToppings(t *testing.T) {
	// ₹299 base, two ₹20 toppings, quantity 2 → (299+20+20)*2 = 678.
	item := testItem(1, 299)
	c := Cart{}.AddLine(item, 2, toppings("cheese", "olives"))

	require.Len(t, c.Lines, 1)
	line := c.Lines[0]
	assert.True(t, line.UnitPrice().Equal(price(339)), "unit price = %s", line.UnitPrice())
	assert.True(t, line.Total().Equal(price(678)), "line total = %s", line.Total())
}

func TestSingleSelectContributesAtMostOneAdjustment(t *testing.T) {
	sel := Selection{Kind: SingleSelect, Choices: []Choice{
		{Option: "hot", Adjustment: price(10)},
		{Option: "extra-hot", Adjustment: price(30)},
	}}
	assert.True(t, sel.Adjustment().Equal(price(10)))
}

func TestCartTotalInvariantUnderReordering(t *testing.T) {
	a := testItem(1, 299)
	b := testItem(2, 199)
	d := testItem(3, 149)

	forward := Cart{}.
		AddLine(a, 2, toppings("cheese")).
		AddLine(b, 1, nil).
		AddLine(d, 3, nil)
	backward := Cart{}.
		AddLine(d, 3, nil).
		AddLine(b, 1, nil).
		AddLine(a, 2, toppings("cheese"))

	assert.True(t, forward.Total().Equal(backward.Total()))
	assert.True(t, forward.Total().Equal(price(2*(299+20)+199+3*149)))
}

func TestSetQuantityZeroEquivalentToRemove(t *testing.T) {
	item := testItem(1, 299)
	other := testItem(2, 199)

	c := Cart{}.AddLine(item, 2, nil).AddLine(other, 1, nil)
	target := c.Lines[0].ID

	viaSet := c.SetQuantity(target, 0)
	viaRemove := c.RemoveLine(target)

	require.Len(t, viaSet.Lines, 1)
	require.Len(t, viaRemove.Lines, 1)
	assert.Equal(t, viaRemove.Lines[0].ID, viaSet.Lines[0].ID)
	assert.Equal(t, int64(2), viaSet.Lines[0].Item.ID)
}

func TestSetQuantityTargetsOneLineAmongDuplicates(t *testing.T) {
	item := testItem(5, 129)

	c := Cart{}.
		AddLine(item, 1, toppings("cheese")).
		AddLine(item, 2, toppings("olives"))
	first := c.Lines[0].ID

	c = c.SetQuantity(first, 4)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 4, c.Lines[0].Quantity)
	assert.Equal(t, 2, c.Lines[1].Quantity)
}

func TestItemCountIncludesCustomizedDuplicates(t *testing.T) {
	item := testItem(5, 129)

	c := Cart{}.
		AddLine(item, 1, toppings("cheese")).
		AddLine(item, 2, toppings("olives"))

	assert.Equal(t, 3, c.ItemCount())
}

func TestClearEmptiesCart(t *testing.T) {
	c := Cart{}.AddLine(testItem(1, 299), 2, nil).Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
	assert.True(t, c.Total().IsZero())
}
