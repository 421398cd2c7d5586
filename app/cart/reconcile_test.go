package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileDropsDeletedItems(t *testing.T) {
	kept := testItem(1, 299)
	gone := testItem(2, 199)

	c := Cart{}.AddLine(kept, 2, nil).AddLine(gone, 1, nil)
	snap := NewSnapshot(kept)

	out := Reconcile(c, snap)

	require.Len(t, out.Lines, 1)
	assert.Equal(t, int64(1), out.Lines[0].Item.ID)
	assert.Equal(t, 2, out.Lines[0].Quantity)
}

func TestReconcileRefreshesPriceAndFields(t *testing.T) {
	stale := testItem(1, 299)
	c := Cart{}.AddLine(stale, 2, nil)

	current := stale
	current.Price = price(349)
	current.Name = "Margherita Pizza (large)"
	snap := NewSnapshot(current)

	out := Reconcile(c, snap)

	require.Len(t, out.Lines, 1)
	assert.Equal(t, "Margherita Pizza (large)", out.Lines[0].Item.Name)
	assert.True(t, out.Lines[0].Item.Price.Equal(price(349)))
	assert.Equal(t, 2, out.Lines[0].Quantity)
	assert.True(t, out.Total().Equal(price(698)))
}

func TestReconcileResolvesAdjustmentsFromSnapshot(t *testing.T) {
	item := testItem(1, 299)

	// Decoded carts carry option names with zero adjustments.
	encoded, err := Encode(Cart{}.AddLine(item, 1, toppings("cheese", "olives")))
	require.NoError(t, err)
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Lines, 1)
	assert.True(t, decoded.Lines[0].UnitPrice().IsZero())

	snap := NewSnapshot(item)
	snap.SetAdjustment("Italian", "extra_toppings", "cheese", price(20))
	snap.SetAdjustment("Italian", "extra_toppings", "olives", price(25))

	out := Reconcile(decoded, snap)

	require.Len(t, out.Lines, 1)
	assert.True(t, out.Lines[0].UnitPrice().Equal(price(299+20+25)))
}

func TestReconcileZeroesVanishedOptions(t *testing.T) {
	item := testItem(1, 299)
	c := Cart{}.AddLine(item, 1, toppings("cheese", "truffle"))

	snap := NewSnapshot(item)
	snap.SetAdjustment("Italian", "extra_toppings", "cheese", price(20))

	out := Reconcile(c, snap)

	require.Len(t, out.Lines, 1)
	line := out.Lines[0]
	assert.True(t, line.UnitPrice().Equal(price(319)))
	// The vanished option's name survives for display.
	sel := line.Customization.Selections["extra_toppings"]
	require.Len(t, sel.Choices, 2)
	assert.Equal(t, "truffle", sel.Choices[1].Option)
	assert.True(t, sel.Choices[1].Adjustment.Equal(decimal.Zero))
}

func TestReconcileLeavesOtherLinesUntouched(t *testing.T) {
	a := testItem(1, 299)
	b := testItem(2, 199)
	gone := testItem(3, 149)

	c := Cart{}.AddLine(a, 1, nil).AddLine(gone, 1, nil).AddLine(b, 4, nil)
	out := Reconcile(c, NewSnapshot(a, b))

	require.Len(t, out.Lines, 2)
	assert.Equal(t, int64(1), out.Lines[0].Item.ID)
	assert.Equal(t, int64(2), out.Lines[1].Item.ID)
	assert.Equal(t, 4, out.Lines[1].Quantity)
}
