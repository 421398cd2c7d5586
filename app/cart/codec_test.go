package cart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeWritesPersistedRecordShape(t *testing.T) {
	cust := &Customization{
		Selections: map[string]Selection{
			"spice_level":    Single("hot", price(0)),
			"extra_toppings": Multi(Choice{Option: "cheese", Adjustment: price(20)}),
		},
		Instructions: "no onions",
	}
	c := Cart{}.AddLine(testItem(7, 299), 2, cust)

	data, err := Encode(c)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)

	record := records[0]
	assert.Equal(t, float64(7), record["itemId"])
	assert.Equal(t, float64(2), record["quantity"])
	assert.NotEmpty(t, record["lineId"])
	// Cached item fields must not leak into storage.
	assert.NotContains(t, record, "name")
	assert.NotContains(t, record, "price")

	customization := record["customization"].(map[string]any)
	selections := customization["selections"].(map[string]any)
	assert.Equal(t, "hot", selections["spice_level"])
	assert.Equal(t, []any{"cheese"}, selections["extra_toppings"])
	assert.Equal(t, "no onions", customization["specialInstructions"])
}

func TestDecodeRestoresLinesAndUnion(t *testing.T) {
	data := []byte(`[
		{"lineId":"abc","itemId":2,"quantity":1},
		{"itemId":5,"quantity":3,"customization":{"selections":{"spice_level":"mild","extra_toppings":["cheese","olives"]},"specialInstructions":"ring twice"}}
	]`)

	c, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, c.Lines, 2)

	plain := c.Lines[0]
	assert.Equal(t, "abc", plain.ID)
	assert.Equal(t, int64(2), plain.Item.ID)
	assert.False(t, plain.Customized())

	customized := c.Lines[1]
	assert.NotEmpty(t, customized.ID, "records without a lineId get a fresh one")
	require.True(t, customized.Customized())
	spice := customized.Customization.Selections["spice_level"]
	assert.Equal(t, SingleSelect, spice.Kind)
	require.Len(t, spice.Choices, 1)
	assert.Equal(t, "mild", spice.Choices[0].Option)
	toppings := customized.Customization.Selections["extra_toppings"]
	assert.Equal(t, MultiSelect, toppings.Kind)
	assert.Len(t, toppings.Choices, 2)
	assert.Equal(t, "ring twice", customized.Customization.Instructions)
}

func TestDecodeEmptyPayload(t *testing.T) {
	c, err := Decode(nil)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	c, err = Decode([]byte(`[]`))
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestDecodeSkipsCorruptQuantities(t *testing.T) {
	c, err := Decode([]byte(`[{"itemId":1,"quantity":0},{"itemId":2,"quantity":2}]`))
	require.NoError(t, err)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, int64(2), c.Lines[0].Item.ID)
}

func TestEncodeDecodeKeepsLineIdentityStable(t *testing.T) {
	c := Cart{}.
		AddLine(testItem(5, 129), 1, toppings("cheese")).
		AddLine(testItem(5, 129), 2, toppings("olives"))

	data, err := Encode(c)
	require.NoError(t, err)
	out, err := Decode(data)
	require.NoError(t, err)

	require.Len(t, out.Lines, 2)
	assert.Equal(t, c.Lines[0].ID, out.Lines[0].ID)
	assert.Equal(t, c.Lines[1].ID, out.Lines[1].ID)
}
