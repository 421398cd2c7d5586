package cart

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// lineRecord is the persisted shape of one cart line, shared by the session
// cookie and the remote cart row. Cached item fields are deliberately absent:
// a decoded cart only becomes displayable after a Reconcile against the
// current catalog.
type lineRecord struct {
	LineID        string         `json:"lineId,omitempty"`
	ItemID        int64          `json:"itemId"`
	Quantity      int            `json:"quantity"`
	Customization *Customization `json:"customization,omitempty"`
}

// Encode serializes a cart to its persisted record form.
func Encode(c Cart) ([]byte, error) {
	records := make([]lineRecord, 0, len(c.Lines))
	for _, line := range c.Lines {
		record := lineRecord{
			LineID:   line.ID,
			ItemID:   line.Item.ID,
			Quantity: line.Quantity,
		}
		if line.Customized() {
			record.Customization = line.Customization
		}
		records = append(records, record)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	return data, nil
}

// Decode parses a persisted cart record. Records written before line ids were
// introduced get a fresh synthetic id. Item fields beyond the id, and option
// price adjustments, stay zero until the cart is reconciled.
func Decode(data []byte) (Cart, error) {
	if len(data) == 0 {
		return Cart{}, nil
	}
	var records []lineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return Cart{}, fmt.Errorf("failed to decode cart: %w", err)
	}
	lines := make([]Line, 0, len(records))
	for _, record := range records {
		if record.Quantity < 1 {
			continue
		}
		id := record.LineID
		if id == "" {
			id = uuid.NewString()
		}
		line := Line{
			ID:       id,
			Item:     Item{ID: record.ItemID},
			Quantity: record.Quantity,
		}
		if !record.Customization.Empty() {
			line.Customization = record.Customization
		}
		lines = append(lines, line)
	}
	return Cart{Lines: lines}, nil
}
