package cart

import "github.com/shopspring/decimal"

// Reconcile refreshes every line's cached item fields against the catalog
// snapshot so displayed prices always reflect current catalog state. Lines
// whose item id is no longer in the snapshot are dropped; quantity and
// customization are preserved on the rest. Selected options that vanished
// from the catalog keep their name but contribute a zero adjustment.
func Reconcile(c Cart, snapshot *Snapshot) Cart {
	lines := make([]Line, 0, len(c.Lines))
	for _, line := range c.Lines {
		item, ok := snapshot.Item(line.Item.ID)
		if !ok {
			continue
		}
		fresh := line.clone()
		fresh.Item = item
		if fresh.Customization != nil {
			for group, sel := range fresh.Customization.Selections {
				for i, choice := range sel.Choices {
					adj, found := snapshot.Adjustment(item.Category, group, choice.Option)
					if !found {
						adj = decimal.Zero
					}
					sel.Choices[i].Adjustment = adj
				}
				fresh.Customization.Selections[group] = sel
			}
		}
		lines = append(lines, fresh)
	}
	return Cart{Lines: lines}
}
