package cart

import "github.com/shopspring/decimal"

// Item is the engine's read-only view of one catalog entry. It is cached on a
// cart line and refreshed from the catalog on every load.
type Item struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	Category    string
	Rating      float64
	Popular     bool
}

type adjustmentKey struct {
	menuCategory string
	group        string
	option       string
}

// Snapshot is a point-in-time view of the catalog: active items by id and the
// per-unit price adjustment of every active customization option, indexed by
// menu category, customization group name and option name.
type Snapshot struct {
	items       map[int64]Item
	adjustments map[adjustmentKey]decimal.Decimal
}

func NewSnapshot(items ...Item) *Snapshot {
	s := &Snapshot{
		items:       make(map[int64]Item, len(items)),
		adjustments: make(map[adjustmentKey]decimal.Decimal),
	}
	for _, item := range items {
		s.items[item.ID] = item
	}
	return s
}

func (s *Snapshot) SetAdjustment(menuCategory, group, option string, adjustment decimal.Decimal) {
	s.adjustments[adjustmentKey{menuCategory, group, option}] = adjustment
}

func (s *Snapshot) Item(id int64) (Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

func (s *Snapshot) Adjustment(menuCategory, group, option string) (decimal.Decimal, bool) {
	adj, ok := s.adjustments[adjustmentKey{menuCategory, group, option}]
	return adj, ok
}
