package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SelectionKind distinguishes single-select customization groups (spice
// level) from multi-select ones (extra toppings).
type SelectionKind int

const (
	SingleSelect SelectionKind = iota
	MultiSelect
)

// Choice is one chosen customization option together with its per-unit price
// adjustment. Only the option name is persisted; the adjustment is resolved
// from the catalog when a line is added and again on every reconcile.
type Choice struct {
	Option     string
	Adjustment decimal.Decimal
}

// Selection holds the chosen option(s) for one customization group. A
// single-select group carries at most one choice.
type Selection struct {
	Kind    SelectionKind
	Choices []Choice
}

func Single(option string, adjustment decimal.Decimal) Selection {
	if option == "" {
		return Selection{Kind: SingleSelect}
	}
	return Selection{Kind: SingleSelect, Choices: []Choice{{Option: option, Adjustment: adjustment}}}
}

func Multi(choices ...Choice) Selection {
	return Selection{Kind: MultiSelect, Choices: choices}
}

// Adjustment sums the per-unit price adjustments of the chosen options. A
// single-select group contributes at most one option's adjustment.
func (s Selection) Adjustment() decimal.Decimal {
	total := decimal.Zero
	for i, choice := range s.Choices {
		if s.Kind == SingleSelect && i > 0 {
			break
		}
		total = total.Add(choice.Adjustment)
	}
	return total
}

func (s Selection) clone() Selection {
	out := Selection{Kind: s.Kind}
	if len(s.Choices) > 0 {
		out.Choices = make([]Choice, len(s.Choices))
		copy(out.Choices, s.Choices)
	}
	return out
}

// MarshalJSON writes the persisted wire shape: a bare option name for
// single-select, an array of option names for multi-select.
func (s Selection) MarshalJSON() ([]byte, error) {
	if s.Kind == MultiSelect {
		names := make([]string, 0, len(s.Choices))
		for _, choice := range s.Choices {
			names = append(names, choice.Option)
		}
		return json.Marshal(names)
	}
	if len(s.Choices) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(s.Choices[0].Option)
}

// UnmarshalJSON accepts either union arm. Adjustments are left at zero until
// the cart is reconciled against a catalog snapshot.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = Single(name, decimal.Zero)
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	choices := make([]Choice, 0, len(names))
	for _, n := range names {
		choices = append(choices, Choice{Option: n, Adjustment: decimal.Zero})
	}
	*s = Multi(choices...)
	return nil
}

// Customization is the optional per-line payload: chosen options keyed by
// customization group name, plus free-text special instructions.
type Customization struct {
	Selections   map[string]Selection `json:"selections,omitempty"`
	Instructions string               `json:"specialInstructions,omitempty"`
}

// Empty reports whether the payload carries no information. An empty payload
// is treated exactly like an absent one for line identity.
func (c *Customization) Empty() bool {
	if c == nil {
		return true
	}
	if c.Instructions != "" {
		return false
	}
	for _, sel := range c.Selections {
		if len(sel.Choices) > 0 {
			return false
		}
	}
	return true
}

// Adjustment sums the per-unit adjustments across all groups.
func (c *Customization) Adjustment() decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, sel := range c.Selections {
		total = total.Add(sel.Adjustment())
	}
	return total
}

func (c *Customization) clone() *Customization {
	if c == nil {
		return nil
	}
	out := &Customization{Instructions: c.Instructions}
	if c.Selections != nil {
		out.Selections = make(map[string]Selection, len(c.Selections))
		for name, sel := range c.Selections {
			out.Selections[name] = sel.clone()
		}
	}
	return out
}
