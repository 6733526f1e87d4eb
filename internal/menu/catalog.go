// Package menu holds the read-only catalog the displays and the order
// flow read from. Items are immutable after load; historical orders keep
// their own copy of name and price.
package menu

import "github.com/shopspring/decimal"

// Item is one entry of the menu.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}

// Category groups items for display, e.g. on the totem.
// swagger:model MenuCategory
type Category struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Catalog is the menu loaded for a session.
type Catalog struct {
	items []Item
	byID  map[string]Item
}

func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		items: append([]Item(nil), items...),
		byID:  make(map[string]Item, len(items)),
	}
	for _, it := range c.items {
		c.byID[it.ID] = it
	}
	return c
}

// Get looks an item up by id.
func (c *Catalog) Get(id string) (Item, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// Items returns a copy of the full menu in load order.
func (c *Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// ByCategory groups the items; category order follows first appearance in
// the menu, item order inside each group is load order.
func (c *Catalog) ByCategory() []Category {
	var out []Category
	index := map[string]int{}
	for _, it := range c.items {
		i, ok := index[it.Category]
		if !ok {
			i = len(out)
			index[it.Category] = i
			out = append(out, Category{Category: it.Category})
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out
}
