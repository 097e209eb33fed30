// Package cart keeps the diner's selected dishes and quantities.
package cart

import (
	"fmt"

	"foodfriend/catalog"
	"foodfriend/diner-svc/internal/domain"
)

// Lookup resolves a menu item by id.
type Lookup func(id int) (catalog.MenuItem, bool)

// Cart is not safe for concurrent use; the owning session serializes access.
type Cart struct {
	lookup Lookup
	items  []domain.CartItem
}

func New(lookup Lookup) *Cart {
	if lookup == nil {
		lookup = catalog.Lookup
	}
	return &Cart{lookup: lookup}
}

// Add increments the quantity of itemID, inserting it at the end when new.
// Unknown ids are ignored and report false.
func (c *Cart) Add(itemID int) bool {
	item, ok := c.lookup(itemID)
	if !ok {
		return false
	}
	if i := c.index(itemID); i >= 0 {
		c.items[i].Quantity++
		return true
	}
	c.items = append(c.items, domain.CartItem{MenuItem: item, Quantity: 1})
	return true
}

// Remove decrements the quantity of itemID and drops the entry instead of
// keeping it at zero.
func (c *Cart) Remove(itemID int) bool {
	i := c.index(itemID)
	if i < 0 {
		return false
	}
	if c.items[i].Quantity > 1 {
		c.items[i].Quantity--
		return true
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

// Total is recomputed from the entries on every call, never rounded.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (c *Cart) Count() int {
	var count int
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) Quantity(itemID int) int {
	if i := c.index(itemID); i >= 0 {
		return c.items[i].Quantity
	}
	return 0
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Items returns a copy in insertion order.
func (c *Cart) Items() []domain.CartItem {
	items := make([]domain.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) index(itemID int) int {
	for i, item := range c.items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// FormatPrice renders a monetary amount with two decimals.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
