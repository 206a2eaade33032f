// internal/cart/cart.go
package cart

import (
	"sync"

	"github.com/blendsoft/pos-terminal/internal/models"
)

// Cart accumulates lines before a sale is committed. It holds at most one
// line per product; re-adding a product increments its quantity and keeps
// the price/name snapshot from the first add. Later product price edits do
// not propagate to lines already in the cart (price integrity for the
// duration of a single cart session).
//
// Mutators touch only cart state: no network, no entity store.
type Cart struct {
	mtx   sync.Mutex
	lines []models.CartLine
}

func New() *Cart {
	return &Cart{}
}

// AddItem merges by product id. Quantities below 1 count as 1.
func (c *Cart) AddItem(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			c.lines[i].Quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, models.CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
	})
}

// SetQuantity sets the line's quantity exactly. A quantity below 1 removes
// the line, same as RemoveItem.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}

	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line if present; no-op otherwise.
func (c *Cart) RemoveItem(productID int) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties all lines.
func (c *Cart) Clear() {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.lines = nil
}

// Lines returns an ordered copy of the current lines.
func (c *Cart) Lines() []models.CartLine {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is Σ(quantity × unit price) over current lines, recomputed on every
// call, never cached.
func (c *Cart) Total() float64 {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount is Σ(quantity) over current lines, distinct from the line count.
func (c *Cart) ItemCount() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	return len(c.lines)
}
