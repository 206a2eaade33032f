// internal/models/cart.go
package models

// CartLine holds one product in the cart. UnitPrice and ProductName are
// snapshots taken when the line was first added; re-adding the same product
// only increments Quantity and keeps the original snapshot.
type CartLine struct {
	ProductID   int     `json:"id_producto"`
	ProductName string  `json:"nombre"`
	UnitPrice   float64 `json:"precio"`
	Quantity    int     `json:"cantidad"`
}

// Subtotal is Quantity × UnitPrice for this line.
func (l CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}
