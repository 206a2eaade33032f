// internal/models/product.go
package models

// Product mirrors a product record from the remote inventory API.
// The id is assigned server-side and never changes once created.
type Product struct {
	ID          int     `json:"id_producto"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
}
