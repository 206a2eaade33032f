// internal/models/provider.go
package models

// Provider references exactly one product. ProductID is nullable while a
// form is being filled but must be set before the record is saved.
type Provider struct {
	ID        int    `json:"id_proveedor"`
	Name      string `json:"nombre"`
	ProductID *int   `json:"id_producto"`
}
