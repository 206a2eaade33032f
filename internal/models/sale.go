// internal/models/sale.go
package models

// SaleLine is one line of a committed sale. Prices and names are snapshots
// taken at commit time; later product edits never touch them.
type SaleLine struct {
	ProductID   int     `json:"id_producto"`
	ProductName string  `json:"nombre_producto"`
	Quantity    int     `json:"cantidad"`
	UnitPrice   float64 `json:"precio_unitario"`
	Subtotal    float64 `json:"subtotal"`
}

// Sale is immutable once created. The id is assigned by the remote API and
// Total is frozen at commit time, never recomputed from current prices.
type Sale struct {
	ID    int        `json:"id_venta"`
	Date  string     `json:"fecha"`
	Total float64    `json:"total"`
	Lines []SaleLine `json:"detalles_venta"`
}
