// internal/gateway/sales.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/blendsoft/pos-terminal/internal/models"
)

// SaleLineRequest is one line of the sale-creation payload.
type SaleLineRequest struct {
	ProductID int     `json:"id_producto"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
	Subtotal  float64 `json:"subtotal"`
}

// SaleRequest is the payload for POST /ventas.
type SaleRequest struct {
	Date    string            `json:"fecha"`
	Total   float64           `json:"total"`
	Details []SaleLineRequest `json:"detalles"`
}

// SaleReceipt is the minimum the API returns for a created sale. Date and
// Total may carry canonicalized values that supersede the request's.
type SaleReceipt struct {
	ID    int     `json:"id_venta"`
	Date  string  `json:"fecha"`
	Total float64 `json:"total"`
}

func (c *Client) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := c.do(ctx, http.MethodGet, "/ventas", nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (c *Client) GetSale(ctx context.Context, id int) (models.Sale, error) {
	var sale models.Sale
	path := fmt.Sprintf("/ventas/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &sale); err != nil {
		return models.Sale{}, notFound(err, "sale", fmt.Sprint(id))
	}
	return sale, nil
}

func (c *Client) GetSaleDetails(ctx context.Context, id int) ([]models.SaleLine, error) {
	var lines []models.SaleLine
	path := fmt.Sprintf("/detalle_venta/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &lines); err != nil {
		return nil, notFound(err, "sale", fmt.Sprint(id))
	}
	return lines, nil
}

func (c *Client) CreateSale(ctx context.Context, req SaleRequest) (SaleReceipt, error) {
	var receipt SaleReceipt
	if err := c.do(ctx, http.MethodPost, "/ventas", req, &receipt); err != nil {
		return SaleReceipt{}, err
	}
	return receipt, nil
}
