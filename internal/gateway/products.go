// internal/gateway/products.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/blendsoft/pos-terminal/internal/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/productos", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct returns the created record as echoed by the API.
func (c *Client) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/productos", product, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// UpdateProduct returns nil when the API does not echo the updated record;
// the caller reconstructs it from the local payload.
func (c *Client) UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	var updated models.Product
	path := fmt.Sprintf("/productos/%d", product.ID)
	if err := c.do(ctx, http.MethodPut, path, product, &updated); err != nil {
		return nil, notFound(err, "product", fmt.Sprint(product.ID))
	}
	if updated.ID == 0 {
		return nil, nil
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	path := fmt.Sprintf("/productos/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return notFound(err, "product", fmt.Sprint(id))
	}
	return nil
}
