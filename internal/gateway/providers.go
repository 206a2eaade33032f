// internal/gateway/providers.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/blendsoft/pos-terminal/internal/models"
)

// createProviderResponse is all the API guarantees on provider creation.
type createProviderResponse struct {
	ID int `json:"id"`
}

func (c *Client) ListProviders(ctx context.Context) ([]models.Provider, error) {
	var providers []models.Provider
	if err := c.do(ctx, http.MethodGet, "/proveedores", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// CreateProvider returns the assigned id; the API does not echo the record.
func (c *Client) CreateProvider(ctx context.Context, provider models.Provider) (int, error) {
	var resp createProviderResponse
	if err := c.do(ctx, http.MethodPost, "/proveedores", provider, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateProvider returns nil when the API responds with an empty body;
// the caller reconstructs the record from the local payload.
func (c *Client) UpdateProvider(ctx context.Context, provider models.Provider) (*models.Provider, error) {
	var updated models.Provider
	path := fmt.Sprintf("/proveedores/%d", provider.ID)
	if err := c.do(ctx, http.MethodPut, path, provider, &updated); err != nil {
		return nil, notFound(err, "provider", fmt.Sprint(provider.ID))
	}
	if updated.ID == 0 {
		return nil, nil
	}
	return &updated, nil
}

func (c *Client) DeleteProvider(ctx context.Context, id int) error {
	path := fmt.Sprintf("/proveedores/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return notFound(err, "provider", fmt.Sprint(id))
	}
	return nil
}
