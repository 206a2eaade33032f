// internal/gateway/users.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/blendsoft/pos-terminal/internal/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/usuarios", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser is the existence probe used before registration.
func (c *Client) GetUser(ctx context.Context, document int) (models.User, error) {
	var user models.User
	path := fmt.Sprintf("/usuarios/%d", document)
	if err := c.do(ctx, http.MethodGet, path, nil, &user); err != nil {
		return models.User{}, notFound(err, "user", fmt.Sprint(document))
	}
	return user, nil
}

// CreateUser returns the created record; the API omits the credential.
func (c *Client) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	if err := c.do(ctx, http.MethodPost, "/usuarios", user, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (c *Client) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	var updated models.User
	path := fmt.Sprintf("/usuarios/%d", user.Document)
	if err := c.do(ctx, http.MethodPut, path, user, &updated); err != nil {
		return models.User{}, notFound(err, "user", fmt.Sprint(user.Document))
	}
	if updated.Document == 0 {
		// No echo; keep the local payload with the immutable key.
		updated = user
	}
	return updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, document int) error {
	path := fmt.Sprintf("/usuarios/%d", document)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return notFound(err, "user", fmt.Sprint(document))
	}
	return nil
}
