// internal/gateway/client.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
	"github.com/blendsoft/pos-terminal/internal/config"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

// Client talks to the remote inventory API. It performs no retries; a caller
// that no longer cares about a response may simply drop the result.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// errorPayload is the machine-readable error body the API may return.
// Either field may be absent; precedence is error, then mensaje, then a
// generic message derived from the status code.
type errorPayload struct {
	Error   string `json:"error"`
	Mensaje string `json:"mensaje"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &apperrors.GatewayError{Message: "failed to encode request", Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &apperrors.GatewayError{Message: "failed to build request", Err: err}
	}
	requestID := utils.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Warn("Gateway request failed")
		return &apperrors.GatewayError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.GatewayError{StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return &apperrors.GatewayError{StatusCode: resp.StatusCode, Message: "failed to decode response", Err: err}
		}
	}

	return nil
}

func (c *Client) decodeError(status int, data []byte) error {
	message := fmt.Sprintf("request failed with status %d", status)

	var payload errorPayload
	if len(data) > 0 && json.Unmarshal(data, &payload) == nil {
		if payload.Error != "" {
			message = payload.Error
		} else if payload.Mensaje != "" {
			message = payload.Mensaje
		}
	}

	if status == http.StatusConflict {
		return &apperrors.ConflictError{Message: message}
	}
	return &apperrors.GatewayError{StatusCode: status, Message: message}
}

// notFound converts a 404 gateway error into a typed NotFoundError for
// lookup-by-key endpoints. Other errors pass through unchanged.
func notFound(err error, resource, key string) error {
	var gwErr *apperrors.GatewayError
	if errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusNotFound {
		return &apperrors.NotFoundError{Resource: resource, Key: key}
	}
	return err
}
