// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// ErrEmptyCart is returned when a sale commit is attempted with no cart lines.
// No gateway call is made in that case.
var ErrEmptyCart = errors.New("cart is empty")

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError carries local, pre-network validation failures. It is
// resolved at the form boundary and never reaches the gateway.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return "validation failed: " + e.Fields[0].Message
	}
	return fmt.Sprintf("validation failed: %d invalid fields", len(e.Fields))
}

// NotFoundError reports an entity absent on lookup-by-key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Key)
}

// ConflictError reports a duplicate key or unique-field violation from the
// gateway, such as an existing document or email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// GatewayError is the catch-all for remote API failures outside sale
// creation. StatusCode is zero for transport failures.
type GatewayError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("gateway request failed (%d)", e.StatusCode)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// SaleSubmissionError wraps any gateway failure during sale creation.
// Transport failures and non-2xx responses both end up here; only the
// message differs, never the control flow.
type SaleSubmissionError struct {
	Err error
}

func (e *SaleSubmissionError) Error() string {
	return "sale submission failed: " + e.Err.Error()
}

func (e *SaleSubmissionError) Unwrap() error {
	return e.Err
}
