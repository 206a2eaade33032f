// internal/utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = "Invalid request"
	}
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	ErrorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message, nil)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", message, nil)
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, "CONFLICT", message, nil)
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

// FailureResponse maps the core error kinds onto HTTP statuses. On failure
// the previously served state is preserved; callers re-read their snapshot.
func FailureResponse(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErr.Error(), validationErr.Fields)
		return
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		NotFoundResponse(c, notFoundErr.Error())
		return
	}

	var conflictErr *apperrors.ConflictError
	if errors.As(err, &conflictErr) {
		ConflictResponse(c, conflictErr.Error())
		return
	}

	if errors.Is(err, apperrors.ErrEmptyCart) {
		ErrorResponse(c, http.StatusBadRequest, "EMPTY_CART", "Add products before processing the sale", nil)
		return
	}

	var submissionErr *apperrors.SaleSubmissionError
	if errors.As(err, &submissionErr) {
		ErrorResponse(c, http.StatusBadGateway, "SALE_SUBMISSION_FAILED", submissionErr.Error(), nil)
		return
	}

	var gatewayErr *apperrors.GatewayError
	if errors.As(err, &gatewayErr) {
		ErrorResponse(c, http.StatusBadGateway, "GATEWAY_ERROR", gatewayErr.Error(), nil)
		return
	}

	InternalErrorResponse(c, err.Error())
}
