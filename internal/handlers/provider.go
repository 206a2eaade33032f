// internal/handlers/provider.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blendsoft/pos-terminal/internal/services"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

type ProviderHandler struct {
	providerService *services.ProviderService
}

func NewProviderHandler(providerService *services.ProviderService) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
	}
}

// GET /providers
func (h *ProviderHandler) GetProviders(c *gin.Context) {
	providers, err := h.providerService.Load(c.Request.Context())
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, providers)
}

// POST /providers
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var req services.ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	provider, err := h.providerService.Create(c.Request.Context(), req)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.CreatedResponse(c, provider)
}

// PUT /providers/:id
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid provider id", nil)
		return
	}

	var req services.ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	provider, err := h.providerService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, provider)
}

// DELETE /providers/:id
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid provider id", nil)
		return
	}

	if err := h.providerService.Delete(c.Request.Context(), id); err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": id})
}
