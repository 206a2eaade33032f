// internal/handlers/sale.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/blendsoft/pos-terminal/internal/services"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

type SaleHandler struct {
	saleService *services.SaleService
}

func NewSaleHandler(saleService *services.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// GET /sales
func (h *SaleHandler) GetSales(c *gin.Context) {
	sales, err := h.saleService.Load(c.Request.Context())
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, sales)
}

// GET /sales/:id
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid sale id", nil)
		return
	}

	sale, err := h.saleService.Get(c.Request.Context(), id)
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.SuccessResponse(c, sale)
}
