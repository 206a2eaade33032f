// internal/handlers/cart.go
package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/blendsoft/pos-terminal/internal/cart"
	"github.com/blendsoft/pos-terminal/internal/services"
	"github.com/blendsoft/pos-terminal/internal/store"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

type CartHandler struct {
	cart        *cart.Cart
	store       *store.Store
	saleService *services.SaleService
}

func NewCartHandler(cart *cart.Cart, store *store.Store, saleService *services.SaleService) *CartHandler {
	return &CartHandler{
		cart:        cart,
		store:       store,
		saleService: saleService,
	}
}

type addItemRequest struct {
	ProductID int `json:"id_producto" binding:"required"`
	Quantity  int `json:"cantidad"`
}

type setQuantityRequest struct {
	Quantity int `json:"cantidad"`
}

func (h *CartHandler) cartState() gin.H {
	return gin.H{
		"lines":      h.cart.Lines(),
		"total":      h.cart.Total(),
		"item_count": h.cart.ItemCount(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, h.cartState())
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	product, ok := h.store.Product(req.ProductID)
	if !ok {
		utils.NotFoundResponse(c, fmt.Sprintf("product %d not found", req.ProductID))
		return
	}

	h.cart.AddItem(product, req.Quantity)
	utils.SuccessResponse(c, h.cartState())
}

// PUT /cart/items/:id
func (h *CartHandler) SetQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	h.cart.SetQuantity(id, req.Quantity)
	utils.SuccessResponse(c, h.cartState())
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id", nil)
		return
	}

	h.cart.RemoveItem(id)
	utils.SuccessResponse(c, h.cartState())
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	utils.SuccessResponse(c, h.cartState())
}

// POST /cart/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	sale, err := h.saleService.Commit(c.Request.Context(), time.Now())
	if err != nil {
		utils.FailureResponse(c, err)
		return
	}

	utils.CreatedResponse(c, sale)
}
