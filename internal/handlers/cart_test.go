// internal/handlers/cart_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
	"github.com/blendsoft/pos-terminal/internal/cart"
	"github.com/blendsoft/pos-terminal/internal/gateway"
	"github.com/blendsoft/pos-terminal/internal/models"
	"github.com/blendsoft/pos-terminal/internal/services"
	"github.com/blendsoft/pos-terminal/internal/store"
)

type stubSaleGateway struct {
	receipt   gateway.SaleReceipt
	createErr error

	createCalls int
}

func (s *stubSaleGateway) ListSales(ctx context.Context) ([]models.Sale, error) {
	return nil, nil
}

func (s *stubSaleGateway) GetSale(ctx context.Context, id int) (models.Sale, error) {
	return models.Sale{}, nil
}

func (s *stubSaleGateway) GetSaleDetails(ctx context.Context, id int) ([]models.SaleLine, error) {
	return nil, nil
}

func (s *stubSaleGateway) CreateSale(ctx context.Context, req gateway.SaleRequest) (gateway.SaleReceipt, error) {
	s.createCalls++
	if s.createErr != nil {
		return gateway.SaleReceipt{}, s.createErr
	}
	return s.receipt, nil
}

type CartTestSuite struct {
	suite.Suite
	router  *gin.Engine
	store   *store.Store
	cart    *cart.Cart
	gateway *stubSaleGateway
}

func (suite *CartTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.store = store.New()
	suite.cart = cart.New()
	suite.gateway = &stubSaleGateway{receipt: gateway.SaleReceipt{ID: 1}}

	saleService := services.NewSaleService(suite.gateway, suite.store, suite.cart)
	handler := NewCartHandler(suite.cart, suite.store, saleService)

	suite.router = gin.New()
	cartRoutes := suite.router.Group("/cart")
	{
		cartRoutes.GET("", handler.GetCart)
		cartRoutes.POST("/items", handler.AddItem)
		cartRoutes.PUT("/items/:id", handler.SetQuantity)
		cartRoutes.DELETE("/items/:id", handler.RemoveItem)
		cartRoutes.DELETE("", handler.ClearCart)
		cartRoutes.POST("/checkout", handler.Checkout)
	}

	suite.store.UpsertProduct(models.Product{ID: 1, Name: "Café", Description: "Molido", Price: 1000})
	suite.store.UpsertProduct(models.Product{ID: 2, Name: "Azúcar", Description: "Blanca", Price: 500})
}

func (suite *CartTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CartTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	return response
}

func (suite *CartTestSuite) TestAddItem() {
	w := suite.request("POST", "/cart/items", map[string]interface{}{
		"id_producto": 1,
		"cantidad":    2,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), 2000.0, data["total"])
	assert.Equal(suite.T(), 2.0, data["item_count"])
}

func (suite *CartTestSuite) TestAddItemUnknownProduct() {
	w := suite.request("POST", "/cart/items", map[string]interface{}{
		"id_producto": 42,
		"cantidad":    1,
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Zero(suite.T(), suite.cart.ItemCount())
}

func (suite *CartTestSuite) TestSetQuantityToZeroRemovesLine() {
	suite.request("POST", "/cart/items", map[string]interface{}{"id_producto": 1, "cantidad": 2})

	w := suite.request("PUT", "/cart/items/1", map[string]interface{}{"cantidad": 0})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), 0.0, data["item_count"])
}

func (suite *CartTestSuite) TestCheckout() {
	suite.gateway.receipt = gateway.SaleReceipt{ID: 42}
	suite.request("POST", "/cart/items", map[string]interface{}{"id_producto": 1, "cantidad": 2})
	suite.request("POST", "/cart/items", map[string]interface{}{"id_producto": 2, "cantidad": 1})

	w := suite.request("POST", "/cart/checkout", nil)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(suite.T(), 42.0, data["id_venta"])
	assert.Equal(suite.T(), 2500.0, data["total"])

	assert.Zero(suite.T(), suite.cart.ItemCount())
	assert.Len(suite.T(), suite.store.Sales(), 1)
}

func (suite *CartTestSuite) TestCheckoutEmptyCart() {
	w := suite.request("POST", "/cart/checkout", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	response := suite.decode(w)
	assert.False(suite.T(), response["success"].(bool))

	apiErr := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "EMPTY_CART", apiErr["code"])
	assert.Zero(suite.T(), suite.gateway.createCalls)
}

func (suite *CartTestSuite) TestCheckoutFailureKeepsCart() {
	suite.gateway.createErr = &apperrors.GatewayError{StatusCode: 500, Message: "boom"}
	suite.request("POST", "/cart/items", map[string]interface{}{"id_producto": 1, "cantidad": 2})

	w := suite.request("POST", "/cart/checkout", nil)

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
	apiErr := suite.decode(w)["error"].(map[string]interface{})
	assert.Equal(suite.T(), "SALE_SUBMISSION_FAILED", apiErr["code"])

	assert.Equal(suite.T(), 2, suite.cart.ItemCount())
	assert.Empty(suite.T(), suite.store.Sales())
}

func (suite *CartTestSuite) TestClearCart() {
	suite.request("POST", "/cart/items", map[string]interface{}{"id_producto": 1, "cantidad": 2})

	w := suite.request("DELETE", "/cart", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Zero(suite.T(), suite.cart.ItemCount())
}

func (suite *CartTestSuite) TestGetCart() {
	suite.request("POST", "/cart/items", map[string]interface{}{"id_producto": 1, "cantidad": 3})

	w := suite.request("GET", "/cart", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data := suite.decode(w)["data"].(map[string]interface{})
	assert.Equal(suite.T(), 3000.0, data["total"])

	lines := data["lines"].([]interface{})
	assert.Len(suite.T(), lines, 1)
	line := lines[0].(map[string]interface{})
	assert.Equal(suite.T(), "Café", line["nombre"])
}

func TestCartTestSuite(t *testing.T) {
	suite.Run(t, new(CartTestSuite))
}
