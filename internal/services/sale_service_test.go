// internal/services/sale_service_test.go
package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
	"github.com/blendsoft/pos-terminal/internal/cart"
	"github.com/blendsoft/pos-terminal/internal/gateway"
	"github.com/blendsoft/pos-terminal/internal/models"
	"github.com/blendsoft/pos-terminal/internal/store"
)

type fakeSaleGateway struct {
	sales     []models.Sale
	listErr   error
	sale      models.Sale
	getErr    error
	details   []models.SaleLine
	receipt   gateway.SaleReceipt
	createErr error

	createCalls int
	lastRequest gateway.SaleRequest
	onCreate    func()
}

func (f *fakeSaleGateway) ListSales(ctx context.Context) ([]models.Sale, error) {
	return f.sales, f.listErr
}

func (f *fakeSaleGateway) GetSale(ctx context.Context, id int) (models.Sale, error) {
	return f.sale, f.getErr
}

func (f *fakeSaleGateway) GetSaleDetails(ctx context.Context, id int) ([]models.SaleLine, error) {
	return f.details, nil
}

func (f *fakeSaleGateway) CreateSale(ctx context.Context, req gateway.SaleRequest) (gateway.SaleReceipt, error) {
	f.createCalls++
	f.lastRequest = req
	if f.onCreate != nil {
		f.onCreate()
	}
	if f.createErr != nil {
		return gateway.SaleReceipt{}, f.createErr
	}
	return f.receipt, nil
}

func newSaleFixture(gw *fakeSaleGateway) (*SaleService, *store.Store, *cart.Cart) {
	st := store.New()
	ct := cart.New()
	return NewSaleService(gw, st, ct), st, ct
}

func fillCart(ct *cart.Cart) {
	ct.AddItem(models.Product{ID: 1, Name: "Café", Price: 1000}, 2)
	ct.AddItem(models.Product{ID: 2, Name: "Azúcar", Price: 500}, 1)
}

func TestCommitEmptyCart(t *testing.T) {
	gw := &fakeSaleGateway{}
	svc, st, _ := newSaleFixture(gw)

	_, err := svc.Commit(context.Background(), time.Now())

	assert.ErrorIs(t, err, apperrors.ErrEmptyCart)
	assert.Zero(t, gw.createCalls, "empty cart must not reach the network")
	assert.Empty(t, st.Sales())
}

func TestCommitPayload(t *testing.T) {
	gw := &fakeSaleGateway{receipt: gateway.SaleReceipt{ID: 7}}
	svc, _, ct := newSaleFixture(gw)
	fillCart(ct)

	at := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	_, err := svc.Commit(context.Background(), at)
	assert.NoError(t, err)

	req := gw.lastRequest
	assert.Equal(t, "2026-08-29T15:04:05Z", req.Date)
	assert.Equal(t, 2500.0, req.Total)
	assert.Equal(t, []gateway.SaleLineRequest{
		{ProductID: 1, Quantity: 2, UnitPrice: 1000, Subtotal: 2000},
		{ProductID: 2, Quantity: 1, UnitPrice: 500, Subtotal: 500},
	}, req.Details)
}

func TestCommitFailureLeavesCartUntouched(t *testing.T) {
	gw := &fakeSaleGateway{createErr: &apperrors.GatewayError{StatusCode: 500, Message: "boom"}}
	svc, st, ct := newSaleFixture(gw)
	fillCart(ct)

	_, err := svc.Commit(context.Background(), time.Now())

	var subErr *apperrors.SaleSubmissionError
	assert.ErrorAs(t, err, &subErr)
	assert.Equal(t, 3, ct.ItemCount(), "failed commit must not touch the cart")
	assert.Empty(t, st.Sales(), "failed commit must not record a sale")
	assert.Equal(t, 1, gw.createCalls)
}

func TestCommitSuccess(t *testing.T) {
	gw := &fakeSaleGateway{receipt: gateway.SaleReceipt{ID: 42}}
	svc, st, ct := newSaleFixture(gw)
	fillCart(ct)

	sale, err := svc.Commit(context.Background(), time.Now())
	assert.NoError(t, err)

	assert.Equal(t, 42, sale.ID)
	assert.Equal(t, 2500.0, sale.Total)
	assert.Len(t, sale.Lines, 2)
	assert.Equal(t, "Café", sale.Lines[0].ProductName)
	assert.Equal(t, 2000.0, sale.Lines[0].Subtotal)

	assert.Zero(t, ct.ItemCount(), "successful commit clears the cart")

	sales := st.Sales()
	assert.Len(t, sales, 1)
	assert.Equal(t, sale, sales[0])
}

func TestCommitReceiptValuesWin(t *testing.T) {
	gw := &fakeSaleGateway{receipt: gateway.SaleReceipt{
		ID:    9,
		Date:  "2026-08-29",
		Total: 2500.5,
	}}
	svc, _, ct := newSaleFixture(gw)
	fillCart(ct)

	sale, err := svc.Commit(context.Background(), time.Now())
	assert.NoError(t, err)

	assert.Equal(t, "2026-08-29", sale.Date)
	assert.Equal(t, 2500.5, sale.Total)
}

func TestCommitClearsLinesAddedDuringSubmission(t *testing.T) {
	gw := &fakeSaleGateway{receipt: gateway.SaleReceipt{ID: 1}}
	svc, _, ct := newSaleFixture(gw)
	fillCart(ct)

	// An item added while the request is in flight does not change the
	// payload but is still swept away by the clear on success.
	gw.onCreate = func() {
		ct.AddItem(models.Product{ID: 3, Name: "Té", Price: 800}, 1)
	}

	_, err := svc.Commit(context.Background(), time.Now())
	assert.NoError(t, err)

	assert.Equal(t, 2500.0, gw.lastRequest.Total)
	assert.Len(t, gw.lastRequest.Details, 2)
	assert.Zero(t, ct.ItemCount())
}

func TestLoadResetsOnFailure(t *testing.T) {
	gw := &fakeSaleGateway{sales: []models.Sale{{ID: 1, Total: 100}}}
	svc, st, _ := newSaleFixture(gw)

	_, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, st.Sales(), 1)

	gw.listErr = &apperrors.GatewayError{Err: errors.New("connection refused")}
	_, err = svc.Load(context.Background())
	assert.Error(t, err)
	assert.Empty(t, st.Sales(), "failed load resets the collection")
}

func TestGetPrefersMirrorWithDetails(t *testing.T) {
	gw := &fakeSaleGateway{getErr: errors.New("should not be called")}
	svc, st, _ := newSaleFixture(gw)

	cached := models.Sale{ID: 5, Total: 300, Lines: []models.SaleLine{
		{ProductID: 1, Quantity: 1, UnitPrice: 300, Subtotal: 300},
	}}
	st.UpsertSale(cached)

	sale, err := svc.Get(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, cached, sale)
}

func TestGetFetchesDetailsWhenMissing(t *testing.T) {
	gw := &fakeSaleGateway{
		sale:    models.Sale{ID: 5, Total: 300},
		details: []models.SaleLine{{ProductID: 1, Quantity: 1, UnitPrice: 300, Subtotal: 300}},
	}
	svc, st, _ := newSaleFixture(gw)

	// Header only; the mirror cannot answer and the detail endpoint fills in.
	st.UpsertSale(models.Sale{ID: 5, Total: 300})

	sale, err := svc.Get(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, sale.Lines, 1)

	stored, ok := st.Sale(5)
	assert.True(t, ok)
	assert.Len(t, stored.Lines, 1)
}
