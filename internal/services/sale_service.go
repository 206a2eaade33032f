// internal/services/sale_service.go
package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
	"github.com/blendsoft/pos-terminal/internal/cart"
	"github.com/blendsoft/pos-terminal/internal/gateway"
	"github.com/blendsoft/pos-terminal/internal/models"
	"github.com/blendsoft/pos-terminal/internal/store"
)

type SaleGateway interface {
	ListSales(ctx context.Context) ([]models.Sale, error)
	GetSale(ctx context.Context, id int) (models.Sale, error)
	GetSaleDetails(ctx context.Context, id int) ([]models.SaleLine, error)
	CreateSale(ctx context.Context, req gateway.SaleRequest) (gateway.SaleReceipt, error)
}

// SaleService loads the sales history and turns the current cart into a
// persisted sale.
type SaleService struct {
	gateway SaleGateway
	store   *store.Store
	cart    *cart.Cart
}

func NewSaleService(gateway SaleGateway, store *store.Store, cart *cart.Cart) *SaleService {
	return &SaleService{
		gateway: gateway,
		store:   store,
		cart:    cart,
	}
}

func (s *SaleService) Load(ctx context.Context) ([]models.Sale, error) {
	sales, err := s.gateway.ListSales(ctx)
	if err != nil {
		s.store.ReplaceSales(nil)
		logrus.WithError(err).Warn("Failed to load sales")
		return nil, err
	}

	s.store.ReplaceSales(sales)
	return sales, nil
}

// Get serves from the mirror when the sale already carries its line details
// and falls back to the API otherwise.
func (s *SaleService) Get(ctx context.Context, id int) (models.Sale, error) {
	if sale, ok := s.store.Sale(id); ok && len(sale.Lines) > 0 {
		return sale, nil
	}

	sale, err := s.gateway.GetSale(ctx, id)
	if err != nil {
		return models.Sale{}, err
	}

	if len(sale.Lines) == 0 {
		lines, err := s.gateway.GetSaleDetails(ctx, id)
		if err != nil {
			return models.Sale{}, err
		}
		sale.Lines = lines
	}

	s.store.UpsertSale(sale)
	return sale, nil
}

// Commit turns the current cart into a persisted sale, atomically from the
// caller's perspective.
//
// The line snapshots are captured synchronously before the network call, so
// cart edits made while the submission is in flight do not change the
// payload. A successful commit still clears the whole cart, including lines
// added during the wait.
//
// A failed submission leaves the cart completely untouched; the commit is
// always retryable with the same contents.
func (s *SaleService) Commit(ctx context.Context, at time.Time) (models.Sale, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return models.Sale{}, apperrors.ErrEmptyCart
	}

	var total float64
	details := make([]gateway.SaleLineRequest, 0, len(lines))
	for _, line := range lines {
		subtotal := line.Subtotal()
		total += subtotal
		details = append(details, gateway.SaleLineRequest{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  subtotal,
		})
	}

	req := gateway.SaleRequest{
		Date:    at.UTC().Format(time.RFC3339),
		Total:   total,
		Details: details,
	}

	receipt, err := s.gateway.CreateSale(ctx, req)
	if err != nil {
		return models.Sale{}, &apperrors.SaleSubmissionError{Err: err}
	}

	sale := models.Sale{
		ID:    receipt.ID,
		Date:  req.Date,
		Total: total,
		Lines: make([]models.SaleLine, 0, len(lines)),
	}
	// Canonicalized values from the API win when present.
	if receipt.Date != "" {
		sale.Date = receipt.Date
	}
	if receipt.Total != 0 {
		sale.Total = receipt.Total
	}
	for _, line := range lines {
		sale.Lines = append(sale.Lines, models.SaleLine{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal(),
		})
	}

	// Record the sale, then clear the cart, in that order: a sale recorded
	// locally implies the cart that produced it is gone, and a surviving
	// cart implies no sale record was silently dropped.
	s.store.UpsertSale(sale)
	s.cart.Clear()

	logrus.WithFields(logrus.Fields{
		"sale_id": sale.ID,
		"total":   sale.Total,
		"lines":   len(sale.Lines),
	}).Info("Sale committed")

	return sale, nil
}
