// internal/services/product_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
	"github.com/blendsoft/pos-terminal/internal/models"
	"github.com/blendsoft/pos-terminal/internal/store"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

// ProductGateway is the slice of the remote API this service consumes.
type ProductGateway interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type ProductService struct {
	gateway ProductGateway
	store   *store.Store
}

type ProductRequest struct {
	Name        string  `json:"nombre" validate:"required,max=100"`
	Description string  `json:"descripcion" validate:"required,max=500"`
	Price       float64 `json:"precio" validate:"required,gt=0"`
}

func NewProductService(gateway ProductGateway, store *store.Store) *ProductService {
	return &ProductService{
		gateway: gateway,
		store:   store,
	}
}

// Load hydrates the product collection from the remote API. On failure the
// collection is reset to empty, never left at a stale value, and the error
// is surfaced without retrying.
func (s *ProductService) Load(ctx context.Context) ([]models.Product, error) {
	products, err := s.gateway.ListProducts(ctx)
	if err != nil {
		s.store.ReplaceProducts(nil)
		logrus.WithError(err).Warn("Failed to load products")
		return nil, err
	}

	s.store.ReplaceProducts(products)
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, req ProductRequest) (models.Product, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Product{}, &apperrors.ValidationError{Fields: utils.GetValidationErrors(err)}
	}

	created, err := s.gateway.CreateProduct(ctx, models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		return models.Product{}, err
	}

	s.store.UpsertProduct(created)
	return created, nil
}

// Update applies the change only after server confirmation; a rejected edit
// leaves the mirror untouched.
func (s *ProductService) Update(ctx context.Context, id int, req ProductRequest) (models.Product, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Product{}, &apperrors.ValidationError{Fields: utils.GetValidationErrors(err)}
	}

	payload := models.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	echo, err := s.gateway.UpdateProduct(ctx, payload)
	if err != nil {
		return models.Product{}, err
	}

	updated := payload
	if echo != nil {
		updated = *echo
	}

	s.store.UpsertProduct(updated)
	return updated, nil
}

// Delete removes the product from exactly one collection; committed sales
// keep their line snapshots.
func (s *ProductService) Delete(ctx context.Context, id int) error {
	if err := s.gateway.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.store.RemoveProduct(id)
	return nil
}
