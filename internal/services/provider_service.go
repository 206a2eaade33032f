// internal/services/provider_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
	"github.com/blendsoft/pos-terminal/internal/models"
	"github.com/blendsoft/pos-terminal/internal/store"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

type ProviderGateway interface {
	ListProviders(ctx context.Context) ([]models.Provider, error)
	CreateProvider(ctx context.Context, provider models.Provider) (int, error)
	UpdateProvider(ctx context.Context, provider models.Provider) (*models.Provider, error)
	DeleteProvider(ctx context.Context, id int) error
}

type ProviderService struct {
	gateway ProviderGateway
	store   *store.Store
}

// ProductID is nullable while the form is open but required to save.
type ProviderRequest struct {
	Name      string `json:"nombre" validate:"required,max=100"`
	ProductID *int   `json:"id_producto" validate:"required"`
}

func NewProviderService(gateway ProviderGateway, store *store.Store) *ProviderService {
	return &ProviderService{
		gateway: gateway,
		store:   store,
	}
}

func (s *ProviderService) Load(ctx context.Context) ([]models.Provider, error) {
	providers, err := s.gateway.ListProviders(ctx)
	if err != nil {
		s.store.ReplaceProviders(nil)
		logrus.WithError(err).Warn("Failed to load providers")
		return nil, err
	}

	s.store.ReplaceProviders(providers)
	return providers, nil
}

// Create sends the local payload and reconstructs the record from it plus
// the id returned by the API, which does not echo the created provider.
func (s *ProviderService) Create(ctx context.Context, req ProviderRequest) (models.Provider, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Provider{}, &apperrors.ValidationError{Fields: utils.GetValidationErrors(err)}
	}

	payload := models.Provider{
		Name:      req.Name,
		ProductID: req.ProductID,
	}

	id, err := s.gateway.CreateProvider(ctx, payload)
	if err != nil {
		return models.Provider{}, err
	}

	payload.ID = id
	s.store.UpsertProvider(payload)
	return payload, nil
}

func (s *ProviderService) Update(ctx context.Context, id int, req ProviderRequest) (models.Provider, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Provider{}, &apperrors.ValidationError{Fields: utils.GetValidationErrors(err)}
	}

	payload := models.Provider{
		ID:        id,
		Name:      req.Name,
		ProductID: req.ProductID,
	}

	echo, err := s.gateway.UpdateProvider(ctx, payload)
	if err != nil {
		return models.Provider{}, err
	}

	updated := payload
	if echo != nil {
		updated = *echo
	}

	s.store.UpsertProvider(updated)
	return updated, nil
}

func (s *ProviderService) Delete(ctx context.Context, id int) error {
	if err := s.gateway.DeleteProvider(ctx, id); err != nil {
		return err
	}

	s.store.RemoveProvider(id)
	return nil
}
