// internal/services/provider_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
	"github.com/blendsoft/pos-terminal/internal/models"
	"github.com/blendsoft/pos-terminal/internal/store"
)

type fakeProviderGateway struct {
	providers []models.Provider
	listErr   error
	createdID int
	createErr error
	echo      *models.Provider

	createCalls int
}

func (f *fakeProviderGateway) ListProviders(ctx context.Context) ([]models.Provider, error) {
	return f.providers, f.listErr
}

func (f *fakeProviderGateway) CreateProvider(ctx context.Context, provider models.Provider) (int, error) {
	f.createCalls++
	return f.createdID, f.createErr
}

func (f *fakeProviderGateway) UpdateProvider(ctx context.Context, provider models.Provider) (*models.Provider, error) {
	return f.echo, nil
}

func (f *fakeProviderGateway) DeleteProvider(ctx context.Context, id int) error {
	return nil
}

func intPtr(v int) *int { return &v }

func TestProviderCreateReconstructsFromPayload(t *testing.T) {
	gw := &fakeProviderGateway{createdID: 15}
	st := store.New()
	svc := NewProviderService(gw, st)

	created, err := svc.Create(context.Background(), ProviderRequest{
		Name:      "Distribuidora Sur",
		ProductID: intPtr(3),
	})

	assert.NoError(t, err)
	assert.Equal(t, 15, created.ID)
	assert.Equal(t, "Distribuidora Sur", created.Name)
	assert.Equal(t, 3, *created.ProductID)
	assert.Equal(t, []models.Provider{created}, st.Providers())
}

func TestProviderCreateRequiresProduct(t *testing.T) {
	gw := &fakeProviderGateway{}
	svc := NewProviderService(gw, store.New())

	_, err := svc.Create(context.Background(), ProviderRequest{Name: "Distribuidora Sur"})

	var valErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Zero(t, gw.createCalls)
}

func TestProviderUpdateFallsBackToPayload(t *testing.T) {
	gw := &fakeProviderGateway{echo: nil}
	st := store.New()
	st.UpsertProvider(models.Provider{ID: 2, Name: "Distribuidora Sur", ProductID: intPtr(3)})
	svc := NewProviderService(gw, st)

	updated, err := svc.Update(context.Background(), 2, ProviderRequest{
		Name:      "Distribuidora Norte",
		ProductID: intPtr(4),
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, updated.ID)
	assert.Equal(t, "Distribuidora Norte", updated.Name)
	assert.Equal(t, []models.Provider{updated}, st.Providers())
}

func TestProviderLoadResetsOnFailure(t *testing.T) {
	gw := &fakeProviderGateway{listErr: errors.New("connection refused")}
	st := store.New()
	st.UpsertProvider(models.Provider{ID: 1, Name: "Distribuidora Sur", ProductID: intPtr(3)})
	svc := NewProviderService(gw, st)

	_, err := svc.Load(context.Background())

	assert.Error(t, err)
	assert.Empty(t, st.Providers())
}
