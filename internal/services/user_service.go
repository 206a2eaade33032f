// internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
	"github.com/blendsoft/pos-terminal/internal/models"
	"github.com/blendsoft/pos-terminal/internal/store"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

type UserGateway interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, document int) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, document int) error
}

type UserService struct {
	gateway UserGateway
	store   *store.Store
}

type CreateUserRequest struct {
	Document   int    `json:"documento" validate:"required,document"`
	Email      string `json:"email" validate:"required,email"`
	Credential string `json:"contraseña" validate:"required,min=6"`
}

// The document number is immutable; updates carry only email and an
// optional new credential.
type UpdateUserRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Credential string `json:"contraseña,omitempty" validate:"omitempty,min=6"`
}

func NewUserService(gateway UserGateway, store *store.Store) *UserService {
	return &UserService{
		gateway: gateway,
		store:   store,
	}
}

func (s *UserService) Load(ctx context.Context) ([]models.User, error) {
	users, err := s.gateway.ListUsers(ctx)
	if err != nil {
		s.store.ReplaceUsers(nil)
		logrus.WithError(err).Warn("Failed to load users")
		return nil, err
	}

	s.store.ReplaceUsers(users)
	return users, nil
}

// Exists probes the API by document number before registration.
func (s *UserService) Exists(ctx context.Context, document int) (bool, error) {
	_, err := s.gateway.GetUser(ctx, document)
	if err != nil {
		var notFoundErr *apperrors.NotFoundError
		if errors.As(err, &notFoundErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (models.User, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return models.User{}, &apperrors.ValidationError{Fields: utils.GetValidationErrors(err)}
	}

	created, err := s.gateway.CreateUser(ctx, models.User{
		Document:   req.Document,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Credential: req.Credential,
	})
	if err != nil {
		return models.User{}, err
	}

	// The API omits the credential in its echo; never reintroduce it.
	created.Credential = ""
	s.store.UpsertUser(created)
	return created, nil
}

func (s *UserService) Update(ctx context.Context, document int, req UpdateUserRequest) (models.User, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return models.User{}, &apperrors.ValidationError{Fields: utils.GetValidationErrors(err)}
	}

	updated, err := s.gateway.UpdateUser(ctx, models.User{
		Document:   document,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Credential: req.Credential,
	})
	if err != nil {
		return models.User{}, err
	}

	updated.Credential = ""
	s.store.UpsertUser(updated)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, document int) error {
	if err := s.gateway.DeleteUser(ctx, document); err != nil {
		return err
	}

	s.store.RemoveUser(document)
	return nil
}
