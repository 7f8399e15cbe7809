package services

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
	"github.com/storekhata/storekhata_backend/internal/dto"
)

// UserSvcFacade defines user registration and credential checks.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	HasAnyUser(ctx context.Context) (bool, error)
}
