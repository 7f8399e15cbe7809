package repositories

import (
	"context"

	"github.com/storekhata/storekhata_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users (actors).
// Users are never deleted; sales and transactions reference them.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CountUsers(ctx context.Context) (int64, error)
}
