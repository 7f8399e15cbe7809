package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/storekhata/storekhata_backend/internal/apperrors"
	"github.com/storekhata/storekhata_backend/internal/core/domain"
	portsrepo "github.com/storekhata/storekhata_backend/internal/core/ports/repositories"
	portssvc "github.com/storekhata/storekhata_backend/internal/core/ports/services"
	"github.com/storekhata/storekhata_backend/internal/dto"
	"github.com/storekhata/storekhata_backend/internal/middleware"
	"github.com/storekhata/storekhata_backend/internal/utils"
)

type UserService struct {
	userRepo portsrepo.UserRepository
}

func NewUserService(repo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: repo}
}

// Ensure UserService implements the facade
var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser creates a new user with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      req.Username,
		PasswordHash:  hash,
		Role:          req.Role,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save user in repository", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		}
		return nil, err
	}

	logger.Info("User registered successfully", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

// AuthenticateUser verifies credentials. A missing user and a wrong password
// both fail with apperrors.ErrUnauthorized so login responses do not reveal
// which usernames exist.
func (s *UserService) AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to find user by username", slog.String("error", err.Error()))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find user by ID in repository", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// HasAnyUser reports whether at least one user exists. Registration is open
// until the first user (the owner) is created.
func (s *UserService) HasAnyUser(ctx context.Context) (bool, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
