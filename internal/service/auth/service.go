// Package auth implements registration and password login.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/config"
	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// wordRepo provides the word count reported alongside auth responses.
type wordRepo interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// jwtManager defines the token issuing interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, tier string) (string, error)
}

// txManager defines the transaction manager interface needed by the auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	words wordRepo
	jwt   jwtManager
	tx    txManager
	cfg   config.AuthConfig
	now   func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	words wordRepo,
	jwt jwtManager,
	tx txManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		words: words,
		jwt:   jwt,
		tx:    tx,
		cfg:   cfg,
		now:   time.Now,
	}
}
