package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// Register creates a new free-tier user with email + password.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by a DB constraint.
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC()
		newUser := &domain.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: string(hash),
			Name:         input.Name,
			Phone:        input.Phone,
			Preferences:  input.Preferences,
			Tier:         domain.TierFree,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		var createErr error
		created, createErr = s.users.Create(txCtx, newUser)
		if createErr != nil {
			return fmt.Errorf("create user: %w", createErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	token, err := s.jwt.GenerateAccessToken(created.ID, string(created.Tier))
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()))

	return &AuthResult{
		User:               created,
		AccessToken:        token,
		WordCount:          0,
		ExercisesRemaining: created.SessionsAvailable(s.now()),
	}, nil
}
