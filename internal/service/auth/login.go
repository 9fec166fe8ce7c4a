package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// Login authenticates a user by email and password. Unknown email and
// wrong password both return ErrUnauthorized so callers cannot probe for
// registered addresses.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, string(user.Tier))
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	wordCount, err := s.words.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Login count words: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &AuthResult{
		User:               user,
		AccessToken:        token,
		WordCount:          wordCount,
		ExercisesRemaining: user.SessionsAvailable(s.now()),
	}, nil
}
