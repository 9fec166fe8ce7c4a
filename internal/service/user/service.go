// Package user implements profile operations for the authenticated user.
package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// wordRepo defines the word repository interface needed by the user service.
type wordRepo interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	words wordRepo
	now   func() time.Time
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, words wordRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		words: words,
		now:   time.Now,
	}
}

// Profile is the authenticated user's account snapshot.
type Profile struct {
	User              *domain.User
	WordCount         int
	SessionsAvailable int
	DailyCount        int
}

// Me returns the current user's profile with word and session counters.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Me(ctx context.Context) (*Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}

	wordCount, err := s.words.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me count words: %w", err)
	}

	today := s.now()
	return &Profile{
		User:              user,
		WordCount:         wordCount,
		SessionsAvailable: user.SessionsAvailable(today),
		DailyCount:        user.EffectiveExerciseCount(today),
	}, nil
}
