// Package stats assembles the user's progress snapshot.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

const (
	weeklyWindowDays = 7
	topWordsLimit    = 10
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type wordRepo interface {
	CountsByStatus(ctx context.Context, userID uuid.UUID) (domain.WordCounts, error)
}

type exerciseRepo interface {
	Totals(ctx context.Context, userID uuid.UUID) (domain.ExerciseTotals, error)
	WeeklyActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayActivity, error)
	TopWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopWord, error)
}

// Service implements progress statistics.
type Service struct {
	log       *slog.Logger
	users     userRepo
	words     wordRepo
	exercises exerciseRepo
	now       func() time.Time
}

// NewService creates a new stats service instance.
func NewService(logger *slog.Logger, users userRepo, words wordRepo, exercises exerciseRepo) *Service {
	return &Service{
		log:       logger.With("service", "stats"),
		users:     users,
		words:     words,
		exercises: exercises,
		now:       time.Now,
	}
}

// ComputeStats gathers the full progress snapshot for the current user.
// The weekly window covers the last seven calendar days, today included.
func (s *Service) ComputeStats(ctx context.Context) (*domain.Stats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats.ComputeStats get user: %w", err)
	}

	counts, err := s.words.CountsByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats.ComputeStats word counts: %w", err)
	}

	totals, err := s.exercises.Totals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats.ComputeStats exercise totals: %w", err)
	}

	now := s.now()
	since := now.AddDate(0, 0, -(weeklyWindowDays - 1)).Truncate(24 * time.Hour)
	weekly, err := s.exercises.WeeklyActivity(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("stats.ComputeStats weekly activity: %w", err)
	}

	top, err := s.exercises.TopWords(ctx, userID, topWordsLimit)
	if err != nil {
		return nil, fmt.Errorf("stats.ComputeStats top words: %w", err)
	}

	return &domain.Stats{
		Words:      counts,
		Exercises:  totals,
		DaysActive: user.DaysActive(now),
		Weekly:     weekly,
		TopWords:   top,
	}, nil
}
