// Package exercise implements practice session generation and grading.
package exercise

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/config"
	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the exercise service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ConsumeDailySession(ctx context.Context, id uuid.UUID, today time.Time, limit int) (int, error)
}

// wordRepo defines the word repository interface needed by the exercise service.
type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	RandomLearning(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error)
	RandomTranslations(ctx context.Context, userID uuid.UUID, exclude string, limit int) ([]string, error)
	RegisterRecall(ctx context.Context, wordID uuid.UUID) error
}

// exerciseRepo appends graded answers to the exercise log.
type exerciseRepo interface {
	Create(ctx context.Context, rec *domain.ExerciseRecord) error
}

// txManager defines the transaction manager interface needed by the exercise service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements exercise operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	words     wordRepo
	exercises exerciseRepo
	tx        txManager
	cfg       config.LimitsConfig
	now       func() time.Time
}

// NewService creates a new exercise service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	words wordRepo,
	exercises exerciseRepo,
	tx txManager,
	cfg config.LimitsConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "exercise"),
		users:     users,
		words:     words,
		exercises: exercises,
		tx:        tx,
		cfg:       cfg,
		now:       time.Now,
	}
}
