// Package words implements the word store business logic: batch add with
// AI enrichment, listing, status transitions, deletion, and prompt-based
// generation.
package words

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/stepspeak-backend/internal/config"
	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// wordRepo defines the word repository interface needed by the words service.
type wordRepo interface {
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	List(ctx context.Context, userID uuid.UUID, f word.Filter) ([]domain.Word, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateStatus(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.Word, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
}

// userRepo defines the user repository interface needed by the words service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	LockByID(ctx context.Context, id uuid.UUID) error
}

// generator is the AI text-generation capability. Enrichment failures are
// recoverable (placeholders); generation failures are not.
type generator interface {
	Enabled() bool
	EnrichWord(ctx context.Context, word string) (domain.Enrichment, error)
	GenerateWords(ctx context.Context, prompt string, count int) ([]domain.GeneratedWord, error)
}

// txManager defines the transaction manager interface needed by the words service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements word store operations.
type Service struct {
	log    *slog.Logger
	words  wordRepo
	users  userRepo
	gen    generator
	tx     txManager
	genCfg config.GeneratorConfig
	limits config.LimitsConfig
	now    func() time.Time
}

// NewService creates a new words service instance.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	users userRepo,
	gen generator,
	tx txManager,
	genCfg config.GeneratorConfig,
	limits config.LimitsConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "words"),
		words:  words,
		users:  users,
		gen:    gen,
		tx:     tx,
		genCfg: genCfg,
		limits: limits,
		now:    time.Now,
	}
}
