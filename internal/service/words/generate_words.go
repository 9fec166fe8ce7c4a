package words

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

const maxGenerateCount = 50

// GenerateInput holds the prompt for themed word generation.
type GenerateInput struct {
	Prompt string
	Count  int
}

// GenerateWords asks the AI provider for a themed word batch and stores
// it like AddWords. Unlike enrichment there is no fallback: a failed or
// empty provider response fails the whole request with ErrUpstream. The
// word quota is checked before the provider is called.
func (s *Service) GenerateWords(ctx context.Context, input GenerateInput) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, domain.NewValidationError("prompt", "required")
	}

	count := input.Count
	if count <= 0 {
		count = s.genCfg.DefaultCount
	}
	if count > maxGenerateCount {
		count = maxGenerateCount
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("words.GenerateWords get user: %w", err)
	}

	stored, err := s.words.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("words.GenerateWords count: %w", err)
	}
	if stored+count > user.Tier.WordLimit() {
		return nil, fmt.Errorf("words.GenerateWords: %d stored, %d requested, limit %d: %w",
			stored, count, user.Tier.WordLimit(), domain.ErrQuotaExceeded)
	}

	genCtx, cancel := context.WithTimeout(ctx, s.genCfg.GenerateTimeout)
	defer cancel()

	generated, err := s.gen.GenerateWords(genCtx, prompt, count)
	if err != nil {
		return nil, fmt.Errorf("words.GenerateWords: %w", err)
	}
	if len(generated) == 0 {
		return nil, fmt.Errorf("words.GenerateWords: provider returned nothing: %w", domain.ErrUpstream)
	}

	var created []domain.Word
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.LockByID(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		locked, err := s.words.CountByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("recount words: %w", err)
		}
		if locked+len(generated) > user.Tier.WordLimit() {
			return fmt.Errorf("%d stored, %d generated, limit %d: %w",
				locked, len(generated), user.Tier.WordLimit(), domain.ErrQuotaExceeded)
		}

		now := s.now().UTC()
		for _, g := range generated {
			text := domain.NormalizeText(g.Word)
			if text == "" {
				continue
			}
			w := &domain.Word{
				ID:          uuid.New(),
				UserID:      userID,
				Text:        text,
				Translation: g.Translation,
				Examples:    g.Examples,
				Status:      domain.WordStatusLearning,
				CreatedAt:   now,
			}
			storedWord, err := s.words.Create(txCtx, w)
			if err != nil {
				return fmt.Errorf("create word %q: %w", text, err)
			}
			created = append(created, *storedWord)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("words.GenerateWords: %w", err)
	}

	s.log.InfoContext(ctx, "words generated",
		slog.String("user_id", userID.String()),
		slog.String("prompt", prompt),
		slog.Int("count", len(created)))

	return created, nil
}
