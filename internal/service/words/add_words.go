package words

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

// AddWordsInput holds the raw word texts for a batch add.
type AddWordsInput struct {
	Words []string
}

// AddWords enriches and stores a batch of new words. The whole batch is
// rejected with ErrQuotaExceeded when it would push the user over the
// tier's word ceiling; no partial insert happens in that case. Enrichment
// failures degrade individual words to placeholder content.
func (s *Service) AddWords(ctx context.Context, input AddWordsInput) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	texts := normalizeBatch(input.Words)
	if len(texts) == 0 {
		return nil, domain.NewValidationError("words", "required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("words.AddWords get user: %w", err)
	}

	// Cheap pre-check so a hopeless batch never hits the provider. The
	// authoritative check runs again under the row lock below.
	count, err := s.words.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("words.AddWords count: %w", err)
	}
	if count+len(texts) > user.Tier.WordLimit() {
		return nil, fmt.Errorf("words.AddWords: %d stored, %d requested, limit %d: %w",
			count, len(texts), user.Tier.WordLimit(), domain.ErrQuotaExceeded)
	}

	enriched := s.enrichBatch(ctx, texts)

	var created []domain.Word
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.LockByID(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		locked, err := s.words.CountByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("recount words: %w", err)
		}
		if locked+len(texts) > user.Tier.WordLimit() {
			return fmt.Errorf("%d stored, %d requested, limit %d: %w",
				locked, len(texts), user.Tier.WordLimit(), domain.ErrQuotaExceeded)
		}

		now := s.now().UTC()
		for i, text := range texts {
			w := &domain.Word{
				ID:          uuid.New(),
				UserID:      userID,
				Text:        text,
				Translation: enriched[i].Translation,
				Examples:    enriched[i].Examples,
				Status:      domain.WordStatusLearning,
				CreatedAt:   now,
			}
			stored, err := s.words.Create(txCtx, w)
			if err != nil {
				return fmt.Errorf("create word %q: %w", text, err)
			}
			created = append(created, *stored)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("words.AddWords: %w", err)
	}

	s.log.InfoContext(ctx, "words added",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(created)))

	return created, nil
}

// enrichBatch fetches translations and examples for every text with a
// bounded concurrent fan-out. A failed item degrades to placeholders; the
// result slice is index-aligned with texts.
func (s *Service) enrichBatch(ctx context.Context, texts []string) []domain.Enrichment {
	out := make([]domain.Enrichment, len(texts))

	if !s.gen.Enabled() {
		for i, text := range texts {
			out[i] = domain.PlaceholderEnrichment(text)
		}
		return out
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.genCfg.MaxConcurrent)

	for i, text := range texts {
		g.Go(func() error {
			itemCtx, cancel := context.WithTimeout(gctx, s.genCfg.EnrichTimeout)
			defer cancel()

			enr, err := s.gen.EnrichWord(itemCtx, text)
			if err != nil {
				s.log.WarnContext(ctx, "enrichment degraded to placeholder",
					slog.String("word", text), slog.String("error", err.Error()))
				enr = domain.PlaceholderEnrichment(text)
			}
			out[i] = enr
			return nil
		})
	}

	// Workers never return errors; Wait only orders the writes.
	_ = g.Wait()
	return out
}

// normalizeBatch normalizes every text and drops entries that normalize
// to nothing.
func normalizeBatch(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if text := domain.NormalizeText(r); text != "" {
			out = append(out, text)
		}
	}
	return out
}
