package words

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

// UpdateStatus moves a word between learning and done. The transition is
// always explicit; grading never changes a word's status. Returns
// ErrNotFound for an unknown or foreign word.
func (s *Service) UpdateStatus(ctx context.Context, wordID uuid.UUID, status string) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if wordID == uuid.Nil {
		return nil, domain.NewValidationError("word_id", "required")
	}

	target := domain.WordStatus(status)
	if !target.IsValid() {
		return nil, domain.NewValidationError("status", "must be learning or done")
	}

	updated, err := s.words.UpdateStatus(ctx, userID, wordID, target)
	if err != nil {
		return nil, fmt.Errorf("words.UpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "word status updated",
		slog.String("word_id", wordID.String()),
		slog.String("status", status))

	return updated, nil
}

// DeleteWord removes a word permanently. Returns ErrNotFound for an
// unknown or foreign word.
func (s *Service) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if wordID == uuid.Nil {
		return domain.NewValidationError("word_id", "required")
	}

	if err := s.words.Delete(ctx, userID, wordID); err != nil {
		return fmt.Errorf("words.DeleteWord: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("word_id", wordID.String()))

	return nil
}
