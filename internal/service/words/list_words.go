package words

import (
	"context"
	"fmt"

	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

// ListInput narrows and pages a word listing. Status "" means all
// statuses; Page is 1-based.
type ListInput struct {
	Status string
	Page   int
}

// ListResult carries one page of words plus the unfiltered total.
type ListResult struct {
	Words []domain.Word
	Total int
}

// ListWords returns the caller's words, newest first.
func (s *Service) ListWords(ctx context.Context, input ListInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter := word.Filter{Limit: s.limits.WordsPageSize}

	if input.Status != "" {
		status := domain.WordStatus(input.Status)
		if !status.IsValid() {
			return nil, domain.NewValidationError("status", "must be learning or done")
		}
		filter.Status = &status
	}

	if input.Page > 1 {
		filter.Offset = (input.Page - 1) * s.limits.WordsPageSize
	}

	items, err := s.words.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("words.ListWords: %w", err)
	}

	total, err := s.words.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("words.ListWords count: %w", err)
	}

	return &ListResult{Words: items, Total: total}, nil
}
