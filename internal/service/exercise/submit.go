package exercise

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

// SubmitInput holds one batch of answers for grading.
type SubmitInput struct {
	Answers []domain.Answer
}

// GradeResult is the outcome of grading one answer batch.
type GradeResult struct {
	Results   []domain.AnswerResult
	Score     int
	Total     int
	Remaining int
}

// Submit grades a batch of answers. Answers referencing unknown or
// foreign words are skipped and excluded from the total. Every graded
// answer appends an exercise record and bumps the word's recall counter,
// correct or not. The whole batch consumes exactly one daily session
// unit, atomically with the records; an exhausted quota rolls everything
// back.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*GradeResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if len(input.Answers) == 0 {
		return nil, domain.NewValidationError("answers", "required")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("exercise.Submit get user: %w", err)
	}

	today := s.now()
	result := &GradeResult{Results: []domain.AnswerResult{}}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, ans := range input.Answers {
			word, err := s.words.GetByID(txCtx, ans.WordID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					continue // lenient: skip unknown words
				}
				return fmt.Errorf("get word %s: %w", ans.WordID, err)
			}
			if word.UserID != userID {
				continue
			}

			correct := domain.GradeAnswer(ans.Answer, word.Translation)

			rec := &domain.ExerciseRecord{
				ID:         uuid.New(),
				UserID:     userID,
				WordID:     word.ID,
				Kind:       domain.ExerciseKindMixed,
				IsCorrect:  correct,
				UserAnswer: ans.Answer,
				CreatedAt:  s.now().UTC(),
			}
			if err := s.exercises.Create(txCtx, rec); err != nil {
				return fmt.Errorf("record answer: %w", err)
			}

			if err := s.words.RegisterRecall(txCtx, word.ID); err != nil {
				return fmt.Errorf("register recall: %w", err)
			}

			result.Results = append(result.Results, domain.AnswerResult{
				WordID:        word.ID,
				IsCorrect:     correct,
				CorrectAnswer: word.Translation,
			})
			result.Total++
			if correct {
				result.Score++
			}
		}

		// One quota unit per batch, rolled back with the records when
		// the daily limit is already spent.
		newCount, err := s.users.ConsumeDailySession(txCtx, userID, today, user.Tier.DailyExerciseLimit())
		if err != nil {
			return fmt.Errorf("consume session: %w", err)
		}

		result.Remaining = user.Tier.DailyExerciseLimit() - newCount
		if result.Remaining < 0 {
			result.Remaining = 0
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("exercise.Submit: %w", err)
	}

	s.log.InfoContext(ctx, "answers graded",
		slog.String("user_id", userID.String()),
		slog.Int("score", result.Score),
		slog.Int("total", result.Total))

	return result, nil
}
