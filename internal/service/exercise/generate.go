package exercise

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
	"github.com/heartmarshall/stepspeak-backend/pkg/ctxutil"
)

// SessionResult is one generated practice session.
type SessionResult struct {
	Exercises []domain.Exercise
	Remaining int
	Message   string
}

// Generate builds a practice session from random learning words. The
// daily quota gates generation but is not consumed here; consumption
// happens on submit. A user without learning words gets an empty session,
// not an error.
func (s *Service) Generate(ctx context.Context) (*SessionResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("exercise.Generate get user: %w", err)
	}

	today := s.now()
	if !user.CanStartSession(today) {
		return nil, fmt.Errorf("exercise.Generate: daily limit %d reached: %w",
			user.Tier.DailyExerciseLimit(), domain.ErrQuotaExceeded)
	}

	picked, err := s.words.RandomLearning(ctx, userID, s.cfg.SessionSize)
	if err != nil {
		return nil, fmt.Errorf("exercise.Generate pick words: %w", err)
	}

	if len(picked) == 0 {
		return &SessionResult{
			Exercises: []domain.Exercise{},
			Remaining: user.ExercisesRemaining(today),
			Message:   "no words for practice",
		}, nil
	}

	exercises := make([]domain.Exercise, 0, len(picked))
	for _, w := range picked {
		ex, err := s.buildExercise(ctx, userID, w)
		if err != nil {
			return nil, fmt.Errorf("exercise.Generate build: %w", err)
		}
		exercises = append(exercises, ex)
	}

	s.log.InfoContext(ctx, "session generated",
		slog.String("user_id", userID.String()),
		slog.Int("exercises", len(exercises)))

	return &SessionResult{
		Exercises: exercises,
		Remaining: user.ExercisesRemaining(today),
	}, nil
}

// buildExercise picks a random kind for the word and assembles options
// for multiple choice.
func (s *Service) buildExercise(ctx context.Context, userID uuid.UUID, w domain.Word) (domain.Exercise, error) {
	ex := domain.Exercise{
		WordID:        w.ID,
		Question:      w.Text,
		CorrectAnswer: w.Translation,
	}

	if rand.IntN(2) == 0 {
		ex.Kind = domain.ExerciseKindTranslation
		return ex, nil
	}

	ex.Kind = domain.ExerciseKindMultipleChoice

	distractors, err := s.words.RandomTranslations(ctx, userID, w.Translation, s.cfg.MaxDistractor)
	if err != nil {
		return domain.Exercise{}, fmt.Errorf("pick distractors: %w", err)
	}

	// The correct answer appears exactly once; the repo excludes it, but
	// the options are deduplicated here as well so the invariant does not
	// depend on the storage layer.
	options := make([]string, 0, len(distractors)+1)
	options = append(options, w.Translation)
	seen := map[string]struct{}{w.Translation: {}}
	for _, d := range distractors {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		options = append(options, d)
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	ex.Options = options

	return ex, nil
}
