package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a free-tier user with a fixed password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserTier(t, pool, domain.TierFree)
}

// SeedUserTier creates a user with the given tier.
func SeedUserTier(t *testing.T, pool *pgxpool.Pool, tier domain.Tier) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$seedseedseedseedseedseedseedseedseedseedseedseedseed",
		Name:         "Test User " + suffix,
		Tier:         tier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, name, tier, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Name, string(user.Tier), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedWord creates a learning word for the user. Text gets a unique suffix.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Word {
	t.Helper()
	return SeedWordStatus(t, pool, userID, domain.WordStatusLearning)
}

// SeedWordStatus creates a word with the given status.
func SeedWordStatus(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, status domain.WordStatus) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	word := domain.Word{
		ID:          uuid.New(),
		UserID:      userID,
		Text:        "word-" + suffix,
		Translation: "перевод-" + suffix,
		Examples: []string{
			"Example A " + suffix,
			"Example B " + suffix,
		},
		Status:    status,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, user_id, text, translation, examples, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		word.ID, word.UserID, word.Text, word.Translation, word.Examples, string(word.Status), word.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	return word
}

// SeedExercise appends a graded exercise record for the given word.
func SeedExercise(t *testing.T, pool *pgxpool.Pool, userID, wordID uuid.UUID, correct bool, at time.Time) domain.ExerciseRecord {
	t.Helper()
	ctx := context.Background()

	rec := domain.ExerciseRecord{
		ID:         uuid.New(),
		UserID:     userID,
		WordID:     wordID,
		Kind:       domain.ExerciseKindMixed,
		IsCorrect:  correct,
		UserAnswer: "answer-" + uniqueSuffix(),
		CreatedAt:  at,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO exercises (id, user_id, word_id, kind, is_correct, user_answer, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.UserID, rec.WordID, string(rec.Kind), rec.IsCorrect, rec.UserAnswer, rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExercise insert exercise: %v", err)
	}

	return rec
}
