package exercise_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/exercise"
	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*exercise.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return exercise.New(pool), pool
}

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	w := testhelper.SeedWord(t, pool, owner.ID)

	rec := domain.ExerciseRecord{
		ID:         uuid.New(),
		UserID:     owner.ID,
		WordID:     w.ID,
		Kind:       domain.ExerciseKindMixed,
		IsCorrect:  true,
		UserAnswer: w.Translation,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := repo.Create(ctx, &rec); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	totals, err := repo.Totals(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Totals: %v", err)
	}
	if totals.Total != 1 || totals.Correct != 1 {
		t.Errorf("totals: got %+v, want {Total:1 Correct:1}", totals)
	}
}

func TestRepo_Create_UnknownWord(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)

	rec := domain.ExerciseRecord{
		ID:         uuid.New(),
		UserID:     owner.ID,
		WordID:     uuid.New(), // no such word
		Kind:       domain.ExerciseKindMixed,
		IsCorrect:  false,
		UserAnswer: "whatever",
		CreatedAt:  time.Now().UTC(),
	}

	err := repo.Create(ctx, &rec)
	if err == nil {
		t.Fatal("expected error for unknown word, got nil")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestRepo_Totals_Empty(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)

	totals, err := repo.Totals(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Totals: unexpected error: %v", err)
	}
	if totals.Total != 0 || totals.Correct != 0 {
		t.Errorf("totals: got %+v, want zeros", totals)
	}
}

func TestRepo_Totals_MixedResults(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	w := testhelper.SeedWord(t, pool, owner.ID)

	now := time.Now().UTC()
	testhelper.SeedExercise(t, pool, owner.ID, w.ID, true, now)
	testhelper.SeedExercise(t, pool, owner.ID, w.ID, true, now)
	testhelper.SeedExercise(t, pool, owner.ID, w.ID, false, now)

	totals, err := repo.Totals(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Totals: unexpected error: %v", err)
	}
	if totals.Total != 3 {
		t.Errorf("Total: got %d, want 3", totals.Total)
	}
	if totals.Correct != 2 {
		t.Errorf("Correct: got %d, want 2", totals.Correct)
	}
}

func TestRepo_Totals_ScopedToUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	w1 := testhelper.SeedWord(t, pool, owner.ID)
	w2 := testhelper.SeedWord(t, pool, other.ID)

	now := time.Now().UTC()
	testhelper.SeedExercise(t, pool, owner.ID, w1.ID, true, now)
	testhelper.SeedExercise(t, pool, other.ID, w2.ID, true, now)

	totals, err := repo.Totals(ctx, owner.ID)
	if err != nil {
		t.Fatalf("Totals: unexpected error: %v", err)
	}
	if totals.Total != 1 {
		t.Errorf("Total: got %d, want 1", totals.Total)
	}
}

func TestRepo_WeeklyActivity_GroupsByDay(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	w := testhelper.SeedWord(t, pool, owner.ID)

	now := time.Now().UTC()
	twoDaysAgo := now.AddDate(0, 0, -2)
	testhelper.SeedExercise(t, pool, owner.ID, w.ID, true, twoDaysAgo)
	testhelper.SeedExercise(t, pool, owner.ID, w.ID, false, twoDaysAgo)
	testhelper.SeedExercise(t, pool, owner.ID, w.ID, true, now)

	since := now.AddDate(0, 0, -6)
	got, err := repo.WeeklyActivity(ctx, owner.ID, since)
	if err != nil {
		t.Fatalf("WeeklyActivity: unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("length: got %d, want 2 (days without activity are omitted)", len(got))
	}
	// Ascending by date.
	if !got[0].Date.Before(got[1].Date) {
		t.Errorf("days out of order: %v then %v", got[0].Date, got[1].Date)
	}
	if got[0].Count != 2 {
		t.Errorf("first day count: got %d, want 2", got[0].Count)
	}
	if got[1].Count != 1 {
		t.Errorf("second day count: got %d, want 1", got[1].Count)
	}
}

func TestRepo_WeeklyActivity_CutsOffOldRecords(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	w := testhelper.SeedWord(t, pool, owner.ID)

	now := time.Now().UTC()
	testhelper.SeedExercise(t, pool, owner.ID, w.ID, true, now.AddDate(0, 0, -30))
	testhelper.SeedExercise(t, pool, owner.ID, w.ID, true, now)

	since := now.AddDate(0, 0, -6)
	got, err := repo.WeeklyActivity(ctx, owner.ID, since)
	if err != nil {
		t.Fatalf("WeeklyActivity: unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("length: got %d, want 1", len(got))
	}
	if got[0].Count != 1 {
		t.Errorf("count: got %d, want 1", got[0].Count)
	}
}

func TestRepo_TopWords_Ordering(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	strong := testhelper.SeedWord(t, pool, owner.ID)
	weak := testhelper.SeedWord(t, pool, owner.ID)
	fresh := testhelper.SeedWord(t, pool, owner.ID)

	now := time.Now().UTC()
	// strong: 3 correct of 3; weak: 1 correct of 3; fresh: never practiced.
	for i := 0; i < 3; i++ {
		testhelper.SeedExercise(t, pool, owner.ID, strong.ID, true, now)
	}
	testhelper.SeedExercise(t, pool, owner.ID, weak.ID, true, now)
	testhelper.SeedExercise(t, pool, owner.ID, weak.ID, false, now)
	testhelper.SeedExercise(t, pool, owner.ID, weak.ID, false, now)

	got, err := repo.TopWords(ctx, owner.ID, 10)
	if err != nil {
		t.Fatalf("TopWords: unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("length: got %d, want 3", len(got))
	}
	if got[0].Word != strong.Text {
		t.Errorf("rank 1: got %q, want %q", got[0].Word, strong.Text)
	}
	if got[0].Correct != 3 || got[0].Attempts != 3 {
		t.Errorf("rank 1 counts: got correct=%d attempts=%d, want 3/3", got[0].Correct, got[0].Attempts)
	}
	if got[1].Word != weak.Text {
		t.Errorf("rank 2: got %q, want %q", got[1].Word, weak.Text)
	}
	if got[2].Word != fresh.Text {
		t.Errorf("rank 3: got %q, want %q", got[2].Word, fresh.Text)
	}
	if got[2].Attempts != 0 || got[2].Correct != 0 {
		t.Errorf("rank 3 counts: got correct=%d attempts=%d, want 0/0", got[2].Correct, got[2].Attempts)
	}
}

func TestRepo_TopWords_RespectsLimit(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	for i := 0; i < 4; i++ {
		testhelper.SeedWord(t, pool, owner.ID)
	}

	got, err := repo.TopWords(ctx, owner.ID, 2)
	if err != nil {
		t.Fatalf("TopWords: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("length: got %d, want 2", len(got))
	}
}
