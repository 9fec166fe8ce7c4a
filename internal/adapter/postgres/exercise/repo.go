// Package exercise implements the append-only exercise log repository.
package exercise

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

const createRecordSQL = `
INSERT INTO exercises (id, user_id, word_id, kind, is_correct, user_answer, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const totalsSQL = `
SELECT count(*) AS total,
       count(*) FILTER (WHERE is_correct) AS correct
FROM exercises
WHERE user_id = $1`

const weeklyActivitySQL = `
SELECT created_at::date AS day, count(*)
FROM exercises
WHERE user_id = $1 AND created_at >= $2
GROUP BY day
ORDER BY day`

// topWordsSQL ranks the user's words by correct attempts, then by total
// attempts. Words never practiced still appear with zero counts.
const topWordsSQL = `
SELECT w.text, w.translation,
       count(e.id) AS attempts,
       count(e.id) FILTER (WHERE e.is_correct) AS correct
FROM words w
LEFT JOIN exercises e ON e.word_id = w.id
WHERE w.user_id = $1
GROUP BY w.id, w.text, w.translation
ORDER BY correct DESC, attempts DESC
LIMIT $2`

// Repo provides exercise-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new exercise repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends one graded answer to the log.
func (r *Repo) Create(ctx context.Context, rec *domain.ExerciseRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createRecordSQL,
		rec.ID, rec.UserID, rec.WordID, string(rec.Kind), rec.IsCorrect, rec.UserAnswer, rec.CreatedAt)
	if err != nil {
		return mapError(err, "exercise", rec.ID)
	}
	return nil
}

// Totals aggregates the user's whole exercise history.
func (r *Repo) Totals(ctx context.Context, userID uuid.UUID) (domain.ExerciseTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.ExerciseTotals
	if err := q.QueryRow(ctx, totalsSQL, userID).Scan(&t.Total, &t.Correct); err != nil {
		return domain.ExerciseTotals{}, mapError(err, "exercise", uuid.Nil)
	}
	return t, nil
}

// WeeklyActivity returns per-day exercise counts since the given time,
// ascending by date. Days without activity are omitted.
func (r *Repo) WeeklyActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayActivity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, weeklyActivitySQL, userID, since)
	if err != nil {
		return nil, mapError(err, "exercise", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.DayActivity
	for rows.Next() {
		var d domain.DayActivity
		if err := rows.Scan(&d.Date, &d.Count); err != nil {
			return nil, fmt.Errorf("scan day activity: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// TopWords returns the user's best-known words, at most limit rows.
func (r *Repo) TopWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, topWordsSQL, userID, limit)
	if err != nil {
		return nil, mapError(err, "exercise", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.TopWord
	for rows.Next() {
		var w domain.TopWord
		if err := rows.Scan(&w.Word, &w.Translation, &w.Attempts, &w.Correct); err != nil {
			return nil, fmt.Errorf("scan top word: %w", err)
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
