// Package word implements the Word repository using PostgreSQL.
package word

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

const wordColumns = `id, user_id, text, translation, examples, status, recall_count, last_recall_at, created_at`

const createWordSQL = `
INSERT INTO words (id, user_id, text, translation, examples, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + wordColumns

const getWordByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1`

const updateStatusSQL = `
UPDATE words
SET status = $3
WHERE id = $1 AND user_id = $2
RETURNING ` + wordColumns

const deleteWordSQL = `
DELETE FROM words
WHERE id = $1 AND user_id = $2`

const countByUserSQL = `
SELECT count(*) FROM words WHERE user_id = $1`

const randomLearningSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE user_id = $1 AND status = $2
ORDER BY random()
LIMIT $3`

const randomTranslationsSQL = `
SELECT translation FROM (
    SELECT DISTINCT translation
    FROM words
    WHERE user_id = $1 AND translation != $2
) candidates
ORDER BY random()
LIMIT $3`

const registerRecallSQL = `
UPDATE words
SET recall_count = recall_count + 1,
    last_recall_at = now()
WHERE id = $1`

const countsByStatusSQL = `
SELECT count(*) AS total,
       count(*) FILTER (WHERE status = 'learning') AS learning,
       count(*) FILTER (WHERE status = 'done') AS done
FROM words
WHERE user_id = $1`

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new word and returns the persisted domain.Word.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createWordSQL,
		w.ID, w.UserID, w.Text, w.Translation, w.Examples, string(w.Status), w.CreatedAt)

	created, err := scanWord(row)
	if err != nil {
		return nil, mapError(err, "word", w.ID)
	}
	return created, nil
}

// GetByID returns a word by primary key without ownership checks;
// callers enforce ownership.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, getWordByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "word", id)
	}
	return w, nil
}

// List returns the user's words, newest first, honoring the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f Filter) ([]domain.Word, error) {
	f = f.normalize()

	builder := sq.Select("id", "user_id", "text", "translation", "examples", "status", "recall_count", "last_recall_at", "created_at").
		From("words").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*f.Status)})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err, "word", uuid.Nil)
	}
	defer rows.Close()

	return scanWords(rows)
}

// CountByUser returns the total number of words the user has stored.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, mapError(err, "word", uuid.Nil)
	}
	return count, nil
}

// UpdateStatus changes the word's status; the word must belong to userID.
// Returns ErrNotFound for a missing or foreign word.
func (r *Repo) UpdateStatus(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWord(q.QueryRow(ctx, updateStatusSQL, wordID, userID, string(status)))
	if err != nil {
		return nil, mapError(err, "word", wordID)
	}
	return w, nil
}

// Delete removes the word; the word must belong to userID.
// Returns ErrNotFound for a missing or foreign word.
func (r *Repo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteWordSQL, wordID, userID)
	if err != nil {
		return mapError(err, "word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}

// RandomLearning returns up to limit random words in the learning status.
func (r *Repo) RandomLearning(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, randomLearningSQL, userID, string(domain.WordStatusLearning), limit)
	if err != nil {
		return nil, mapError(err, "word", uuid.Nil)
	}
	defer rows.Close()

	return scanWords(rows)
}

// RandomTranslations returns up to limit distinct translations of the
// user's words, used as multiple-choice distractors. Translations equal
// to exclude never appear: two words may share one translation, and the
// correct answer must not come back as a distractor.
func (r *Repo) RandomTranslations(ctx context.Context, userID uuid.UUID, exclude string, limit int) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, randomTranslationsSQL, userID, exclude, limit)
	if err != nil {
		return nil, mapError(err, "word", uuid.Nil)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var tr string
		if err := rows.Scan(&tr); err != nil {
			return nil, fmt.Errorf("scan translation: %w", err)
		}
		out = append(out, tr)
	}
	return out, rows.Err()
}

// RegisterRecall increments the word's recall counter and stamps the
// recall time. Called for every graded answer, correct or not.
func (r *Repo) RegisterRecall(ctx context.Context, wordID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, registerRecallSQL, wordID)
	if err != nil {
		return mapError(err, "word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}
	return nil
}

// CountsByStatus groups the user's words by status in a single query.
func (r *Repo) CountsByStatus(ctx context.Context, userID uuid.UUID) (domain.WordCounts, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var c domain.WordCounts
	err := q.QueryRow(ctx, countsByStatusSQL, userID).Scan(&c.Total, &c.Learning, &c.Done)
	if err != nil {
		return domain.WordCounts{}, mapError(err, "word", uuid.Nil)
	}
	return c, nil
}

// scanWord reads one word row.
func scanWord(row pgx.Row) (*domain.Word, error) {
	var (
		w      domain.Word
		status string
	)
	err := row.Scan(
		&w.ID, &w.UserID, &w.Text, &w.Translation, &w.Examples,
		&status, &w.RecallCount, &w.LastRecallAt, &w.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.Status = domain.WordStatus(status)
	return &w, nil
}

// scanWords reads all word rows.
func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var out []domain.Word
	for rows.Next() {
		var (
			w      domain.Word
			status string
		)
		err := rows.Scan(
			&w.ID, &w.UserID, &w.Text, &w.Translation, &w.Examples,
			&status, &w.RecallCount, &w.LastRecallAt, &w.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		w.Status = domain.WordStatus(status)
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
