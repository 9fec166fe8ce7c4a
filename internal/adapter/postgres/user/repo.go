// Package user implements the User repository using PostgreSQL.
package user

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

const userColumns = `id, email, password_hash, name, phone, preferences, tier, daily_exercise_count, last_exercise_date, created_at, updated_at`

const createUserSQL = `
INSERT INTO users (id, email, password_hash, name, phone, preferences, tier, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + userColumns

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getUserByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const lockUserSQL = `
SELECT id FROM users WHERE id = $1 FOR UPDATE`

// consumeSessionSQL bumps the daily counter in one conditional statement.
// A stale last_exercise_date starts a fresh day at count 1; an up-to-date
// row only matches while the counter is below the limit.
const consumeSessionSQL = `
UPDATE users
SET daily_exercise_count = CASE
        WHEN last_exercise_date = $2::date THEN daily_exercise_count + 1
        ELSE 1
    END,
    last_exercise_date = $2::date,
    updated_at = now()
WHERE id = $1
  AND (last_exercise_date IS DISTINCT FROM $2::date OR daily_exercise_count < $3)
RETURNING daily_exercise_count`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user and returns the persisted domain.User.
// Email uniqueness is enforced by a DB constraint (ErrAlreadyExists).
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	preferences := u.Preferences
	if preferences == nil {
		preferences = []string{}
	}

	row := q.QueryRow(ctx, createUserSQL,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Phone, preferences, string(u.Tier), u.CreatedAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, mapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, mapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, mapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// LockByID takes a row lock on the user, serializing concurrent quota
// checks for the same user. Must be called inside a transaction.
func (r *Repo) LockByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var got uuid.UUID
	if err := q.QueryRow(ctx, lockUserSQL, id).Scan(&got); err != nil {
		return mapError(err, "user", id)
	}
	return nil
}

// ConsumeDailySession atomically charges one exercise session against the
// user's daily quota and returns the new count for today. Returns
// domain.ErrQuotaExceeded when the limit is already reached; the caller is
// expected to have verified the user exists.
func (r *Repo) ConsumeDailySession(ctx context.Context, id uuid.UUID, today time.Time, limit int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx, consumeSessionSQL, id, today, limit).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user %s: %w", id, domain.ErrQuotaExceeded)
		}
		return 0, mapError(err, "user", id)
	}
	return count, nil
}

// scanUser reads one user row.
func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		tier string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.Preferences, &tier,
		&u.DailyExerciseCount, &u.LastExerciseDate, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Tier = domain.Tier(tier)
	return &u, nil
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
