package stats

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CountsByStatusFunc func(ctx context.Context, userID uuid.UUID) (domain.WordCounts, error)
}

func (mock *wordRepoMock) CountsByStatus(ctx context.Context, userID uuid.UUID) (domain.WordCounts, error) {
	if mock.CountsByStatusFunc == nil {
		panic("wordRepoMock.CountsByStatusFunc: method is nil but wordRepo.CountsByStatus was just called")
	}
	return mock.CountsByStatusFunc(ctx, userID)
}

var _ exerciseRepo = &exerciseRepoMock{}

type exerciseRepoMock struct {
	TotalsFunc         func(ctx context.Context, userID uuid.UUID) (domain.ExerciseTotals, error)
	WeeklyActivityFunc func(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayActivity, error)
	TopWordsFunc       func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopWord, error)

	calls struct {
		WeeklyActivity []struct {
			UserID uuid.UUID
			Since  time.Time
		}
		TopWords []struct {
			UserID uuid.UUID
			Limit  int
		}
	}
	mu sync.RWMutex
}

func (mock *exerciseRepoMock) Totals(ctx context.Context, userID uuid.UUID) (domain.ExerciseTotals, error) {
	if mock.TotalsFunc == nil {
		panic("exerciseRepoMock.TotalsFunc: method is nil but exerciseRepo.Totals was just called")
	}
	return mock.TotalsFunc(ctx, userID)
}

func (mock *exerciseRepoMock) WeeklyActivity(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.DayActivity, error) {
	if mock.WeeklyActivityFunc == nil {
		panic("exerciseRepoMock.WeeklyActivityFunc: method is nil but exerciseRepo.WeeklyActivity was just called")
	}
	mock.mu.Lock()
	mock.calls.WeeklyActivity = append(mock.calls.WeeklyActivity, struct {
		UserID uuid.UUID
		Since  time.Time
	}{UserID: userID, Since: since})
	mock.mu.Unlock()
	return mock.WeeklyActivityFunc(ctx, userID, since)
}

func (mock *exerciseRepoMock) WeeklyActivityCalls() []struct {
	UserID uuid.UUID
	Since  time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.WeeklyActivity
}

func (mock *exerciseRepoMock) TopWords(ctx context.Context, userID uuid.UUID, limit int) ([]domain.TopWord, error) {
	if mock.TopWordsFunc == nil {
		panic("exerciseRepoMock.TopWordsFunc: method is nil but exerciseRepo.TopWords was just called")
	}
	mock.mu.Lock()
	mock.calls.TopWords = append(mock.calls.TopWords, struct {
		UserID uuid.UUID
		Limit  int
	}{UserID: userID, Limit: limit})
	mock.mu.Unlock()
	return mock.TopWordsFunc(ctx, userID, limit)
}

func (mock *exerciseRepoMock) TopWordsCalls() []struct {
	UserID uuid.UUID
	Limit  int
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.TopWords
}
