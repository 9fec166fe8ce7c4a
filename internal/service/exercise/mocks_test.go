package exercise

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ConsumeDailySessionFunc func(ctx context.Context, id uuid.UUID, today time.Time, limit int) (int, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		ConsumeDailySession []struct {
			ID    uuid.UUID
			Today time.Time
			Limit int
		}
	}
	mu sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID uuid.UUID
	}{ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) ConsumeDailySession(ctx context.Context, id uuid.UUID, today time.Time, limit int) (int, error) {
	if mock.ConsumeDailySessionFunc == nil {
		panic("userRepoMock.ConsumeDailySessionFunc: method is nil but userRepo.ConsumeDailySession was just called")
	}
	mock.mu.Lock()
	mock.calls.ConsumeDailySession = append(mock.calls.ConsumeDailySession, struct {
		ID    uuid.UUID
		Today time.Time
		Limit int
	}{ID: id, Today: today, Limit: limit})
	mock.mu.Unlock()
	return mock.ConsumeDailySessionFunc(ctx, id, today, limit)
}

func (mock *userRepoMock) ConsumeDailySessionCalls() []struct {
	ID    uuid.UUID
	Today time.Time
	Limit int
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ConsumeDailySession
}

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	RandomLearningFunc     func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error)
	RandomTranslationsFunc func(ctx context.Context, userID uuid.UUID, exclude string, limit int) ([]string, error)
	RegisterRecallFunc     func(ctx context.Context, wordID uuid.UUID) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		RandomLearning []struct {
			UserID uuid.UUID
			Limit  int
		}
		RandomTranslations []struct {
			UserID  uuid.UUID
			Exclude string
			Limit   int
		}
		RegisterRecall []struct {
			WordID uuid.UUID
		}
	}
	mu sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID uuid.UUID
	}{ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) RandomLearning(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Word, error) {
	if mock.RandomLearningFunc == nil {
		panic("wordRepoMock.RandomLearningFunc: method is nil but wordRepo.RandomLearning was just called")
	}
	mock.mu.Lock()
	mock.calls.RandomLearning = append(mock.calls.RandomLearning, struct {
		UserID uuid.UUID
		Limit  int
	}{UserID: userID, Limit: limit})
	mock.mu.Unlock()
	return mock.RandomLearningFunc(ctx, userID, limit)
}

func (mock *wordRepoMock) RandomLearningCalls() []struct {
	UserID uuid.UUID
	Limit  int
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.RandomLearning
}

func (mock *wordRepoMock) RandomTranslations(ctx context.Context, userID uuid.UUID, exclude string, limit int) ([]string, error) {
	if mock.RandomTranslationsFunc == nil {
		panic("wordRepoMock.RandomTranslationsFunc: method is nil but wordRepo.RandomTranslations was just called")
	}
	mock.mu.Lock()
	mock.calls.RandomTranslations = append(mock.calls.RandomTranslations, struct {
		UserID  uuid.UUID
		Exclude string
		Limit   int
	}{UserID: userID, Exclude: exclude, Limit: limit})
	mock.mu.Unlock()
	return mock.RandomTranslationsFunc(ctx, userID, exclude, limit)
}

func (mock *wordRepoMock) RandomTranslationsCalls() []struct {
	UserID  uuid.UUID
	Exclude string
	Limit   int
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.RandomTranslations
}

func (mock *wordRepoMock) RegisterRecall(ctx context.Context, wordID uuid.UUID) error {
	if mock.RegisterRecallFunc == nil {
		panic("wordRepoMock.RegisterRecallFunc: method is nil but wordRepo.RegisterRecall was just called")
	}
	mock.mu.Lock()
	mock.calls.RegisterRecall = append(mock.calls.RegisterRecall, struct {
		WordID uuid.UUID
	}{WordID: wordID})
	mock.mu.Unlock()
	return mock.RegisterRecallFunc(ctx, wordID)
}

func (mock *wordRepoMock) RegisterRecallCalls() []struct {
	WordID uuid.UUID
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.RegisterRecall
}

var _ exerciseRepo = &exerciseRepoMock{}

type exerciseRepoMock struct {
	CreateFunc func(ctx context.Context, rec *domain.ExerciseRecord) error

	calls struct {
		Create []struct {
			Rec *domain.ExerciseRecord
		}
	}
	mu sync.RWMutex
}

func (mock *exerciseRepoMock) Create(ctx context.Context, rec *domain.ExerciseRecord) error {
	if mock.CreateFunc == nil {
		panic("exerciseRepoMock.CreateFunc: method is nil but exerciseRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Rec *domain.ExerciseRecord
	}{Rec: rec})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *exerciseRepoMock) CreateCalls() []struct {
	Rec *domain.ExerciseRecord
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, no real transaction involved.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
