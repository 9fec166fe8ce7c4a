package words

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/stepspeak-backend/internal/adapter/postgres/word"
	"github.com/heartmarshall/stepspeak-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	CreateFunc       func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	ListFunc         func(ctx context.Context, userID uuid.UUID, f word.Filter) ([]domain.Word, error)
	CountByUserFunc  func(ctx context.Context, userID uuid.UUID) (int, error)
	UpdateStatusFunc func(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.Word, error)
	DeleteFunc       func(ctx context.Context, userID, wordID uuid.UUID) error

	calls struct {
		Create []struct {
			Word *domain.Word
		}
		List []struct {
			UserID uuid.UUID
			Filter word.Filter
		}
		CountByUser []struct {
			UserID uuid.UUID
		}
		UpdateStatus []struct {
			UserID uuid.UUID
			WordID uuid.UUID
			Status domain.WordStatus
		}
		Delete []struct {
			UserID uuid.UUID
			WordID uuid.UUID
		}
	}
	mu sync.RWMutex
}

func (mock *wordRepoMock) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Word *domain.Word
	}{Word: w})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Word *domain.Word
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *wordRepoMock) List(ctx context.Context, userID uuid.UUID, f word.Filter) ([]domain.Word, error) {
	if mock.ListFunc == nil {
		panic("wordRepoMock.ListFunc: method is nil but wordRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		UserID uuid.UUID
		Filter word.Filter
	}{UserID: userID, Filter: f})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *wordRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter word.Filter
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.List
}

func (mock *wordRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("wordRepoMock.CountByUserFunc: method is nil but wordRepo.CountByUser was just called")
	}
	mock.mu.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, struct {
		UserID uuid.UUID
	}{UserID: userID})
	mock.mu.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

func (mock *wordRepoMock) CountByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.CountByUser
}

func (mock *wordRepoMock) UpdateStatus(ctx context.Context, userID, wordID uuid.UUID, status domain.WordStatus) (*domain.Word, error) {
	if mock.UpdateStatusFunc == nil {
		panic("wordRepoMock.UpdateStatusFunc: method is nil but wordRepo.UpdateStatus was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		UserID uuid.UUID
		WordID uuid.UUID
		Status domain.WordStatus
	}{UserID: userID, WordID: wordID, Status: status})
	mock.mu.Unlock()
	return mock.UpdateStatusFunc(ctx, userID, wordID, status)
}

func (mock *wordRepoMock) UpdateStatusCalls() []struct {
	UserID uuid.UUID
	WordID uuid.UUID
	Status domain.WordStatus
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.UpdateStatus
}

func (mock *wordRepoMock) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		UserID uuid.UUID
		WordID uuid.UUID
	}{UserID: userID, WordID: wordID})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	WordID uuid.UUID
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Delete
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	LockByIDFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		LockByID []struct {
			ID uuid.UUID
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) LockByID(ctx context.Context, id uuid.UUID) error {
	if mock.LockByIDFunc == nil {
		// Locking is a no-op outside a real transaction.
		return nil
	}
	mock.mu.Lock()
	mock.calls.LockByID = append(mock.calls.LockByID, struct {
		ID uuid.UUID
	}{ID: id})
	mock.mu.Unlock()
	return mock.LockByIDFunc(ctx, id)
}

var _ generator = &generatorMock{}

type generatorMock struct {
	EnabledFunc       func() bool
	EnrichWordFunc    func(ctx context.Context, word string) (domain.Enrichment, error)
	GenerateWordsFunc func(ctx context.Context, prompt string, count int) ([]domain.GeneratedWord, error)

	calls struct {
		EnrichWord []struct {
			Word string
		}
		GenerateWords []struct {
			Prompt string
			Count  int
		}
	}
	mu sync.RWMutex
}

func (mock *generatorMock) Enabled() bool {
	if mock.EnabledFunc == nil {
		return true
	}
	return mock.EnabledFunc()
}

func (mock *generatorMock) EnrichWord(ctx context.Context, word string) (domain.Enrichment, error) {
	if mock.EnrichWordFunc == nil {
		panic("generatorMock.EnrichWordFunc: method is nil but generator.EnrichWord was just called")
	}
	mock.mu.Lock()
	mock.calls.EnrichWord = append(mock.calls.EnrichWord, struct {
		Word string
	}{Word: word})
	mock.mu.Unlock()
	return mock.EnrichWordFunc(ctx, word)
}

func (mock *generatorMock) EnrichWordCalls() []struct {
	Word string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.EnrichWord
}

func (mock *generatorMock) GenerateWords(ctx context.Context, prompt string, count int) ([]domain.GeneratedWord, error) {
	if mock.GenerateWordsFunc == nil {
		panic("generatorMock.GenerateWordsFunc: method is nil but generator.GenerateWords was just called")
	}
	mock.mu.Lock()
	mock.calls.GenerateWords = append(mock.calls.GenerateWords, struct {
		Prompt string
		Count  int
	}{Prompt: prompt, Count: count})
	mock.mu.Unlock()
	return mock.GenerateWordsFunc(ctx, prompt, count)
}

func (mock *generatorMock) GenerateWordsCalls() []struct {
	Prompt string
	Count  int
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GenerateWords
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
