package user

import (
	"context"

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
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)
}

func (mock *wordRepoMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("wordRepoMock.CountByUserFunc: method is nil but wordRepo.CountByUser was just called")
	}
	return mock.CountByUserFunc(ctx, userID)
}
