package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"xerosync/internal/model"
	"xerosync/internal/repository"
)

type MockJournalRepository struct {
	mock.Mock
}

var _ repository.JournalRepository = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) Save(ctx context.Context, j *model.Journal) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJournalRepository) FindByID(ctx context.Context, id string) (*model.Journal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Journal), args.Error(1)
}

func (m *MockJournalRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[*model.Journal], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[*model.Journal]), args.Error(1)
}
