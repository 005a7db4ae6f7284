package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"xerosync/internal/model"
	"xerosync/internal/service"
)

type MockJournalService struct {
	mock.Mock
}

var _ service.JournalService = (*MockJournalService)(nil)

func (m *MockJournalService) Get(ctx context.Context, id string) (*model.Journal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Journal), args.Error(1)
}

func (m *MockJournalService) Lines(ctx context.Context, id string) ([]*model.JournalLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.JournalLine), args.Error(1)
}

func (m *MockJournalService) List(ctx context.Context, limit, offset int) (*service.JournalListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JournalListResult), args.Error(1)
}

func (m *MockJournalService) Sync(ctx context.Context, since time.Time) (*service.SyncResult, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SyncResult), args.Error(1)
}
