package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"xerosync/internal/gateway"
	"xerosync/internal/model"
)

// MockClient mocks the Xero gateway client.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetJournal(ctx context.Context, journalID string) (model.JournalResponse, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.JournalResponse), args.Error(1)
}

func (m *MockClient) GetJournals(ctx context.Context, modifiedSince time.Time) (*gateway.Response, error) {
	args := m.Called(ctx, modifiedSince)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Response), args.Error(1)
}

func (m *MockClient) GetAttachments(ctx context.Context, endpoint, guid string) (*gateway.Response, error) {
	args := m.Called(ctx, endpoint, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Response), args.Error(1)
}

func (m *MockClient) DownloadAttachment(ctx context.Context, a *model.Attachment) (io.ReadCloser, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
