package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"xerosync/internal/service"
	"xerosync/internal/storage"
)

type MockAttachmentService struct {
	mock.Mock
}

var _ service.AttachmentService = (*MockAttachmentService)(nil)

func (m *MockAttachmentService) Archive(ctx context.Context, endpoint, guid string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, endpoint, guid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ObjectInfo), args.Error(1)
}

func (m *MockAttachmentService) Open(ctx context.Context, attachmentID, fileName string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, attachmentID, fileName)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(storage.ObjectInfo), args.Error(2)
}

func (m *MockAttachmentService) Link(ctx context.Context, attachmentID, fileName string) (string, error) {
	args := m.Called(ctx, attachmentID, fileName)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentService) Remove(ctx context.Context, attachmentID, fileName string) error {
	args := m.Called(ctx, attachmentID, fileName)
	return args.Error(0)
}
