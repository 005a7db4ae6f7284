package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"xerosync/internal/gateway"
	"xerosync/internal/logger"
	"xerosync/internal/model"
	"xerosync/internal/storage"
)

// DefaultLinkExpiry is how long presigned attachment links stay valid.
const DefaultLinkExpiry = 15 * time.Minute

// AttachmentGateway is the part of the Xero client the attachment use
// cases need.
type AttachmentGateway interface {
	GetAttachments(ctx context.Context, endpoint, guid string) (*gateway.Response, error)
	DownloadAttachment(ctx context.Context, a *model.Attachment) (io.ReadCloser, error)
}

// AttachmentService defines the attachment archive use cases.
type AttachmentService interface {
	// Archive copies every attachment of one Xero document into the archive.
	Archive(ctx context.Context, endpoint, guid string) ([]storage.ObjectInfo, error)

	// Open streams an archived attachment. The caller closes the reader.
	Open(ctx context.Context, attachmentID, fileName string) (io.ReadCloser, storage.ObjectInfo, error)

	// Link returns a presigned download URL for an archived attachment.
	Link(ctx context.Context, attachmentID, fileName string) (string, error)

	// Remove deletes an archived attachment.
	Remove(ctx context.Context, attachmentID, fileName string) error
}

type attachmentService struct {
	gw     AttachmentGateway
	store  storage.Storage
	expiry time.Duration
	log    *zap.Logger
}

// NewAttachmentService constructs an AttachmentService. A non-positive
// expiry falls back to DefaultLinkExpiry.
func NewAttachmentService(gw AttachmentGateway, store storage.Storage, expiry time.Duration, log *zap.Logger) AttachmentService {
	if expiry <= 0 {
		expiry = DefaultLinkExpiry
	}
	return &attachmentService{gw: gw, store: store, expiry: expiry, log: logger.OrNop(log)}
}

// AttachmentKey is the archive key of an attachment.
func AttachmentKey(attachmentID, fileName string) (string, error) {
	if attachmentID == "" || fileName == "" {
		return "", ErrIDRequired
	}
	for _, part := range []string{attachmentID, fileName} {
		if part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return "", fmt.Errorf("%q: %w", part, ErrInvalidFileName)
		}
	}
	return path.Join("attachments", attachmentID, fileName), nil
}

func (s *attachmentService) Archive(ctx context.Context, endpoint, guid string) ([]storage.ObjectInfo, error) {
	if guid == "" {
		return nil, ErrIDRequired
	}
	if !slices.Contains(gateway.AttachmentEndpoints, endpoint) {
		return nil, fmt.Errorf("%s: %w", endpoint, ErrInvalidEndpoint)
	}

	resp, err := s.gw.GetAttachments(ctx, endpoint, guid)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	if !resp.Success() {
		return nil, ErrNotFound
	}

	out := make([]storage.ObjectInfo, 0, len(resp.Attachments))
	for _, a := range resp.Attachments {
		info, err := s.archiveOne(ctx, endpoint, guid, a)
		if err != nil {
			return out, err
		}
		out = append(out, info)
	}

	s.log.Info("attachments archived",
		zap.String("endpoint", endpoint),
		zap.String("guid", guid),
		zap.Int("count", len(out)),
	)
	return out, nil
}

func (s *attachmentService) archiveOne(ctx context.Context, endpoint, guid string, a *model.Attachment) (storage.ObjectInfo, error) {
	key, err := AttachmentKey(a.AttachmentID, a.FileName)
	if err != nil {
		return storage.ObjectInfo{}, err
	}

	rc, err := s.gw.DownloadAttachment(ctx, a)
	if err != nil {
		return storage.ObjectInfo{}, fmt.Errorf("download %s: %w", a.FileName, err)
	}
	defer rc.Close()

	size := a.ContentLength
	if size <= 0 {
		size = -1
	}
	info, err := s.store.Put(ctx, key, rc, storage.PutObjectOptions{
		Size:        size,
		ContentType: a.MimeType,
		Metadata: map[string]string{
			"xero-endpoint":     endpoint,
			"xero-guid":         guid,
			"original-filename": a.FileName,
		},
	})
	if err != nil {
		return storage.ObjectInfo{}, fmt.Errorf("upload to storage: %w", err)
	}
	return info, nil
}

func (s *attachmentService) Open(ctx context.Context, attachmentID, fileName string) (io.ReadCloser, storage.ObjectInfo, error) {
	key, err := AttachmentKey(attachmentID, fileName)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, storage.ObjectInfo{}, mapStorageError(err)
	}
	return rc, info, nil
}

func (s *attachmentService) Link(ctx context.Context, attachmentID, fileName string) (string, error) {
	key, err := AttachmentKey(attachmentID, fileName)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, key, s.expiry)
}

func (s *attachmentService) Remove(ctx context.Context, attachmentID, fileName string) error {
	key, err := AttachmentKey(attachmentID, fileName)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete storage: %w", mapStorageError(err))
	}
	return nil
}

func mapStorageError(err error) error {
	if errors.Is(err, storage.ErrObjectNotFound) {
		return ErrNotFound
	}
	return err
}
