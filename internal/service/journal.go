package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"xerosync/internal/gateway"
	"xerosync/internal/logger"
	"xerosync/internal/model"
	"xerosync/internal/repository"
)

// JournalGateway is the part of the Xero client the journal use cases need.
type JournalGateway interface {
	model.Gateway
	GetJournals(ctx context.Context, modifiedSince time.Time) (*gateway.Response, error)
}

// JournalListResult is a page of stored journal summaries.
type JournalListResult struct {
	Items []*model.Journal
	Total int
}

// SyncResult reports what a sync run did. On failure it holds the counts
// reached before the failing journal.
type SyncResult struct {
	Fetched int
	Saved   int
}

// JournalService defines the journal use cases.
type JournalService interface {
	// Get returns a loaded journal, from the snapshot store when present,
	// otherwise from Xero (and stores it).
	Get(ctx context.Context, id string) (*model.Journal, error)

	// Lines returns the lines of one journal.
	Lines(ctx context.Context, id string) ([]*model.JournalLine, error)

	// List returns stored journal summaries using limit/offset.
	List(ctx context.Context, limit, offset int) (*JournalListResult, error)

	// Sync pulls every journal modified since the given time from Xero,
	// completes each one and stores it. It stops at the first failure.
	Sync(ctx context.Context, since time.Time) (*SyncResult, error)
}

type journalService struct {
	gw   JournalGateway
	repo repository.JournalRepository
	log  *zap.Logger
}

// NewJournalService constructs a JournalService.
func NewJournalService(gw JournalGateway, repo repository.JournalRepository, log *zap.Logger) JournalService {
	return &journalService{gw: gw, repo: repo, log: logger.OrNop(log)}
}

func (s *journalService) Get(ctx context.Context, id string) (*model.Journal, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	j, err := s.repo.FindByID(ctx, id)
	if err == nil {
		j.SetGateway(s.gw)
		return j, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	resp, err := s.gw.GetJournal(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch journal: %w", err)
	}
	if resp == nil || !resp.Success() || resp.Journal() == nil {
		return nil, ErrNotFound
	}

	j = resp.Journal()
	j.SetGateway(s.gw)
	if err := j.EnsureLoaded(ctx); err != nil {
		return nil, s.mapLoadError(err)
	}
	if err := s.repo.Save(ctx, j); err != nil {
		return nil, fmt.Errorf("save journal: %w", err)
	}
	s.log.Info("journal stored", zap.String("journal_id", j.JournalID), zap.String("journal_number", j.JournalNumber))
	return j, nil
}

func (s *journalService) Lines(ctx context.Context, id string) ([]*model.JournalLine, error) {
	j, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := j.JournalLines(ctx)
	if err != nil {
		return nil, s.mapLoadError(err)
	}
	return lines, nil
}

func (s *journalService) List(ctx context.Context, limit, offset int) (*JournalListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	for _, j := range res.Items {
		j.SetGateway(s.gw)
	}
	return &JournalListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *journalService) Sync(ctx context.Context, since time.Time) (*SyncResult, error) {
	start := time.Now()
	out := &SyncResult{}

	resp, err := s.gw.GetJournals(ctx, since)
	if err != nil {
		return out, fmt.Errorf("list journals: %w", err)
	}
	if resp == nil {
		return out, fmt.Errorf("list journals: empty response")
	}
	if !resp.Success() {
		return out, fmt.Errorf("list journals: unsuccessful response (%d %s)", resp.StatusCode, resp.Status)
	}
	out.Fetched = len(resp.Journals)

	for _, j := range resp.Journals {
		if err := j.EnsureLoaded(ctx); err != nil {
			return out, fmt.Errorf("load journal %s: %w", j.JournalID, s.mapLoadError(err))
		}
		if err := s.repo.Save(ctx, j); err != nil {
			return out, fmt.Errorf("save journal %s: %w", j.JournalID, err)
		}
		out.Saved++
	}

	s.log.Info("journal sync finished",
		zap.Time("since", since),
		zap.Int("fetched", out.Fetched),
		zap.Int("saved", out.Saved),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

// mapLoadError turns a lazy completion failure into a service error. Only
// the not-found case is translated; other failures keep their cause.
func (s *journalService) mapLoadError(err error) error {
	if errors.Is(err, model.ErrJournalNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}
