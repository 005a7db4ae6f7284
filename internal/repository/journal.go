package repository

import (
	"context"
	"errors"

	"xerosync/internal/model"
)

// ErrNotLoaded is returned when saving a journal whose lines were never
// downloaded.
var ErrNotLoaded = errors.New("journal lines are not loaded")

// JournalRepository stores local snapshots of Xero journals.
type JournalRepository interface {
	// Save upserts the journal and replaces its lines. The journal must
	// already be loaded; Save never fetches.
	Save(ctx context.Context, j *model.Journal) error

	// FindByID returns a fully loaded journal, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Journal, error)

	// List returns journal summaries, latest journal date first.
	List(ctx context.Context, pq PageQuery) (*PageResult[*model.Journal], error)
}
