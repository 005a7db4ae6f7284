package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"xerosync/internal/model"
	"xerosync/internal/repository"
)

// JournalPostgres is a PostgreSQL implementation of repository.JournalRepository.
type JournalPostgres struct {
	db *sql.DB
}

// NewJournalPostgres creates a new JournalPostgres repository.
func NewJournalPostgres(db *sql.DB) *JournalPostgres {
	return &JournalPostgres{db: db}
}

var _ repository.JournalRepository = (*JournalPostgres)(nil)

const journalColumns = `id, journal_date, journal_number, reference, created_date_utc, source_id, source_type`

// Save upserts the journal row and replaces its lines in one transaction.
func (r *JournalPostgres) Save(ctx context.Context, j *model.Journal) error {
	if !j.LinesLoaded() {
		return fmt.Errorf("save journal %s: %w", j.JournalID, repository.ErrNotLoaded)
	}
	lines, err := j.JournalLines(ctx)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const qJournal = `
		INSERT INTO journals (` + journalColumns + `, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			journal_date     = EXCLUDED.journal_date,
			journal_number   = EXCLUDED.journal_number,
			reference        = EXCLUDED.reference,
			created_date_utc = EXCLUDED.created_date_utc,
			source_id        = EXCLUDED.source_id,
			source_type      = EXCLUDED.source_type,
			synced_at        = EXCLUDED.synced_at
	`
	if _, err := tx.ExecContext(ctx, qJournal,
		j.JournalID,
		j.JournalDate,
		j.JournalNumber,
		j.Reference,
		j.CreatedDateUTC,
		j.SourceID,
		j.SourceType,
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("upsert journal: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_lines WHERE journal_id = $1`, j.JournalID); err != nil {
		return fmt.Errorf("delete journal lines: %w", err)
	}

	const qLine = `
		INSERT INTO journal_lines (
			journal_id, position, journal_line_id, account_id, account_code, account_type,
			account_name, description, net_amount, gross_amount, tax_amount, tax_type,
			tax_name, tracking_categories
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	for i, l := range lines {
		tracking, err := json.Marshal(trackingOrEmpty(l.TrackingCategories))
		if err != nil {
			return fmt.Errorf("encode tracking categories: %w", err)
		}
		if _, err := tx.ExecContext(ctx, qLine,
			j.JournalID,
			i,
			l.JournalLineID,
			l.AccountID,
			l.AccountCode,
			l.AccountType,
			l.AccountName,
			l.Description,
			l.NetAmount,
			l.GrossAmount,
			l.TaxAmount,
			l.TaxType,
			l.TaxName,
			tracking,
		); err != nil {
			return fmt.Errorf("insert journal line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// FindByID loads a journal with its lines. It returns sql.ErrNoRows when the
// journal is not stored.
func (r *JournalPostgres) FindByID(ctx context.Context, id string) (*model.Journal, error) {
	q := `SELECT ` + journalColumns + ` FROM journals WHERE id = $1`
	params, err := scanJournal(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, err
	}

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	params["journal_lines"] = lines
	params[model.JournalLinesDownloadedKey] = true

	return model.NewJournal(params)
}

func (r *JournalPostgres) findLines(ctx context.Context, journalID string) ([]*model.JournalLine, error) {
	const q = `
		SELECT journal_line_id, account_id, account_code, account_type, account_name,
		       description, net_amount, gross_amount, tax_amount, tax_type, tax_name,
		       tracking_categories
		FROM journal_lines
		WHERE journal_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, q, journalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]*model.JournalLine, 0)
	for rows.Next() {
		var (
			id, accountID, code, accountType, name, desc, taxType, taxName string
			net, gross, tax                                                decimal.Decimal
			tracking                                                       []byte
		)
		if err := rows.Scan(&id, &accountID, &code, &accountType, &name, &desc,
			&net, &gross, &tax, &taxType, &taxName, &tracking); err != nil {
			return nil, err
		}

		var categories []model.TrackingCategory
		if len(tracking) > 0 {
			if err := json.Unmarshal(tracking, &categories); err != nil {
				return nil, fmt.Errorf("decode tracking categories of line %s: %w", id, err)
			}
		}

		line, err := model.NewJournalLine(model.Params{
			"journal_line_id":     id,
			"account_id":          accountID,
			"account_code":        code,
			"account_type":        accountType,
			"account_name":        name,
			"description":         desc,
			"net_amount":          net,
			"gross_amount":        gross,
			"tax_amount":          tax,
			"tax_type":            taxType,
			"tax_name":            taxName,
			"tracking_categories": trackingOrEmpty(categories),
		})
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// List returns journal summaries with a total count. Summaries carry no
// lines and are not marked loaded.
func (r *JournalPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[*model.Journal], error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journals`).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + journalColumns + `
		FROM journals
		ORDER BY journal_date DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*model.Journal, 0)
	for rows.Next() {
		params, err := scanJournal(rows)
		if err != nil {
			return nil, err
		}
		j, err := model.NewJournal(params)
		if err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[*model.Journal]{Items: items, Total: total}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJournal(s scanner) (model.Params, error) {
	var (
		id, number, reference, sourceID, sourceType string
		journalDate, created                        time.Time
	)
	if err := s.Scan(&id, &journalDate, &number, &reference, &created, &sourceID, &sourceType); err != nil {
		return nil, err
	}
	return model.Params{
		"journal_id":       id,
		"journal_date":     journalDate.UTC(),
		"journal_number":   number,
		"reference":        reference,
		"created_date_utc": created.UTC(),
		"source_id":        sourceID,
		"source_type":      sourceType,
	}, nil
}

func trackingOrEmpty(c []model.TrackingCategory) []model.TrackingCategory {
	if c == nil {
		return []model.TrackingCategory{}
	}
	return c
}
