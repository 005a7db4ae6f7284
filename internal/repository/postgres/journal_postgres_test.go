package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xerosync/internal/model"
	"xerosync/internal/repository"
)

var (
	journalDate = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	createdAt   = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func loadedJournal(t *testing.T) *model.Journal {
	t.Helper()
	line, err := model.NewJournalLine(model.Params{
		"journal_line_id": "line-1",
		"account_code":    "200",
		"net_amount":      decimal.RequireFromString("100.00"),
		"tracking_categories": []model.TrackingCategory{
			{Name: "Region", Option: "North"},
		},
	})
	require.NoError(t, err)

	j, err := model.NewJournal(model.Params{
		"journal_id":                    "j-1",
		"journal_date":                  journalDate,
		"journal_number":                "42",
		"reference":                     "INV-0042",
		"created_date_utc":              createdAt,
		"journal_lines":                 []*model.JournalLine{line},
		model.JournalLinesDownloadedKey: true,
	})
	require.NoError(t, err)
	return j
}

func journalRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "journal_date", "journal_number", "reference", "created_date_utc", "source_id", "source_type"})
}

func TestJournalPostgres_Save(t *testing.T) {
	db, mock := newMock(t)
	repo := NewJournalPostgres(db)
	j := loadedJournal(t)

	tracking, err := json.Marshal([]model.TrackingCategory{{Name: "Region", Option: "North"}})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO journals").
		WithArgs("j-1", journalDate, "42", "INV-0042", createdAt, "", "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM journal_lines WHERE journal_id = $1")).
		WithArgs("j-1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO journal_lines").
		WithArgs("j-1", 0, "line-1", "", "200", "", "", "",
			decimal.RequireFromString("100"), decimal.Zero, decimal.Zero, "", "", tracking).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Save(context.Background(), j)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalPostgres_Save_RollsBackOnLineError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewJournalPostgres(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO journals").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM journal_lines").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO journal_lines").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), loadedJournal(t))
	assert.ErrorContains(t, err, "insert journal line 0: disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalPostgres_Save_NotLoaded(t *testing.T) {
	db, mock := newMock(t)
	repo := NewJournalPostgres(db)

	j, err := model.NewJournal(model.Params{"journal_id": "j-1"})
	require.NoError(t, err)

	err = repo.Save(context.Background(), j)
	assert.ErrorIs(t, err, repository.ErrNotLoaded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalPostgres_FindByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewJournalPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM journals WHERE id = $1")).
			WithArgs("j-1").
			WillReturnRows(journalRows().AddRow("j-1", journalDate, "42", "INV-0042", createdAt, "src-1", "ACCREC"))
		mock.ExpectQuery("FROM journal_lines").
			WithArgs("j-1").
			WillReturnRows(sqlmock.NewRows([]string{
				"journal_line_id", "account_id", "account_code", "account_type", "account_name",
				"description", "net_amount", "gross_amount", "tax_amount", "tax_type", "tax_name",
				"tracking_categories",
			}).
				AddRow("line-1", "acc-1", "200", "REVENUE", "Sales", "Widgets", "100.00", "115.00", "15.00", "OUTPUT", "GST",
					[]byte(`[{"name":"Region","option":"North"}]`)).
				AddRow("line-2", "acc-2", "610", "CURRENT", "Debtors", "", "-100.00", "-115.00", "-15.00", "", "", []byte(`[]`)))

		j, err := repo.FindByID(ctx, "j-1")
		require.NoError(t, err)

		assert.True(t, j.LinesLoaded())
		assert.Equal(t, "42", j.JournalNumber)
		assert.Equal(t, "ACCREC", j.SourceType)
		assert.Nil(t, j.Gateway())

		lines, err := j.JournalLines(ctx)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.True(t, lines[0].GrossAmount.Equal(decimal.RequireFromString("115")))
		assert.Equal(t, []model.TrackingCategory{{Name: "Region", Option: "North"}}, lines[0].TrackingCategories)
		assert.Empty(t, lines[1].TrackingCategories)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("FROM journals WHERE id").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		j, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, j)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad tracking json", func(t *testing.T) {
		mock.ExpectQuery("FROM journals WHERE id").
			WithArgs("j-2").
			WillReturnRows(journalRows().AddRow("j-2", journalDate, "43", "", createdAt, "", ""))
		mock.ExpectQuery("FROM journal_lines").
			WithArgs("j-2").
			WillReturnRows(sqlmock.NewRows([]string{
				"journal_line_id", "account_id", "account_code", "account_type", "account_name",
				"description", "net_amount", "gross_amount", "tax_amount", "tax_type", "tax_name",
				"tracking_categories",
			}).AddRow("line-1", "", "", "", "", "", "0", "0", "0", "", "", []byte(`{`)))

		_, err := repo.FindByID(ctx, "j-2")
		assert.ErrorContains(t, err, "decode tracking categories")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJournalPostgres_List(t *testing.T) {
	db, mock := newMock(t)
	repo := NewJournalPostgres(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM journals")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("FROM journals ORDER BY journal_date DESC, id DESC LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(journalRows().
			AddRow("j-2", journalDate, "43", "", createdAt, "", "").
			AddRow("j-1", journalDate, "42", "INV-0042", createdAt, "", ""))

	res, err := repo.List(context.Background(), repository.PageQuery{Limit: 10, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "j-2", res.Items[0].JournalID)
	assert.False(t, res.Items[0].LinesLoaded())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournalPostgres_List_CountError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewJournalPostgres(db)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("connection reset"))

	_, err := repo.List(context.Background(), repository.PageQuery{Limit: 10})
	assert.EqualError(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}
