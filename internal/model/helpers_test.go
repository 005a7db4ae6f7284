package model

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) GetJournal(ctx context.Context, journalID string) (JournalResponse, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(JournalResponse), args.Error(1)
}

type journalResponse struct {
	ok      bool
	journal *Journal
}

func (r journalResponse) Success() bool     { return r.ok }
func (r journalResponse) Journal() *Journal { return r.journal }

func mustParse(t *testing.T, doc string) *Element {
	t.Helper()
	el, err := ParseElement(strings.NewReader(doc))
	require.NoError(t, err)
	return el
}
