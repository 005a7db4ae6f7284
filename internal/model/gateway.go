package model

import (
	"context"
	"regexp"
)

// GUIDPattern documents the format Xero uses for identifiers. Records do not
// enforce it.
var GUIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsGUID reports whether s matches GUIDPattern.
func IsGUID(s string) bool {
	return GUIDPattern.MatchString(s)
}

// Gateway is the collaborator that talks to the Xero API. Records hold it as
// a non-owning handle and only call it to complete partially loaded data.
type Gateway interface {
	GetJournal(ctx context.Context, journalID string) (JournalResponse, error)
}

// JournalResponse is the decoded reply to a single-journal lookup.
type JournalResponse interface {
	Success() bool
	// Journal returns the journal carried by the response, or nil.
	Journal() *Journal
}
