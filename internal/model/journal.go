package model

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// JournalLinesDownloadedKey is the reserved construction key that marks the
// journal lines as already present. Only the bool true sets the flag.
const JournalLinesDownloadedKey = "journal_lines_downloaded"

// Journal is a Xero journal. Listing endpoints return journals without their
// lines; such a journal completes itself through its gateway the first time
// the lines are read.
//
// Journals are only ever read from Xero, never created client side.
type Journal struct {
	JournalID      string    `json:"journal_id"`
	JournalDate    time.Time `json:"journal_date"`
	JournalNumber  string    `json:"journal_number"`
	Reference      string    `json:"reference"`
	CreatedDateUTC time.Time `json:"created_date_utc"`
	SourceID       string    `json:"source_id"`
	SourceType     string    `json:"source_type"`

	// mu guards gateway, lines and linesLoaded across the check-and-fetch
	// sequence.
	mu          sync.Mutex
	gateway     Gateway
	lines       []*JournalLine
	linesLoaded bool

	ErrorList
}

var journalFields = fieldTable[*Journal]{
	"gateway":          func(j *Journal) any { return &j.gateway },
	"journal_id":       func(j *Journal) any { return &j.JournalID },
	"journal_date":     func(j *Journal) any { return &j.JournalDate },
	"journal_number":   func(j *Journal) any { return &j.JournalNumber },
	"journal_lines":    func(j *Journal) any { return &j.lines },
	"reference":        func(j *Journal) any { return &j.Reference },
	"created_date_utc": func(j *Journal) any { return &j.CreatedDateUTC },
	"source_id":        func(j *Journal) any { return &j.SourceID },
	"source_type":      func(j *Journal) any { return &j.SourceType },
}

var journalDecoders = decodeTable[*Journal]{
	"JournalID":     func(j *Journal, el *Element) error { j.JournalID = el.Text; return nil },
	"JournalNumber": func(j *Journal, el *Element) error { j.JournalNumber = el.Text; return nil },
	"SourceID":      func(j *Journal, el *Element) error { j.SourceID = el.Text; return nil },
	"SourceType":    func(j *Journal, el *Element) error { j.SourceType = el.Text; return nil },
	"Reference":     func(j *Journal, el *Element) error { j.Reference = el.Text; return nil },
	"JournalDate": func(j *Journal, el *Element) error {
		t, err := parseDate(el)
		j.JournalDate = t
		return err
	},
	"CreatedDateUTC": func(j *Journal, el *Element) error {
		t, err := parseDateTimeUTC(el)
		j.CreatedDateUTC = t
		return err
	},
	"JournalLines": func(j *Journal, el *Element) error {
		j.linesLoaded = true
		for _, child := range el.Children {
			line, err := JournalLineFromXML(child)
			if err != nil {
				return err
			}
			j.lines = append(j.lines, line)
		}
		return nil
	},
}

// NewJournal builds a journal from a construction mapping. The mapping may
// carry JournalLinesDownloadedKey; it is not treated as an attribute.
func NewJournal(params Params) (*Journal, error) {
	j := &Journal{ErrorList: newErrorList()}
	if v, ok := params[JournalLinesDownloadedKey]; ok {
		loaded, _ := v.(bool)
		j.linesLoaded = loaded
	}
	if err := journalFields.apply("journal", j, params, JournalLinesDownloadedKey); err != nil {
		return nil, err
	}
	if j.lines == nil {
		j.lines = []*JournalLine{}
	}
	return j, nil
}

// JournalFromXML decodes a <Journal> element. The journal is fully loaded
// only when the element carries a <JournalLines> container.
func JournalFromXML(el *Element, gw Gateway, options Params) (*Journal, error) {
	j, err := NewJournal(options)
	if err != nil {
		return nil, err
	}
	j.gateway = gw
	if err := journalDecoders.decode(j, el); err != nil {
		return nil, err
	}
	return j, nil
}

// Gateway returns the gateway bound to the journal, if any.
func (j *Journal) Gateway() Gateway {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.gateway
}

// SetGateway binds the gateway used to complete the journal lines. It waits
// for a fetch already in flight on j.
func (j *Journal) SetGateway(gw Gateway) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.gateway = gw
}

// LinesLoaded reports whether the journal lines are authoritative.
func (j *Journal) LinesLoaded() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.linesLoaded
}

// EnsureLoaded fetches the journal lines through the gateway unless they are
// already loaded. On failure the journal is left as it was.
func (j *Journal) EnsureLoaded(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.linesLoaded {
		return nil
	}
	if j.gateway == nil {
		return fmt.Errorf("journal %s: %w", j.JournalID, ErrNoGateway)
	}

	resp, err := j.gateway.GetJournal(ctx, j.JournalID)
	if err != nil {
		return fmt.Errorf("get journal %s: %w", j.JournalID, err)
	}
	if resp == nil || !resp.Success() || resp.Journal() == nil {
		return &JournalNotFoundError{JournalID: j.JournalID}
	}

	fetched := resp.Journal()
	var lines []*JournalLine
	if fetched == j {
		// A gateway may hand back this very record.
		lines = j.lines
	} else {
		lines = fetched.storedLines()
	}

	j.lines = cloneLines(lines)
	j.linesLoaded = true
	return nil
}

// JournalLines returns the journal lines, fetching them first if needed.
func (j *Journal) JournalLines(ctx context.Context) ([]*JournalLine, error) {
	if err := j.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	return j.storedLines(), nil
}

func (j *Journal) storedLines() []*JournalLine {
	j.mu.Lock()
	defer j.mu.Unlock()
	return cloneLines(j.lines)
}

func cloneLines(src []*JournalLine) []*JournalLine {
	out := make([]*JournalLine, len(src))
	copy(out, src)
	return out
}

// lineEqual compares two journal lines during Journal.Equal.
var lineEqual = func(a, b *JournalLine) bool { return a.Equal(b) }

// Equal compares journal id, journal number, lines, reference and the
// calendar date, stopping at the first difference. It compares the lines
// held by each journal and never fetches.
func (j *Journal) Equal(other *Journal) bool {
	if j == nil || other == nil {
		return j == other
	}
	if j == other {
		return true
	}
	if j.JournalID != other.JournalID {
		return false
	}
	if j.JournalNumber != other.JournalNumber {
		return false
	}
	a, b := j.storedLines(), other.storedLines()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !lineEqual(a[i], b[i]) {
			return false
		}
	}
	if j.Reference != other.Reference {
		return false
	}
	return FormatDate(j.JournalDate) == FormatDate(other.JournalDate)
}
