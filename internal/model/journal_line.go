package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// TrackingCategory is a tracking option applied to a journal line.
type TrackingCategory struct {
	TrackingCategoryID string `json:"tracking_category_id"`
	TrackingOptionID   string `json:"tracking_option_id"`
	Name               string `json:"name"`
	Option             string `json:"option"`
}

// JournalLine is one debit or credit of a journal.
type JournalLine struct {
	JournalLineID      string             `json:"journal_line_id"`
	AccountID          string             `json:"account_id"`
	AccountCode        string             `json:"account_code"`
	AccountType        string             `json:"account_type"`
	AccountName        string             `json:"account_name"`
	Description        string             `json:"description"`
	NetAmount          decimal.Decimal    `json:"net_amount"`
	GrossAmount        decimal.Decimal    `json:"gross_amount"`
	TaxAmount          decimal.Decimal    `json:"tax_amount"`
	TaxType            string             `json:"tax_type"`
	TaxName            string             `json:"tax_name"`
	TrackingCategories []TrackingCategory `json:"tracking_categories"`

	ErrorList
}

var journalLineFields = fieldTable[*JournalLine]{
	"journal_line_id":     func(l *JournalLine) any { return &l.JournalLineID },
	"account_id":          func(l *JournalLine) any { return &l.AccountID },
	"account_code":        func(l *JournalLine) any { return &l.AccountCode },
	"account_type":        func(l *JournalLine) any { return &l.AccountType },
	"account_name":        func(l *JournalLine) any { return &l.AccountName },
	"description":         func(l *JournalLine) any { return &l.Description },
	"net_amount":          func(l *JournalLine) any { return &l.NetAmount },
	"gross_amount":        func(l *JournalLine) any { return &l.GrossAmount },
	"tax_amount":          func(l *JournalLine) any { return &l.TaxAmount },
	"tax_type":            func(l *JournalLine) any { return &l.TaxType },
	"tax_name":            func(l *JournalLine) any { return &l.TaxName },
	"tracking_categories": func(l *JournalLine) any { return &l.TrackingCategories },
}

func amount(dst func(*JournalLine) *decimal.Decimal) func(*JournalLine, *Element) error {
	return func(l *JournalLine, el *Element) error {
		d, err := parseDecimal(el)
		*dst(l) = d
		return err
	}
}

var journalLineDecoders = decodeTable[*JournalLine]{
	"JournalLineID": func(l *JournalLine, el *Element) error { l.JournalLineID = el.Text; return nil },
	"AccountID":     func(l *JournalLine, el *Element) error { l.AccountID = el.Text; return nil },
	"AccountCode":   func(l *JournalLine, el *Element) error { l.AccountCode = el.Text; return nil },
	"AccountType":   func(l *JournalLine, el *Element) error { l.AccountType = el.Text; return nil },
	"AccountName":   func(l *JournalLine, el *Element) error { l.AccountName = el.Text; return nil },
	"Description":   func(l *JournalLine, el *Element) error { l.Description = el.Text; return nil },
	"NetAmount":     amount(func(l *JournalLine) *decimal.Decimal { return &l.NetAmount }),
	"GrossAmount":   amount(func(l *JournalLine) *decimal.Decimal { return &l.GrossAmount }),
	"TaxAmount":     amount(func(l *JournalLine) *decimal.Decimal { return &l.TaxAmount }),
	"TaxType":       func(l *JournalLine, el *Element) error { l.TaxType = el.Text; return nil },
	"TaxName":       func(l *JournalLine, el *Element) error { l.TaxName = el.Text; return nil },
	"TrackingCategories": func(l *JournalLine, el *Element) error {
		for _, child := range el.Children {
			var tc TrackingCategory
			if err := trackingCategoryDecoders.decode(&tc, child); err != nil {
				return err
			}
			l.TrackingCategories = append(l.TrackingCategories, tc)
		}
		return nil
	},
}

var trackingCategoryDecoders = decodeTable[*TrackingCategory]{
	"TrackingCategoryID": func(tc *TrackingCategory, el *Element) error { tc.TrackingCategoryID = el.Text; return nil },
	"TrackingOptionID":   func(tc *TrackingCategory, el *Element) error { tc.TrackingOptionID = el.Text; return nil },
	"Name":               func(tc *TrackingCategory, el *Element) error { tc.Name = el.Text; return nil },
	"Option":             func(tc *TrackingCategory, el *Element) error { tc.Option = el.Text; return nil },
}

// NewJournalLine builds a journal line from a construction mapping.
func NewJournalLine(params Params) (*JournalLine, error) {
	l := &JournalLine{ErrorList: newErrorList()}
	if err := journalLineFields.apply("journal line", l, params); err != nil {
		return nil, err
	}
	return l, nil
}

// JournalLineFromXML decodes a <JournalLine> element.
func JournalLineFromXML(el *Element) (*JournalLine, error) {
	l := &JournalLine{ErrorList: newErrorList()}
	if err := journalLineDecoders.decode(l, el); err != nil {
		return nil, err
	}
	return l, nil
}

// Equal reports whether both lines carry the same data. Amounts are compared
// by value, so 10 and 10.00 are equal.
func (l *JournalLine) Equal(other *JournalLine) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.JournalLineID == other.JournalLineID &&
		l.AccountID == other.AccountID &&
		l.AccountCode == other.AccountCode &&
		l.AccountType == other.AccountType &&
		l.AccountName == other.AccountName &&
		l.Description == other.Description &&
		l.NetAmount.Equal(other.NetAmount) &&
		l.GrossAmount.Equal(other.GrossAmount) &&
		l.TaxAmount.Equal(other.TaxAmount) &&
		l.TaxType == other.TaxType &&
		l.TaxName == other.TaxName &&
		slices.Equal(l.TrackingCategories, other.TrackingCategories)
}
