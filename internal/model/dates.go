package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// ParseDate reads the calendar date from Xero's date text. Any time part
// after the date is dropped. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) && s[len(dateLayout)] == 'T' {
		s = s[:len(dateLayout)]
	}
	return time.Parse(dateLayout, s)
}

// ParseDateTimeUTC reads a Xero UTC timestamp. Text without a zone is taken
// to be UTC.
func ParseDateTimeUTC(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// FormatDate renders the calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseInt(el *Element) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(el.Text), 10, 64)
	if err != nil {
		return 0, &ParseError{Tag: el.Name, Text: el.Text, Err: err}
	}
	return n, nil
}

func parseDate(el *Element) (time.Time, error) {
	t, err := ParseDate(el.Text)
	if err != nil {
		return time.Time{}, &ParseError{Tag: el.Name, Text: el.Text, Err: err}
	}
	return t, nil
}

func parseDateTimeUTC(el *Element) (time.Time, error) {
	t, err := ParseDateTimeUTC(el.Text)
	if err != nil {
		return time.Time{}, &ParseError{Tag: el.Name, Text: el.Text, Err: err}
	}
	return t, nil
}

func parseDecimal(el *Element) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(el.Text))
	if err != nil {
		return decimal.Zero, &ParseError{Tag: el.Name, Text: el.Text, Err: err}
	}
	return d, nil
}
