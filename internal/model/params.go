package model

import (
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Params is a construction mapping of attribute name to value.
type Params map[string]any

// fieldTable maps every settable attribute of a record type to a function
// returning a pointer to the backing field.
type fieldTable[R any] map[string]func(R) any

// apply assigns every entry of params onto r. Keys listed in skip are
// reserved and handled by the caller. Keys are processed in sorted order so
// the first failure is deterministic.
func (t fieldTable[R]) apply(record string, r R, params Params, skip ...string) error {
	for _, key := range slices.Sorted(maps.Keys(params)) {
		if slices.Contains(skip, key) {
			continue
		}
		field, ok := t[key]
		if !ok {
			return &UnknownAttributeError{Record: record, Attribute: key}
		}
		if !assign(field(r), params[key]) {
			return &AttributeTypeError{Record: record, Attribute: key, Value: params[key]}
		}
	}
	return nil
}

// assign stores v into the field behind ptr when the types line up.
func assign(ptr, v any) bool {
	switch p := ptr.(type) {
	case *string:
		s, ok := v.(string)
		if ok {
			*p = s
		}
		return ok
	case *int64:
		switch n := v.(type) {
		case int64:
			*p = n
		case int:
			*p = int64(n)
		case int32:
			*p = int64(n)
		default:
			return false
		}
		return true
	case *time.Time:
		t, ok := v.(time.Time)
		if ok {
			*p = t
		}
		return ok
	case *decimal.Decimal:
		d, ok := v.(decimal.Decimal)
		if ok {
			*p = d
		}
		return ok
	case *Gateway:
		if v == nil {
			*p = nil
			return true
		}
		g, ok := v.(Gateway)
		if ok {
			*p = g
		}
		return ok
	case *[]*JournalLine:
		lines, ok := v.([]*JournalLine)
		if ok {
			*p = append([]*JournalLine(nil), lines...)
		}
		return ok
	case *[]TrackingCategory:
		tc, ok := v.([]TrackingCategory)
		if ok {
			*p = append([]TrackingCategory(nil), tc...)
		}
		return ok
	}
	return false
}
