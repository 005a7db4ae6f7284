package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoGateway is returned when a partially loaded record needs a
	// follow-up fetch but no gateway was bound to it.
	ErrNoGateway = errors.New("no gateway bound to record")

	ErrJournalNotFound  = errors.New("journal not found")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrParse            = errors.New("parse error")
)

// JournalNotFoundError reports that the gateway could not return the journal
// a lazy fetch asked for.
type JournalNotFoundError struct {
	JournalID string
}

func (e *JournalNotFoundError) Error() string {
	return fmt.Sprintf("journal with ID %s not found in Xero", e.JournalID)
}

func (e *JournalNotFoundError) Is(target error) bool {
	return target == ErrJournalNotFound
}

// UnknownAttributeError is returned when a construction mapping names an
// attribute the record does not have.
type UnknownAttributeError struct {
	Record    string
	Attribute string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("%s: unknown attribute %q", e.Record, e.Attribute)
}

func (e *UnknownAttributeError) Is(target error) bool {
	return target == ErrUnknownAttribute
}

// AttributeTypeError is returned when a construction mapping holds a value
// whose Go type does not match the attribute.
type AttributeTypeError struct {
	Record    string
	Attribute string
	Value     any
}

func (e *AttributeTypeError) Error() string {
	return fmt.Sprintf("%s: attribute %q cannot hold value of type %T", e.Record, e.Attribute, e.Value)
}

// ParseError wraps a failed conversion of element text into a typed field.
type ParseError struct {
	Tag  string
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse <%s> %q: %v", e.Tag, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
