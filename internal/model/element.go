package model

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Element is a parsed XML element: its local name, its direct character
// data and its child elements in document order.
type Element struct {
	Name     string
	Text     string
	Children []*Element
}

// ParseElement reads the first root element from r.
func ParseElement(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("xml: no root element")
		}
		if err != nil {
			return nil, fmt.Errorf("xml: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			el := &Element{}
			if err := el.UnmarshalXML(d, start); err != nil {
				return nil, fmt.Errorf("xml: %w", err)
			}
			return el, nil
		}
	}
}

// UnmarshalXML implements xml.Unmarshaler.
func (e *Element) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	e.Name = start.Name.Local
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Element{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			e.Children = append(e.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			e.Text = text.String()
			return nil
		}
	}
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// decodeTable maps a child tag name to the function that decodes it into R.
type decodeTable[R any] map[string]func(R, *Element) error

// decode dispatches each child of el through the table. Tags without an
// entry are skipped.
func (t decodeTable[R]) decode(r R, el *Element) error {
	for _, child := range el.Children {
		fn, ok := t[child.Name]
		if !ok {
			continue
		}
		if err := fn(r, child); err != nil {
			return err
		}
	}
	return nil
}

// tags lists the tag names the table recognises.
func (t decodeTable[R]) tags() []string {
	tags := make([]string, 0, len(t))
	for tag := range t {
		tags = append(tags, tag)
	}
	return tags
}
