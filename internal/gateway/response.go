package gateway

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"xerosync/internal/model"
)

// StatusOK is the envelope status Xero reports for a successful call.
const StatusOK = "OK"

// Response is the decoded <Response> envelope of a Xero API call.
type Response struct {
	ID           string
	Status       string
	ProviderName string
	DateTimeUTC  time.Time
	StatusCode   int

	Journals    []*model.Journal
	Attachments []*model.Attachment
}

var _ model.JournalResponse = (*Response)(nil)

// Success reports whether Xero accepted the call.
func (r *Response) Success() bool {
	return r != nil && r.Status == StatusOK
}

// Journal returns the first journal in the response, or nil.
func (r *Response) Journal() *model.Journal {
	if r == nil || len(r.Journals) == 0 {
		return nil
	}
	return r.Journals[0]
}

type responseDecoder func(r *Response, el *model.Element, gw model.Gateway) error

var responseDecoders = map[string]responseDecoder{
	"Id":           func(r *Response, el *model.Element, _ model.Gateway) error { r.ID = el.Text; return nil },
	"Status":       func(r *Response, el *model.Element, _ model.Gateway) error { r.Status = el.Text; return nil },
	"ProviderName": func(r *Response, el *model.Element, _ model.Gateway) error { r.ProviderName = el.Text; return nil },
	"DateTimeUTC": func(r *Response, el *model.Element, _ model.Gateway) error {
		t, err := model.ParseDateTimeUTC(el.Text)
		if err != nil {
			return &model.ParseError{Tag: el.Name, Text: el.Text, Err: err}
		}
		r.DateTimeUTC = t
		return nil
	},
	"Journals": func(r *Response, el *model.Element, gw model.Gateway) error {
		for _, child := range el.Children {
			j, err := model.JournalFromXML(child, gw, nil)
			if err != nil {
				return err
			}
			r.Journals = append(r.Journals, j)
		}
		return nil
	},
	"Attachments": func(r *Response, el *model.Element, gw model.Gateway) error {
		for _, child := range el.Children {
			a, err := model.AttachmentFromXML(child, gw, nil)
			if err != nil {
				return err
			}
			r.Attachments = append(r.Attachments, a)
		}
		return nil
	},
}

// ParseResponse decodes a <Response> document. Every decoded record is bound
// to gw.
func ParseResponse(body io.Reader, gw model.Gateway) (*Response, error) {
	root, err := model.ParseElement(body)
	if err != nil {
		return nil, err
	}
	if root.Name != "Response" {
		return nil, fmt.Errorf("unexpected root element <%s>", root.Name)
	}

	out := &Response{}
	for _, child := range root.Children {
		fn, ok := responseDecoders[child.Name]
		if !ok {
			continue
		}
		if err := fn(out, child, gw); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// APIError is a non-2xx reply from Xero.
type APIError struct {
	StatusCode  int
	ErrorNumber int
	Type        string
	Message     string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("xero api: %d %s: %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("xero api: %d: %s", e.StatusCode, e.Message)
}

// parseAPIError reads an <ApiException> body. Bodies that are not XML fall
// back to the HTTP status text.
func parseAPIError(statusCode int, body io.Reader) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Message: http.StatusText(statusCode)}

	root, err := model.ParseElement(io.LimitReader(body, 64<<10))
	if err != nil || root.Name != "ApiException" {
		return apiErr
	}
	if el := root.Child("ErrorNumber"); el != nil {
		apiErr.ErrorNumber, _ = strconv.Atoi(strings.TrimSpace(el.Text))
	}
	if el := root.Child("Type"); el != nil {
		apiErr.Type = el.Text
	}
	if el := root.Child("Message"); el != nil {
		apiErr.Message = el.Text
	}
	return apiErr
}
