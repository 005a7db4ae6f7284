package model

// Attachment is a file attached to a Xero document. It is fully populated by
// a single decode pass.
type Attachment struct {
	AttachmentID  string `json:"attachment_id"`
	FileName      string `json:"file_name"`
	URL           string `json:"url"`
	MimeType      string `json:"mime_type"`
	ContentLength int64  `json:"content_length"`

	gateway Gateway
	ErrorList
}

var attachmentFields = fieldTable[*Attachment]{
	"gateway":        func(a *Attachment) any { return &a.gateway },
	"attachment_id":  func(a *Attachment) any { return &a.AttachmentID },
	"file_name":      func(a *Attachment) any { return &a.FileName },
	"url":            func(a *Attachment) any { return &a.URL },
	"mime_type":      func(a *Attachment) any { return &a.MimeType },
	"content_length": func(a *Attachment) any { return &a.ContentLength },
}

var attachmentDecoders = decodeTable[*Attachment]{
	"AttachmentId": func(a *Attachment, el *Element) error { a.AttachmentID = el.Text; return nil },
	"FileName":     func(a *Attachment, el *Element) error { a.FileName = el.Text; return nil },
	"Url":          func(a *Attachment, el *Element) error { a.URL = el.Text; return nil },
	"MimeType":     func(a *Attachment, el *Element) error { a.MimeType = el.Text; return nil },
	"ContentLength": func(a *Attachment, el *Element) error {
		n, err := parseInt(el)
		a.ContentLength = n
		return err
	},
}

// NewAttachment builds an attachment from a construction mapping.
func NewAttachment(params Params) (*Attachment, error) {
	a := &Attachment{ErrorList: newErrorList()}
	if err := attachmentFields.apply("attachment", a, params); err != nil {
		return nil, err
	}
	return a, nil
}

// AttachmentFromXML decodes an <Attachment> element. The gateway argument
// takes precedence over any gateway in options.
func AttachmentFromXML(el *Element, gw Gateway, options Params) (*Attachment, error) {
	a, err := NewAttachment(options)
	if err != nil {
		return nil, err
	}
	a.gateway = gw
	if err := attachmentDecoders.decode(a, el); err != nil {
		return nil, err
	}
	return a, nil
}

// Gateway returns the gateway that produced the attachment, if any.
func (a *Attachment) Gateway() Gateway {
	return a.gateway
}

// Equal reports whether both attachments carry the same data.
func (a *Attachment) Equal(other *Attachment) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.AttachmentID == other.AttachmentID &&
		a.FileName == other.FileName &&
		a.URL == other.URL &&
		a.MimeType == other.MimeType &&
		a.ContentLength == other.ContentLength
}
