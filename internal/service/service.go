// Package service holds the journal and attachment use cases on top of the
// Xero gateway, the snapshot store and the attachment archive.
package service

import "errors"

var (
	ErrIDRequired      = errors.New("id is required")
	ErrNotFound        = errors.New("not found")
	ErrInvalidEndpoint = errors.New("endpoint does not support attachments")
	ErrInvalidFileName = errors.New("invalid file name")
)
