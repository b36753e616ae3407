// Package apperr defines sentinel errors shared across the WhatsOn layers.
package apperr

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
