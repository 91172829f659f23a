package service

import "errors"

// Validation sentinels shared by the admin services.
var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("record not found")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidDateRange   = errors.New("end date must be after start date")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrNoMedia            = errors.New("submission has no media")
	ErrReaderNil          = errors.New("reader is nil")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
