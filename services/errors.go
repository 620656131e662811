package services

import "errors"

// Failure taxonomy surfaced to controllers, which map these onto HTTP
// status codes. Anything else is a storage-level 500.
var (
	ErrDuplicateUser      = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("not the owner of this record")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)
