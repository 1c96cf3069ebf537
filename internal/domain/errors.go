package domain

import "errors"

var (
	ErrHostProfileExists   = errors.New("host profile already exists")
	ErrHostProfileNotFound = errors.New("host profile not found")
	ErrInvalidHostProfile  = errors.New("invalid host profile")
	ErrNotConnected        = errors.New("not connected")
	ErrSessionClosed       = errors.New("session closed")
)
