package client

import "errors"

var (
	// ErrUsage is returned when a command is missing or malformed.
	ErrUsage = errors.New("usage error")
	// ErrCommandFailed is returned when a command ran and its result is
	// not OK.
	ErrCommandFailed = errors.New("command failed")
)
