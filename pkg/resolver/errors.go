package resolver

import "errors"

// Error definitions for resolver package.
var (
	ErrMissingColon      = errors.New("locator has neither a network location nor a host:path separator")
	ErrEmptyHost         = errors.New("locator host is empty")
	ErrHostContainsColon = errors.New("locator host contains a colon")
)
