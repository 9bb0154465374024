package vcs

import "errors"

// Error definitions for vcs package.
var (
	ErrUnsupportedVCS = errors.New("unsupported vcs")
)
