package dolly

import "errors"

// Error definitions for dolly package.
var (
	ErrMissingRepository = errors.New("no repository specified")
	ErrTargetExists      = errors.New("target directory already exists and is not empty")
)
