package config

import "errors"

// Error definitions for config package.
var (
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrRootDirEmpty    = errors.New("root_dir cannot be empty")
)
