// Package vcs provides version control backend selection and clone delegation.
package vcs

import (
	"fmt"
	"strings"
)

// Kind identifies a supported version control backend. Its value is the name
// of the binary to invoke.
type Kind string

// Supported backends.
const (
	Git       Kind = "git"
	Mercurial Kind = "hg"
)

// Supported returns the closed set of supported backends.
func Supported() []Kind {
	return []Kind{Git, Mercurial}
}

// Environment carries the ambient signals used for backend selection, so that
// selection stays a pure function of its inputs.
type Environment struct {
	// GitExecPath is the value of GIT_EXEC_PATH, which git sets when it
	// runs a subcommand such as `git dolly`.
	GitExecPath string

	// HgExecutable is the value of HG, which Mercurial sets for aliases
	// and hooks.
	HgExecutable string
}

// Select determines the backend for this invocation. Explicit environment
// context wins over the invocation name, so the same binary works whether it
// runs as `git dolly`, as a standalone `git-dolly` symlink, or as an hg alias.
// Without environment context, the candidate is the invocation name up to the
// first hyphen.
func Select(invocationName string, env Environment) (Kind, error) {
	if env.GitExecPath != "" {
		return Git, nil
	}
	if env.HgExecutable != "" {
		return Mercurial, nil
	}

	candidate, _, _ := strings.Cut(invocationName, "-")
	for _, kind := range Supported() {
		if candidate == string(kind) {
			return kind, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedVCS, candidate)
}
