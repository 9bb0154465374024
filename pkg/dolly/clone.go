package dolly

import (
	"fmt"
	"path/filepath"

	"github.com/op/dolly/pkg/resolver"
	"github.com/op/dolly/pkg/vcs"
)

// Clone orchestrates a single clone invocation.
func (d *realDolly) Clone(args []string) (int, error) {
	if len(args) == 0 {
		return 1, ErrMissingRepository
	}

	// 1. Resolve the locator, given as the last positional argument.
	locator := args[len(args)-1]
	target, err := resolver.Resolve(d.config.RootDir, locator)
	if err != nil {
		return 1, err
	}

	d.VerbosePrint("Resolved %s to %s", locator, target)

	// 2. Refuse a pre-existing non-empty destination before any side effect.
	nonEmpty, err := d.targetNonEmpty(target)
	if err != nil {
		return 1, err
	}
	if nonEmpty {
		return 1, fmt.Errorf("%w: %s", ErrTargetExists, target)
	}

	// 3. Create parent directories for the target path.
	if err := d.fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return 1, fmt.Errorf("failed to create parent directories: %w", err)
	}

	// 4. Delegate to the backend, forwarding the original arguments with
	// the resolved path appended as the destination.
	cloneArgs := make([]string, 0, len(args)+1)
	cloneArgs = append(cloneArgs, args...)
	cloneArgs = append(cloneArgs, target)

	return d.cloner.Clone(vcs.CloneParams{Args: cloneArgs})
}

// targetNonEmpty reports whether the target already holds content that a
// clone must not touch. An existing non-directory counts as well.
func (d *realDolly) targetNonEmpty(target string) (bool, error) {
	exists, err := d.fs.Exists(target)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	isDir, err := d.fs.IsDir(target)
	if err != nil {
		return false, err
	}
	if !isDir {
		return true, nil
	}

	entries, err := d.fs.ReadDir(target)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}
