package vcs

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=cloner.go -destination=mocks/cloner.gen.go -package=mocks

// CloneParams contains parameters for Clone.
type CloneParams struct {
	// Args is the argument list passed to the clone subcommand, with the
	// destination path as the final element.
	Args []string
}

// Cloner delegates cloning to an external version control binary.
type Cloner interface {
	// Clone runs `<vcs> clone <args...>` with the parent's standard
	// streams attached and returns the subprocess exit code.
	Clone(params CloneParams) (int, error)
}

type execCloner struct {
	kind Kind
}

// NewCloner creates a Cloner backed by the binary for the given backend.
func NewCloner(kind Kind) Cloner {
	return &execCloner{kind: kind}
}

// Clone runs the clone subprocess and maps its outcome to a typed exit code.
// An interrupt during the subprocess surfaces as exit code 1 rather than
// killing dolly before the subprocess has been reaped.
func (c *execCloner) Clone(params CloneParams) (int, error) {
	args := append([]string{"clone"}, params.Args...)
	cmd := exec.Command(string(c.kind), args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Swallow SIGINT while the subprocess runs; it receives the signal
	// itself through the shared terminal.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if code := exitErr.ExitCode(); code >= 0 {
				return code, nil
			}
			// Killed by a signal, no exit code to propagate.
			return 1, nil
		}
		return 1, fmt.Errorf("failed to run %s clone: %w", c.kind, err)
	}

	return 0, nil
}
