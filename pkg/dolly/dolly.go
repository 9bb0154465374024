// Package dolly clones repositories into a directory tree that mirrors their
// remote host and path.
package dolly

import (
	"fmt"

	"github.com/op/dolly/pkg/config"
	"github.com/op/dolly/pkg/fs"
	"github.com/op/dolly/pkg/logger"
	"github.com/op/dolly/pkg/vcs"
)

// Dolly interface provides the clone orchestration entry point.
type Dolly interface {
	// Clone resolves the destination for the locator given as the last
	// argument, prepares its parent directory, and delegates to the
	// backend clone command. The returned int is the process exit code.
	Clone(args []string) (int, error)
}

// NewDollyParams contains parameters for creating a new Dolly instance.
type NewDollyParams struct {
	Config config.Config
	FS     fs.FS
	Cloner vcs.Cloner
	Logger logger.Logger
}

type realDolly struct {
	config config.Config
	fs     fs.FS
	cloner vcs.Cloner
	logger logger.Logger
}

// NewDolly creates a new Dolly instance.
func NewDolly(params NewDollyParams) Dolly {
	d := &realDolly{
		config: params.Config,
		fs:     params.FS,
		cloner: params.Cloner,
		logger: params.Logger,
	}
	if d.fs == nil {
		d.fs = fs.NewFS()
	}
	if d.logger == nil {
		d.logger = logger.NewNoopLogger()
	}
	return d
}

// VerbosePrint logs a formatted message using the current logger.
func (d *realDolly) VerbosePrint(msg string, args ...interface{}) {
	d.logger.Logf(fmt.Sprintf(msg, args...))
}
