// Package main provides the command-line interface for the dolly application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/op/dolly/pkg/config"
	"github.com/op/dolly/pkg/dolly"
	"github.com/op/dolly/pkg/fs"
	"github.com/op/dolly/pkg/logger"
	"github.com/op/dolly/pkg/vcs"
)

func main() {
	os.Exit(run(os.Args))
}

// run selects the backend, builds the root command, and maps the outcome to
// a process exit code.
func run(argv []string) int {
	kind, err := vcs.Select(filepath.Base(argv[0]), vcs.Environment{
		GitExecPath:  os.Getenv("GIT_EXEC_PATH"),
		HgExecutable: os.Getenv("HG"),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "dolly: %v\n", err)
		return 1
	}

	exitCode := 0
	rootCmd := &cobra.Command{
		Use:   fmt.Sprintf("%s dolly [options] [--] <repository>", kind),
		Short: "Clone repositories into a tree mirroring their remote location",
		// All options belong to the underlying clone command and are
		// forwarded verbatim, so cobra must not parse them.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(_ *cobra.Command, args []string) error {
			exitCode = runClone(kind, args)
			return nil
		},
	}
	rootCmd.SetArgs(argv[1:])

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dolly: %v\n", err)
		return 1
	}
	return exitCode
}

func runClone(kind vcs.Kind, args []string) int {
	manager := config.NewManager(config.NewManagerParams{})
	cfg, err := manager.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dolly: %v\n", err)
		return 1
	}

	log := logger.NewNoopLogger()
	if os.Getenv("DOLLY_VERBOSE") != "" {
		log = logger.NewDefaultLogger()
	}

	d := dolly.NewDolly(dolly.NewDollyParams{
		Config: cfg,
		FS:     fs.NewFS(),
		Cloner: vcs.NewCloner(kind),
		Logger: log,
	})

	code, err := d.Clone(args)
	if err != nil {
		if errors.Is(err, dolly.ErrMissingRepository) {
			printUsage(os.Stderr, kind)
			return code
		}
		fmt.Fprintf(os.Stderr, "dolly: %v\n", err)
	}
	return code
}

// printUsage writes the usage message naming the selected backend.
func printUsage(w io.Writer, kind vcs.Kind) {
	fmt.Fprintf(w, "usage: %s dolly [options] [--] <repository>\n", kind)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Clones <repository> into a directory under the root that mirrors the\n")
	fmt.Fprintf(w, "remote host and path. All options are forwarded to %s clone.\n", kind)
}
