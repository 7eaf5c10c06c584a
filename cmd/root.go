package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vconcat/cli/engine"
	"github.com/vconcat/cli/manifest"
	"github.com/vconcat/cli/options"
	"github.com/vconcat/cli/ui"
)

// Version information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "vconcat",
		Short:             "Concatenate video clips with transitions",
		Long:              "vconcat joins the clips listed in a manifest into one video, blending a transition between each pair.",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("vconcat {{.Version}} (" + commit + ", " + date + ")\n")

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: .vconcat.jsonc or .vconcat.yaml in . or ~)")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "show verbose output and stream engine logs")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newManifestCmd(a))
	rootCmd.AddCommand(newTransitionsCmd())

	return rootCmd
}

// Run executes the CLI with args and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ui.SetOutput(stdout, stderr)

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if wantsHelp(args) {
			return c.Help()
		}
		return options.Invalid("%v", err)
	})

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var done *reportedError
		if !errors.As(err, &done) {
			report(err)
		}
		return 1
	}
	return 0
}

func Execute(ctx context.Context) {
	if code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// wantsHelp reports whether -h or --help appears before a "--" terminator.
func wantsHelp(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-h", "--help":
			return true
		}
	}
	return false
}

// reportedError marks an error already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// fail prints err with a title and hints, then marks it reported.
func fail(title string, err error, hints ...string) error {
	ui.ErrorMsg(title, err, hints...)
	return &reportedError{err: err}
}

// report prints an error that no command handled itself.
func report(err error) {
	var (
		argErr *options.ArgumentError
		mErr   *manifest.Error
		engErr *engine.Error
	)
	switch {
	case errors.As(err, &argErr):
		ui.ErrorMsg("Invalid arguments", err, "Run 'vconcat run --help' for usage")
	case errors.As(err, &mErr):
		ui.ErrorMsg("Manifest error", err)
	case errors.As(err, &engErr):
		ui.ErrorMsg("Concatenation failed", err)
	default:
		ui.ErrorMsg("Error", err)
	}
}
