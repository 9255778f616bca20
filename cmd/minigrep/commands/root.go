/*
Package commands implements the minigrep command line: flag handling,
the status line, diagnostics and exit codes.
*/
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sonemaro/minigrep/cmd/minigrep/app"
	"github.com/sonemaro/minigrep/internal/config"
	"github.com/sonemaro/minigrep/internal/version"
	"github.com/sonemaro/minigrep/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// positionalArgs is the number of trailing arguments handed to config.Build
const positionalArgs = 3

// Options holds the external handles a command run works against
type Options struct {
	// ProgramName is counted as the first argument handed to config.Build
	ProgramName string

	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// runError marks a failure that happened after the arguments were accepted
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }

func (e *runError) Unwrap() error { return e.err }

// Execute runs minigrep with args (program name first) and returns the
// process exit status.
func Execute(args []string, opts Options) int {
	if len(args) > 0 && opts.ProgramName == "" {
		opts.ProgramName = args[0]
	}
	opts = withDefaults(opts)

	cmd := NewRootCommand(opts)
	if len(args) > 0 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var re *runError
	if errors.As(err, &re) {
		fmt.Fprintf(opts.Stderr, "Application error: %v\n", re.err)
	} else {
		fmt.Fprintf(opts.Stderr, "Problem parsing arguments: %v\n", err)
	}
	return 1
}

func withDefaults(opts Options) Options {
	if opts.ProgramName == "" {
		opts.ProgramName = "minigrep"
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return opts
}

// NewRootCommand creates the root command for the application
func NewRootCommand(opts Options) *cobra.Command {
	opts = withDefaults(opts)

	cmd := &cobra.Command{
		Use:   filepath.Base(opts.ProgramName) + " [flags] <query> <file_name> <true|false>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep prints every line of a text file that contains a literal query.

The third argument selects case-sensitive (true) or case-insensitive
(false) matching. The last three arguments are always taken as the
query, the file name and the case flag, so a query may start with a
dash. Flags are only read from the arguments before them.`,
		Example: `  minigrep duct poem.txt true
  minigrep -vv rUsT poem.txt false
  minigrep -x notes.txt true`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.CountP("verbose", "v", "verbose logging (can be used multiple times)")
	flags.String("log-file", "", "write logs to this file (rotated) instead of stderr")
	flags.Int("buffer-size", config.DefaultBufferSize, "buffer size for file reading in bytes")

	return cmd
}

// splitArgs separates the ambient flags from the positional arguments.
// The last three arguments are never parsed as flags; only the ones in
// front of them are. Arguments left over in front after flag parsing
// stop are kept as positional.
func splitArgs(flags *pflag.FlagSet, args []string) ([]string, error) {
	if len(args) <= positionalArgs {
		return args, nil
	}

	head := args[:len(args)-positionalArgs]
	tail := args[len(args)-positionalArgs:]

	if err := flags.Parse(head); err != nil {
		return nil, err
	}

	positional := append([]string{}, flags.Args()...)
	return append(positional, tail...), nil
}

func run(cmd *cobra.Command, args []string, opts Options) error {
	positional, err := splitArgs(cmd.Flags(), args)
	if err != nil {
		return err
	}

	if help, _ := cmd.Flags().GetBool("help"); help {
		return cmd.Help()
	}

	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.NewLogger(logger.Config{
		Verbosity: settings.Verbose,
		Output:    opts.Stderr,
		File:      settings.LogFile,
	})
	defer log.Sync()

	info := version.GetBuildInfo()
	log.WithFields(logger.Fields{
		"version":   info.Version,
		"commit":    info.GitCommit,
		"goVersion": info.GoVersion,
		"platform":  info.Platform,
	}).Debug("minigrep starting")

	cfg, err := config.Build(append([]string{opts.ProgramName}, positional...))
	if err != nil {
		log.WithFields(logger.Fields{
			"error": err,
			"args":  positional,
		}).Debug("Argument parsing failed")
		return err
	}

	fmt.Fprintf(opts.Stderr, "Searching for %s in file %s\n", cfg.Query(), cfg.FileName())

	application := app.New(app.Options{
		Fs:         opts.Fs,
		Stdout:     opts.Stdout,
		Logger:     log,
		BufferSize: settings.BufferSize,
	})

	if err := application.Run(cfg); err != nil {
		return &runError{err: err}
	}
	return nil
}
