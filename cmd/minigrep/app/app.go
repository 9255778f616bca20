/*
Package app ties the text file reader and the matcher together for one
minigrep run.

Usage:

	application := app.New(app.Options{
	    Stdout: os.Stdout,
	    Logger: log,
	})
	if err := application.Run(cfg); err != nil {
	    fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
	    os.Exit(1)
	}
*/
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sonemaro/minigrep/internal/config"
	"github.com/sonemaro/minigrep/pkg/logger"
	"github.com/sonemaro/minigrep/pkg/matcher"
	"github.com/sonemaro/minigrep/pkg/textfile"
	"github.com/spf13/afero"
)

// Options defines how an App reaches the outside world
type Options struct {
	// Fs is the filesystem to read from (defaults to the OS filesystem)
	Fs afero.Fs

	// Stdout receives the matching lines (defaults to os.Stdout)
	Stdout io.Writer

	// Logger receives diagnostics (defaults to a no-op logger)
	Logger logger.Logger

	// BufferSize is the read chunk size in bytes
	BufferSize int
}

// WriteError is returned when matching lines cannot be written out
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write output: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// App represents one search run
type App struct {
	stdout io.Writer
	log    logger.Logger
	reader *textfile.Reader
}

// New creates a new application instance
func New(opts Options) *App {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	app := &App{
		stdout: opts.Stdout,
		log:    opts.Logger,
		reader: textfile.NewReader(opts.Fs, textfile.Config{
			BufferSize: opts.BufferSize,
		}, opts.Logger),
	}

	app.log.WithFields(logger.Fields{
		"bufferSize": opts.BufferSize,
	}).Debug("Application initialized")

	return app
}

// Run searches cfg.FileName() for cfg.Query() and writes every matching
// line to stdout in file order. Lines written before a failure stay
// written.
func (a *App) Run(cfg config.Config) error {
	start := time.Now()

	a.log.WithFields(logger.Fields{
		"query":         cfg.Query(),
		"file":          cfg.FileName(),
		"caseSensitive": cfg.CaseSensitive(),
	}).Info("Starting search")

	contents, err := a.reader.ReadString(cfg.FileName())
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"file":  cfg.FileName(),
		}).Debug("Read failed")
		return err
	}

	search := matcher.For(cfg.CaseSensitive())
	matches := search(cfg.Query(), contents)

	if err := a.writeLines(matches); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
		}).Debug("Write failed")
		return err
	}

	a.log.WithFields(logger.Fields{
		"matches":  len(matches),
		"bytes":    a.reader.Stats().BytesRead,
		"duration": time.Since(start),
	}).Info("Search completed")

	return nil
}

// writeLines writes each line followed by a newline
func (a *App) writeLines(lines []string) error {
	w := bufio.NewWriter(a.stdout)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return &WriteError{Err: err}
		}
		if err := w.WriteByte('\n'); err != nil {
			return &WriteError{Err: err}
		}
	}
	if err := w.Flush(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
