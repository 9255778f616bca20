/*
Package logger wraps uber-go/zap behind a small interface with verbosity
levels and structured fields.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 1,
	})

	log.Info("Search started")
	log.Debug("Reading file")   // Only shown with verbosity >= 2
	log.Trace("Chunk consumed") // Only shown with verbosity >= 3

Verbosity Levels:

	0: Warn, Error (default)
	1: Info + Level 0
	2: Debug + Level 1
	3: Trace + Level 2

The default level keeps stderr free of log lines during a normal search:
the only stderr output is the status line and, on failure, one
diagnostic.

File Output:

When Config.File is set, entries are written as JSON lines to that file
through lumberjack, which rotates it once it grows past MaxSizeMB:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 2,
	    File:      "/tmp/minigrep.log",
	})
	defer log.Sync()

Structured Logging:

	log.WithFields(logger.Fields{
	    "query":   "duct",
	    "matches": 1,
	}).Info("Search completed")

Output Example (JSON):

	{
	    "level": "info",
	    "ts": "2024-01-20T15:04:05.000Z",
	    "message": "Search completed",
	    "query": "duct",
	    "matches": 1
	}
*/
package logger
