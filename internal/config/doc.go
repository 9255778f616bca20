/*
Package config builds the search configuration from the command line.

Usage:

	cfg, err := config.Build(os.Args)
	if err != nil {
	    fmt.Fprintf(os.Stderr, "Problem parsing arguments: %v\n", err)
	    os.Exit(1)
	}

Arguments:

	<program> <query> <file_name> <true|false>

The program name counts towards the argument total, so Build needs at
least four elements. The third user argument must be exactly "true"
(case-sensitive) or "false" (case-insensitive).

Errors:

	Not enough arguments    fewer than three user arguments
	Failed to parse bool    case flag is not "true" or "false"

Every Build error is an *ArgumentError; compare with errors.Is against
ErrNotEnoughArguments and ErrParseBool.

Settings:

Logging and read options come from the flags placed in front of the
three positional arguments, loaded through viper. No environment variables are read.

	--verbose, -v     Log verbosity (repeatable)
	--log-file        Write logs to a rotated file instead of stderr
	--buffer-size     Read buffer size in bytes (default 4096, min 64)
*/
package config
