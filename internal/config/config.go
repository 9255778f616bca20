package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the validated search request. It is built once by Build and
// never changes afterwards.
type Config struct {
	query         string
	fileName      string
	caseSensitive bool
}

// Query is the literal substring to search for.
func (c Config) Query() string { return c.query }

// FileName is the path of the file to search.
func (c Config) FileName() string { return c.fileName }

// CaseSensitive reports whether matching compares without case folding.
func (c Config) CaseSensitive() bool { return c.caseSensitive }

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf("Config{Query: %q, FileName: %q, CaseSensitive: %v}",
		c.query, c.fileName, c.caseSensitive)
}

// Build turns the full argument sequence, program name first, into a
// Config. It expects exactly "<query> <file_name> <true|false>" after
// the program name; anything past the third argument is ignored.
func Build(args []string) (Config, error) {
	if len(args) < requiredArgs {
		return Config{}, ErrNotEnoughArguments
	}

	caseSensitive, err := parseBool(args[3])
	if err != nil {
		return Config{}, err
	}

	return Config{
		query:         args[1],
		fileName:      args[2],
		caseSensitive: caseSensitive,
	}, nil
}

// parseBool accepts only the literals "true" and "false".
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, ErrParseBool
	}
}

// Settings holds the ambient options that do not change what is searched.
type Settings struct {
	// Verbose sets the log verbosity level
	Verbose int

	// LogFile is the path to write logs to (empty for stderr)
	LogFile string

	// BufferSize is the chunk size used when reading the file
	BufferSize int
}

// LoadSettings reads settings from the given flag set through viper.
// Flags that are not defined fall back to their defaults.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	v.SetDefault("verbose", 0)
	v.SetDefault("log-file", "")
	v.SetDefault("buffer-size", DefaultBufferSize)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	s := Settings{
		Verbose:    v.GetInt("verbose"),
		LogFile:    v.GetString("log-file"),
		BufferSize: v.GetInt("buffer-size"),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks if the settings are usable
func (s Settings) Validate() error {
	if s.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}
	if s.BufferSize < MinBufferSize {
		return fmt.Errorf("buffer size must be at least %d bytes", MinBufferSize)
	}
	return nil
}
