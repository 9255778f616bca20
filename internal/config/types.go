package config

// Constants for settings limits and defaults
const (
	// MinBufferSize is the minimum allowed read buffer size in bytes
	MinBufferSize = 64

	// DefaultBufferSize is the default read buffer size in bytes
	DefaultBufferSize = 4096

	// requiredArgs counts the program name plus the three positional arguments
	requiredArgs = 4
)

// ArgumentError is returned by Build when the argument sequence is unusable.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

var (
	// ErrNotEnoughArguments is returned when fewer than three user arguments are given
	ErrNotEnoughArguments = &ArgumentError{Msg: "Not enough arguments"}

	// ErrParseBool is returned when the case flag is neither "true" nor "false"
	ErrParseBool = &ArgumentError{Msg: "Failed to parse bool"}
)
