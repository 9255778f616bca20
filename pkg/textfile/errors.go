package textfile

import "fmt"

// PermissionError represents a permission-related error while reading
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("permission denied: %s", e.Path)
	}
	return e.Err.Error()
}

func (e *PermissionError) Unwrap() error { return e.Err }

// NotFoundError is returned when the file does not exist
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no such file: %s", e.Path)
	}
	return e.Err.Error()
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// EncodingError is returned when the file is not valid UTF-8
type EncodingError struct {
	Path   string
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("stream did not contain valid UTF-8: %s: invalid byte at offset %d", e.Path, e.Offset)
}

// ReadError wraps any other failure to read the file
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
