/*
Package textfile reads a whole text file into memory through an
afero.Fs and checks that it is valid UTF-8.

Basic usage:

	reader := textfile.NewReader(afero.NewOsFs(), textfile.Config{
		BufferSize: 4096,
	}, log)

	contents, err := reader.ReadString("poem.txt")

Failures come back as *NotFoundError, *PermissionError, *EncodingError
or *ReadError. The first three keep the underlying error reachable with
errors.Is / errors.As.
*/
package textfile

import (
	"errors"
	"io"
	"io/fs"
	"unicode/utf8"

	"github.com/sonemaro/minigrep/pkg/logger"
	"github.com/spf13/afero"
)

// DefaultBufferSize is used when Config.BufferSize is not positive
const DefaultBufferSize = 4096

// Config contains reader configuration options
type Config struct {
	BufferSize int
}

// Stats reports what the reader has consumed so far
type Stats struct {
	FilesRead int64
	BytesRead int64
}

// Reader loads text files from a filesystem
type Reader struct {
	config Config
	fs     afero.Fs
	log    logger.Logger
	stats  Stats
}

// NewReader creates a Reader on top of fs
func NewReader(fs afero.Fs, config Config, log logger.Logger) *Reader {
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultBufferSize
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Reader{
		config: config,
		fs:     fs,
		log:    log,
	}
}

// Stats returns the counters accumulated by ReadString
func (r *Reader) Stats() Stats {
	return r.stats
}

// ReadString returns the full contents of path. The file is closed
// before ReadString returns, whatever the outcome.
func (r *Reader) ReadString(path string) (string, error) {
	r.log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Reading file content")

	info, err := r.fs.Stat(path)
	if err != nil {
		r.log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Debug("Failed to stat file")
		return "", classify(path, err)
	}

	if info.IsDir() {
		return "", &ReadError{Path: path, Err: errors.New("is a directory")}
	}

	file, err := r.fs.Open(path)
	if err != nil {
		r.log.WithFields(logger.Fields{
			"error": err,
			"path":  path,
		}).Debug("Failed to open file")
		return "", classify(path, err)
	}
	defer file.Close()

	content, err := r.readAll(file, path, info.Size())
	if err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		offset := invalidOffset(content)
		r.log.WithFields(logger.Fields{
			"path":   path,
			"offset": offset,
		}).Debug("File is not valid UTF-8")
		return "", &EncodingError{Path: path, Offset: offset}
	}

	r.stats.FilesRead++
	r.log.WithFields(logger.Fields{
		"path": path,
		"size": len(content),
	}).Debug("File read completed")

	return string(content), nil
}

func (r *Reader) readAll(file afero.File, path string, size int64) ([]byte, error) {
	buf := make([]byte, r.config.BufferSize)
	content := make([]byte, 0, size)

	r.log.WithFields(logger.Fields{
		"path":       path,
		"size":       size,
		"bufferSize": r.config.BufferSize,
	}).Trace("Starting file read")

	for {
		n, err := file.Read(buf)
		if n > 0 {
			content = append(content, buf[:n]...)
			r.stats.BytesRead += int64(n)

			r.log.WithFields(logger.Fields{
				"path":      path,
				"bytesRead": n,
				"totalRead": len(content),
			}).Trace("Read progress")
		}

		if err == io.EOF {
			return content, nil
		}

		if err != nil {
			r.log.WithFields(logger.Fields{
				"error": err,
				"path":  path,
			}).Debug("Error reading file")
			return nil, classify(path, err)
		}
	}
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &NotFoundError{Path: path, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &PermissionError{Path: path, Err: err}
	default:
		return &ReadError{Path: path, Err: err}
	}
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(b []byte) int {
	offset := 0
	for offset < len(b) {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return offset
}
