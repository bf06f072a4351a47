// Package source reads the text files analyzed by wordstat.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/cheggaaa/pb/v3"
)

// FileReadError reports a file that could not be read as text.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// ErrInvalidUTF8 marks file content that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

// ReadFile returns the full content of path as text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// ReadOptions controls ReadFiles.
type ReadOptions struct {
	// Progress receives a progress bar with one tick per file. Nil disables it.
	Progress io.Writer
}

// ReadFiles reads every path in order and stops at the first failure.
func ReadFiles(paths []string, opts ReadOptions) ([]string, error) {
	var bar *pb.ProgressBar
	if opts.Progress != nil && len(paths) > 0 {
		bar = pb.New(len(paths)).SetWriter(opts.Progress).Start()
		defer bar.Finish()
	}

	texts := make([]string, 0, len(paths))
	for _, path := range paths {
		text, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
		if bar != nil {
			bar.Increment()
		}
	}
	return texts, nil
}
