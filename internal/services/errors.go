package services

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrNotFound    = errors.New("file does not exist")
	ErrNotReadable = errors.New("file is not readable")
	ErrReadFailure = errors.New("failed to read file")
	ErrEmptyQuery  = errors.New("empty search string")
)

var errInvalidEncoding = errors.New("input is not valid UTF-8")

// LoadError describes a failed load. Kind is one of ErrNotFound,
// ErrNotReadable or ErrReadFailure; Err is the underlying cause, if any.
type LoadError struct {
	Path string
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newLoadError(path string, kind, cause error) *LoadError {
	return &LoadError{Path: path, Kind: kind, Err: cause}
}

// OpenError classifies a failure to open path that happened outside the
// loader, such as in a file dialog that opens the selection itself.
func OpenError(path string, err error) *LoadError {
	var pathErr *fs.PathError
	if path == "" && errors.As(err, &pathErr) {
		path = pathErr.Path
	}
	return newLoadError(path, classifyOpenError(err), err)
}

// UserMessage converts an error into the text shown in an error dialog
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "Error: File does not exist."
	case errors.Is(err, ErrNotReadable):
		return "Error: File is not readable."
	case errors.Is(err, ErrEmptyQuery):
		return "Please enter a search string."
	case errors.Is(err, ErrReadFailure):
		var loadErr *LoadError
		if errors.As(err, &loadErr) && loadErr.Err != nil {
			return "Error loading file: " + loadErr.Err.Error()
		}
		return "Error loading file."
	default:
		return err.Error()
	}
}
