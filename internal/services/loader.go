package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"syscall"
	"time"
	"unicode/utf8"

	"data-streams/internal/logger"
	"data-streams/internal/models"
)

const loaderComponent = "FileLoader"

// FileLoader reads a text file into a Document. It keeps no state between calls.
type FileLoader struct {
	logger logger.Logger
}

// NewFileLoader creates a loader; a nil logger discards output
func NewFileLoader(log logger.Logger) *FileLoader {
	if log == nil {
		log = logger.Nop()
	}
	return &FileLoader{logger: log}
}

// Load checks that path exists and is readable, then reads it into lines.
// The read is never attempted when either check fails.
func (fl *FileLoader) Load(ctx context.Context, path string) (*models.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	startTime := time.Now()
	fl.logger.Debug(loaderComponent, "selected file", map[string]interface{}{
		"path": path,
	})

	info, err := os.Stat(path)
	if err != nil {
		return nil, fl.fail(path, classifyOpenError(err), err)
	}
	if info.IsDir() {
		return nil, fl.fail(path, ErrReadFailure, fmt.Errorf("%s is a directory", path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fl.fail(path, classifyOpenError(err), err)
	}
	defer file.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fl.fail(path, ErrReadFailure, err)
	}

	fl.logger.Info(loaderComponent, "file loaded", map[string]interface{}{
		"path":        path,
		"lines":       len(lines),
		"bytes":       info.Size(),
		"duration_ms": time.Since(startTime).Milliseconds(),
	})

	return models.NewDocument(path, lines), nil
}

func (fl *FileLoader) fail(path string, kind, cause error) error {
	loadErr := newLoadError(path, kind, cause)
	fl.logger.Warning(loaderComponent, "load failed", map[string]interface{}{
		"path":  path,
		"kind":  kind.Error(),
		"cause": fmt.Sprint(cause),
	})
	return loadErr
}

// classifyOpenError maps a stat or open failure to a load error kind.
// Paths that cannot name a file at all count as missing.
func classifyOpenError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, syscall.ENOTDIR),
		errors.Is(err, syscall.ENAMETOOLONG),
		errors.Is(err, syscall.ELOOP):
		return ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrNotReadable
	default:
		return ErrReadFailure
	}
}

// ReadLines reads r to the end and splits it with SplitLines.
// Content that is not valid UTF-8 is rejected.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, errInvalidEncoding
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on "\n", "\r\n" and lone "\r". Terminators are
// dropped and empty lines are kept, but a terminator ending the text does
// not start a new, empty line.
func SplitLines(text string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
