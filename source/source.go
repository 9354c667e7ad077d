// Package source reads tabular files and yields their raw text cells. The
// scanner does not care about the table schema, every non-empty cell is a
// candidate for URL extraction.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrSourceNotFound is returned when the source path does not exist. Callers
// match it with errors.Is to tell a missing file from a broken one.
var ErrSourceNotFound = errors.New("source not found")

// A Reader yields the raw text cells of one table in a tabular file.
type Reader interface {
	Cells(path string, table string) ([]string, error)
}

// Open picks a reader for the given path by file extension.
func Open(path string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return CSV{}, nil
	case ".html", ".htm":
		return HTML{}, nil
	}
	return nil, fmt.Errorf("unsupported source format %q", ext)
}

func statSource(path string) error {
	_, errStat := os.Stat(path)
	if os.IsNotExist(errStat) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	return errStat
}
