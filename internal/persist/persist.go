// Package persist saves and loads a catalog.Store.
//
// Two formats are supported and chosen by file extension: the comma-delimited
// text format (header "Index,Name,Pages,Price", one line per non-empty slot)
// and an SQLite snapshot for .db, .sqlite and .sqlite3 paths. In both formats
// the stored index is always the slot index. Loading only touches the slots
// named in the file and validates everything before modifying the store.
package persist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/bookshelf/internal/catalog"
)

// Format identifies an on-disk representation.
type Format int

const (
	FormatCSV Format = iota
	FormatSQLite
)

func (f Format) String() string {
	switch f {
	case FormatSQLite:
		return "sqlite"
	default:
		return "csv"
	}
}

// ErrDirectory is returned when a directory is given where a file is needed.
var ErrDirectory = errors.New("path is a directory")

// ParseError reports a malformed or out-of-range entry in a saved catalog.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatFor picks the format for path based on its extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// WriteFile saves every non-empty slot of s to path.
func WriteFile(ctx context.Context, path string, s *catalog.Store) error {
	if err := rejectDirectory(path); err != nil {
		return err
	}
	switch FormatFor(path) {
	case FormatSQLite:
		return writeSQLite(ctx, path, s)
	default:
		return writeCSVFile(path, s)
	}
}

// ReadFile loads the entries stored at path into s and returns how many
// slots were written.
func ReadFile(ctx context.Context, path string, s *catalog.Store) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("read %s: %w", path, ErrDirectory)
	}
	switch FormatFor(path) {
	case FormatSQLite:
		return readSQLite(ctx, path, s)
	default:
		return readCSVFile(path, s)
	}
}

func rejectDirectory(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty path")
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return fmt.Errorf("write %s: %w", path, ErrDirectory)
	}
	return nil
}

// entry is a validated record waiting to be applied to a store.
type entry struct {
	index int
	book  catalog.Book
}

func apply(s *catalog.Store, entries []entry) (int, error) {
	for _, e := range entries {
		if err := s.Put(e.index, e.book); err != nil {
			return 0, err
		}
	}
	return len(entries), nil
}

func validate(limits catalog.Limits, line, index int, b catalog.Book) (entry, error) {
	if err := limits.CheckIndex(index); err != nil {
		return entry{}, &ParseError{Line: line, Err: err}
	}
	b.Name = catalog.TruncateName(b.Name, limits.MaxName)
	if err := limits.CheckBook(b); err != nil {
		return entry{}, &ParseError{Line: line, Err: err}
	}
	return entry{index: index, book: b}, nil
}
