package persist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/atomicstack/bookshelf/internal/catalog"
)

var header = []string{"Index", "Name", "Pages", "Price"}

// ErrMissingHeader is returned for an empty text file.
var ErrMissingHeader = errors.New("missing header line")

// WriteCSV writes the header and one line per non-empty slot in index order.
// Names containing commas, quotes or newlines are quoted; all other lines are
// written bare.
func WriteCSV(w io.Writer, s *catalog.Store) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	var werr error
	s.Each(func(index int, b catalog.Book) {
		if werr != nil {
			return
		}
		werr = cw.Write([]string{
			strconv.Itoa(index),
			b.Name,
			strconv.Itoa(b.Pages),
			strconv.Itoa(b.Price),
		})
	})
	if werr != nil {
		return werr
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV skips the header line, validates every remaining line and then
// writes each record into the slot named by its index column. Slots absent
// from the input are left untouched. Any invalid line aborts the read before
// the store is modified.
func ReadCSV(r io.Reader, s *catalog.Store) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, &ParseError{Line: 1, Err: ErrMissingHeader}
		}
		return 0, wrapCSVError(err)
	}

	limits := s.Limits()
	entries := make([]entry, 0, limits.Capacity)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, wrapCSVError(err)
		}
		line, _ := cr.FieldPos(0)
		e, err := parseRecord(limits, line, record)
		if err != nil {
			return 0, err
		}
		entries = append(entries, e)
	}
	return apply(s, entries)
}

func parseRecord(limits catalog.Limits, line int, record []string) (entry, error) {
	fields := [3]int{}
	for i, col := range []int{0, 2, 3} {
		v, err := strconv.Atoi(record[col])
		if err != nil {
			return entry{}, &ParseError{Line: line, Err: fmt.Errorf("%s: %w", header[col], err)}
		}
		fields[i] = v
	}
	book := catalog.Book{Name: record[1], Pages: fields[1], Price: fields[2]}
	return validate(limits, line, fields[0], book)
}

func wrapCSVError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Line: pe.Line, Err: pe.Err}
	}
	return err
}

func writeCSVFile(path string, s *catalog.Store) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".bookshelf-*.tmp")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(tmp, s); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readCSVFile(path string, s *catalog.Store) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	n, err := ReadCSV(f, s)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return n, nil
}
