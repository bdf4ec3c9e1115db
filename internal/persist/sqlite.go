package persist

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/bookshelf/internal/catalog"
)

//go:embed schema.sql
var schemaSQL string

// openSQLite opens the snapshot database at path. A writable open creates the
// file and the books table when missing; a read-only open leaves the file as is.
func openSQLite(ctx context.Context, path string, readOnly bool) (*sql.DB, error) {
	dsn := path
	if readOnly {
		dsn = (&url.URL{Scheme: "file", Path: path, RawQuery: "mode=ro"}).String()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure %s: %w", path, err)
	}
	if readOnly {
		return db, nil
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema to %s: %w", path, err)
	}
	return db, nil
}

// writeSQLite replaces every row of the snapshot with the store's non-empty
// slots inside one transaction.
func writeSQLite(ctx context.Context, path string, s *catalog.Store) (err error) {
	db, err := openSQLite(ctx, path, false)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM books"); err != nil {
		return fmt.Errorf("clear %s: %w", path, err)
	}
	stmt, err := tx.PrepareContext(ctx, "INSERT INTO books (slot, name, pages, price) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range s.Rows() {
		if _, err = stmt.ExecContext(ctx, row.Index, row.Book.Name, row.Book.Pages, row.Book.Price); err != nil {
			return fmt.Errorf("insert slot %d: %w", row.Index, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", path, err)
	}
	return nil
}

// readSQLite loads the snapshot rows into their slots. The row number is
// reported as the line of a ParseError.
func readSQLite(ctx context.Context, path string, s *catalog.Store) (int, error) {
	db, err := openSQLite(ctx, path, true)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, "SELECT slot, name, pages, price FROM books ORDER BY slot")
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", path, err)
	}
	defer rows.Close()

	limits := s.Limits()
	entries := make([]entry, 0, limits.Capacity)
	line := 0
	for rows.Next() {
		line++
		var index int
		var b catalog.Book
		if err := rows.Scan(&index, &b.Name, &b.Pages, &b.Price); err != nil {
			return 0, fmt.Errorf("scan %s: %w", path, err)
		}
		e, err := validate(limits, line, index, b)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", path, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return apply(s, entries)
}
