// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store loads converted records into a local SQLite database so
// a table can be queried with plain SQL after conversion.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/avdata/ourairports-convert/internal/convert"
	"github.com/avdata/ourairports-convert/pkg/types"
)

// Store manages the SQLite sink database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database named by cfg.DBPath.
func Open(cfg types.StoreConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// columnType maps a schema coercion to a SQLite column affinity. List
// fields are stored as JSON array text; booleans as 0/1.
func columnType(c convert.Coercion) string {
	switch c {
	case convert.MandatoryFloat, convert.OptionalFloat:
		return "REAL"
	case convert.OptionalInt, convert.OptionalUint, convert.Boolean:
		return "INTEGER"
	default:
		return "TEXT"
	}
}

// CreateTable creates the kind's table if it does not exist. Column names
// and order come from the kind's schema; the id column is the primary key.
func (s *Store) CreateTable(ctx context.Context, kind convert.Kind) error {
	fields := kind.Schema().Fields
	cols := make([]string, len(fields))
	for i, f := range fields {
		col := fmt.Sprintf("%s %s", f.Name, columnType(f.Coerce))
		if f.Name == "id" {
			col += " PRIMARY KEY"
		}
		cols[i] = col
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", kind.Table(), strings.Join(cols, ", "))
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating table %s: %w", kind.Table(), err)
	}
	return nil
}

// Insert writes records into the kind's table inside one transaction,
// replacing rows with matching ids, and returns the number written.
func (s *Store) Insert(ctx context.Context, kind convert.Kind, records []any) (int, error) {
	if err := s.CreateTable(ctx, kind); err != nil {
		return 0, err
	}

	fields := kind.Schema().Fields
	names := make([]string, len(fields))
	marks := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
		marks[i] = "?"
	}
	query := fmt.Sprintf("INSERT OR REPLACE INTO %s (%s) VALUES (%s)",
		kind.Table(), strings.Join(names, ", "), strings.Join(marks, ", "))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		args, err := bindArgs(fields, rec)
		if err != nil {
			tx.Rollback()
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("inserting into %s: %w", kind.Table(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(records), nil
}

// Count returns the number of rows in the kind's table.
func (s *Store) Count(ctx context.Context, kind convert.Kind) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+kind.Table()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", kind.Table(), err)
	}
	return n, nil
}

// bindArgs flattens one typed record into insert arguments in schema
// order, going through the record's JSON form so column names line up
// with the serialized field names.
func bindArgs(fields []convert.Field, rec any) ([]any, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("flattening record: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("flattening record: %w", err)
	}

	args := make([]any, len(fields))
	for i, f := range fields {
		v := m[f.Name]
		if list, ok := v.([]any); ok {
			text, err := json.Marshal(list)
			if err != nil {
				return nil, fmt.Errorf("encoding list field %s: %w", f.Name, err)
			}
			v = string(text)
		}
		args[i] = v
	}
	return args, nil
}
