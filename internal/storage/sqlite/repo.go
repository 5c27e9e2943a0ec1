// Package sqlite implements a SQLite-backed storage.Repository using
// database/sql. It performs batched INSERTs inside a transaction; SQLite does
// not have a dedicated bulk-load API like Postgres COPY, but transactions keep
// performance acceptable for a year of records.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"mmcd/internal/dataset"
	"mmcd/internal/storage"
)

// batchSize bounds the rows inserted per prepared-statement loop iteration
// between progress log lines.
const batchSize = 5000

// Repository is a SQLite-backed implementation of storage.Repository.
type Repository struct {
	db    *sql.DB
	table string
	job   string
}

// newRepository is a test hook pointing at the real constructor.
var newRepository = NewRepository

// NewRepository opens a SQLite database at the DSN and ensures the
// destination table exists.
//
// DSN is passed directly to database/sql; for example:
//
//	"file:mortality.db?cache=shared"
//	"mortality.db"
func NewRepository(ctx context.Context, dsn, table string) (*Repository, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite: DSN must not be empty")
	}
	if !validIdent(table) {
		return nil, fmt.Errorf("sqlite: invalid table name %q", table)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	r := &Repository{db: db, table: table}
	if err := r.ensureTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// validIdent accepts plain SQL identifiers; the table name is interpolated
// into DDL and INSERT text and must not carry quoting or punctuation.
func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ensureTable creates the destination table if missing. All columns are
// nullable; lists are stored as JSON text, booleans as integers.
func (r *Repository) ensureTable(ctx context.Context) error {
	cols := make([]string, len(storage.TableColumns))
	for i, name := range storage.TableColumns {
		typ := "TEXT"
		switch name {
		case "month_of_death", "cause_recode_39":
			typ = "INTEGER"
		case "age_lower_bound_ms", "age_upper_bound_ms":
			typ = "INTEGER"
		case "injury_at_work", "autopsy":
			typ = "INTEGER"
		}
		cols[i] = name + " " + typ
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", r.table, strings.Join(cols, ", "))
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("sqlite: create table: %w", err)
	}
	return nil
}

// Write inserts the whole certified table inside a single transaction so a
// failed run leaves no partial output behind.
func (r *Repository) Write(ctx context.Context, t *dataset.Table) (int64, error) {
	if !t.Certified {
		return 0, fmt.Errorf("sqlite: refusing to write uncertified table")
	}
	if t.Len() == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(storage.TableColumns)), ", ")
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.table, strings.Join(storage.TableColumns, ", "), placeholders)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return 0, fmt.Errorf("sqlite: prepare: %w", err)
	}
	defer stmt.Close()

	start := time.Now()
	var written int64
	for i := range t.Rows {
		vals, err := storage.RowValues(&t.Rows[i])
		if err != nil {
			return written, err
		}
		if _, err := stmt.ExecContext(ctx, vals...); err != nil {
			return written, fmt.Errorf("sqlite: insert row %d: %w", i, err)
		}
		written++
		if written%batchSize == 0 {
			log.Printf("sqlite: job=%s inserted=%d/%d", r.job, written, t.Len())
		}
	}

	if err := tx.Commit(); err != nil {
		return written, fmt.Errorf("sqlite: commit: %w", err)
	}
	log.Printf("sqlite: job=%s wrote rows=%d table=%s elapsed=%s",
		r.job, written, r.table, time.Since(start).Truncate(time.Millisecond))
	return written, nil
}

// Close implements storage.Repository.
func (r *Repository) Close() {
	_ = r.db.Close()
}

var _ storage.Repository = (*Repository)(nil)

func init() {
	storage.Register("sqlite", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		repo, err := newRepository(ctx, cfg.DSN, cfg.Table)
		if err != nil {
			return nil, err
		}
		repo.job = cfg.Job
		return repo, nil
	})
}
