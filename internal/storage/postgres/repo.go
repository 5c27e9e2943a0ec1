// Package postgres implements a Postgres-backed storage.Repository using pgx
// v5. It loads the certified table with COPY, the fastest bulk path Postgres
// offers, inside a single transaction.
package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mmcd/internal/dataset"
	"mmcd/internal/storage"
)

// Repository is a Postgres-backed implementation of storage.Repository.
type Repository struct {
	pool  *pgxpool.Pool
	table pgx.Identifier
	job   string
}

// newRepository is a test hook pointing at the real constructor.
var newRepository = NewRepository

// NewRepository connects to the DSN and ensures the destination table
// exists. Table may be schema-qualified ("public.mortality_2022").
func NewRepository(ctx context.Context, dsn, table string) (*Repository, error) {
	ident, err := parseTable(table)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	r := &Repository{pool: pool, table: ident}
	if err := r.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

// parseTable splits an optionally schema-qualified name into an identifier
// and rejects anything that is not a plain identifier per part.
func parseTable(table string) (pgx.Identifier, error) {
	parts := strings.Split(table, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("postgres: invalid table name %q", table)
	}
	for _, p := range parts {
		if !validIdent(p) {
			return nil, fmt.Errorf("postgres: invalid table name %q", table)
		}
	}
	return pgx.Identifier(parts), nil
}

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

// ensureTable creates the destination table if missing. List columns are
// jsonb; age bounds are bigint milliseconds.
func (r *Repository) ensureTable(ctx context.Context) error {
	cols := make([]string, len(storage.TableColumns))
	for i, name := range storage.TableColumns {
		typ := "text"
		switch name {
		case "month_of_death", "cause_recode_39":
			typ = "smallint"
		case "age_lower_bound_ms", "age_upper_bound_ms":
			typ = "bigint"
		case "injury_at_work", "autopsy":
			typ = "boolean"
		case "entity_axis_conditions", "record_axis_conditions", "race_recode_40":
			typ = "jsonb"
		}
		cols[i] = name + " " + typ
	}
	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		r.table.Sanitize(), strings.Join(cols, ", "))
	if _, err := r.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("postgres: create table: %w", err)
	}
	return nil
}

// Write bulk-loads the certified table with COPY inside one transaction.
func (r *Repository) Write(ctx context.Context, t *dataset.Table) (int64, error) {
	if !t.Certified {
		return 0, fmt.Errorf("postgres: refusing to write uncertified table")
	}
	if t.Len() == 0 {
		return 0, nil
	}

	start := time.Now()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("postgres: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var convErr error
	n, err := tx.CopyFrom(ctx, r.table, storage.TableColumns,
		pgx.CopyFromSlice(t.Len(), func(i int) ([]any, error) {
			vals, err := storage.RowValues(&t.Rows[i])
			if err != nil {
				convErr = err
			}
			return vals, err
		}),
	)
	if err != nil {
		if convErr != nil {
			return n, convErr
		}
		return n, fmt.Errorf("postgres: copy: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return n, fmt.Errorf("postgres: commit: %w", err)
	}
	log.Printf("postgres: job=%s wrote rows=%d table=%s elapsed=%s",
		r.job, n, r.table.Sanitize(), time.Since(start).Truncate(time.Millisecond))
	return n, nil
}

// Close implements storage.Repository.
func (r *Repository) Close() {
	r.pool.Close()
}

var _ storage.Repository = (*Repository)(nil)

func init() {
	storage.Register("postgres", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		repo, err := newRepository(ctx, cfg.DSN, cfg.Table)
		if err != nil {
			return nil, err
		}
		repo.job = cfg.Job
		return repo, nil
	})
}
