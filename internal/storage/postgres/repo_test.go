package postgres

import (
	"context"
	"strings"
	"testing"

	"mmcd/internal/dataset"
	"mmcd/internal/storage"
)

func TestParseTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		table   string
		want    string
		wantErr bool
	}{
		{table: "mortality_2022", want: `"mortality_2022"`},
		{table: "public.mortality_2022", want: `"public"."mortality_2022"`},
		{table: "a.b.c", wantErr: true},
		{table: "", wantErr: true},
		{table: "public.", wantErr: true},
		{table: "bad-name", wantErr: true},
		{table: "1table", wantErr: true},
		{table: `x";DROP TABLE y`, wantErr: true},
	}
	for _, tt := range tests {
		ident, err := parseTable(tt.table)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseTable(%q) accepted", tt.table)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseTable(%q): %v", tt.table, err)
		}
		if got := ident.Sanitize(); got != tt.want {
			t.Fatalf("parseTable(%q).Sanitize() = %q, want %q", tt.table, got, tt.want)
		}
	}
}

func TestWrite_RefusesUncertifiedTable(t *testing.T) {
	t.Parallel()

	// The certification check runs before any connection is touched.
	r := &Repository{}
	_, err := r.Write(context.Background(), &dataset.Table{Rows: []dataset.Row{{}}})
	if err == nil || !strings.Contains(err.Error(), "uncertified") {
		t.Fatalf("Write = %v, want uncertified refusal", err)
	}
}

func TestFactoryRegistration_PropagatesConstructorError(t *testing.T) {
	orig := newRepository
	defer func() { newRepository = orig }()

	var gotDSN, gotTable string
	newRepository = func(ctx context.Context, dsn, table string) (*Repository, error) {
		gotDSN, gotTable = dsn, table
		return nil, context.DeadlineExceeded
	}

	_, err := storage.New(context.Background(), storage.Config{
		Kind:  "postgres",
		DSN:   "postgresql://localhost/db",
		Table: "public.mortality_2022",
	})
	if err != context.DeadlineExceeded {
		t.Fatalf("storage.New = %v, want the constructor error", err)
	}
	if gotDSN != "postgresql://localhost/db" || gotTable != "public.mortality_2022" {
		t.Fatalf("constructor received (%q, %q)", gotDSN, gotTable)
	}
}
