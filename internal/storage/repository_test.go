package storage

import (
	"context"
	"strings"
	"testing"

	"mmcd/internal/dataset"
)

type fakeRepo struct {
	written int64
	closed  bool
}

func (f *fakeRepo) Write(ctx context.Context, t *dataset.Table) (int64, error) {
	f.written = int64(t.Len())
	return f.written, nil
}

func (f *fakeRepo) Close() { f.closed = true }

func TestRegisterAndNew(t *testing.T) {
	repo := &fakeRepo{}
	var got Config
	Register("fake", func(ctx context.Context, cfg Config) (Repository, error) {
		got = cfg
		return repo, nil
	})

	cfg := Config{Kind: "fake", Path: "out.parquet", Job: "j"}
	r, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if r != Repository(repo) {
		t.Fatalf("New returned %T, want the registered fake", r)
	}
	if got != cfg {
		t.Fatalf("factory received %+v, want %+v", got, cfg)
	}

	tbl := &dataset.Table{Rows: make([]dataset.Row, 3), Certified: true}
	if n, err := r.Write(context.Background(), tbl); err != nil || n != 3 {
		t.Fatalf("Write = (%d, %v), want (3, nil)", n, err)
	}
	r.Close()
	if !repo.closed {
		t.Fatalf("Close did not reach the repository")
	}
}

func TestNew_UnknownKindListsRegistered(t *testing.T) {
	Register("fake", func(ctx context.Context, cfg Config) (Repository, error) {
		return &fakeRepo{}, nil
	})

	_, err := New(context.Background(), Config{Kind: "tape"})
	if err == nil {
		t.Fatalf("New accepted unknown kind")
	}
	if !strings.Contains(err.Error(), `unknown kind "tape"`) || !strings.Contains(err.Error(), "fake") {
		t.Fatalf("error = %q, want unknown-kind message listing registered backends", err)
	}
}

func TestKinds_Sorted(t *testing.T) {
	for _, kind := range []string{"zeta", "alpha"} {
		Register(kind, func(ctx context.Context, cfg Config) (Repository, error) {
			return &fakeRepo{}, nil
		})
	}

	kinds := Kinds()
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1] >= kinds[i] {
			t.Fatalf("Kinds() not sorted: %v", kinds)
		}
	}
}
