package config

import (
	"strings"
	"testing"
)

// hasIssue reports whether issues contains an Issue with the given severity,
// path, and a Message containing msgSubstr.
func hasIssue(t *testing.T, issues []Issue, sev IssueSeverity, path, msgSubstr string) bool {
	t.Helper()
	for _, iss := range issues {
		if iss.Severity == sev && iss.Path == path && strings.Contains(iss.Message, msgSubstr) {
			return true
		}
	}
	return false
}

// validPipeline returns a well-formed pipeline tests can selectively break.
func validPipeline() Pipeline {
	return Pipeline{
		Job: "mortality_2022",
		Source: Source{
			Path:     "data/VS22MORT.DUSMCPUB",
			Encoding: "latin-1",
		},
		Runtime: RuntimeConfig{
			Workers:     4,
			ErrorPolicy: "failfast",
		},
		Storage: Storage{
			Kind:    "parquet",
			Parquet: ParquetConfig{Path: "out/mortality.parquet"},
		},
	}
}

func TestValidatePipeline_ValidMinimal(t *testing.T) {
	issues := ValidatePipeline(validPipeline())
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got: %+v", issues)
	}
}

func TestValidatePipeline_MissingJob(t *testing.T) {
	p := validPipeline()
	p.Job = ""

	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "job", "job must not be empty") {
		t.Fatalf("expected SeverityError for job; got issues: %+v", issues)
	}
}

func TestValidatePipeline_SourceIssues(t *testing.T) {
	p := validPipeline()
	p.Source.Path = ""
	p.Source.Encoding = "ebcdic"

	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "source.path", "non-empty path") {
		t.Fatalf("expected error for source.path; got: %+v", issues)
	}
	if !hasIssue(t, issues, SeverityError, "source.encoding", "unsupported encoding") {
		t.Fatalf("expected error for source.encoding; got: %+v", issues)
	}
}

func TestValidatePipeline_RuntimeIssues(t *testing.T) {
	p := validPipeline()
	p.Runtime.Workers = -1
	p.Runtime.ErrorPolicy = "ignore"

	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "runtime.workers", "workers must be >= 0") {
		t.Fatalf("expected error for runtime.workers; got: %+v", issues)
	}
	if !hasIssue(t, issues, SeverityError, "runtime.error_policy", "unknown error policy") {
		t.Fatalf("expected error for runtime.error_policy; got: %+v", issues)
	}

	p = validPipeline()
	p.Runtime.Workers = 1024
	issues = ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityWarning, "runtime.workers", "unusually high") {
		t.Fatalf("expected warning for very high workers; got: %+v", issues)
	}
}

func TestValidatePipeline_EmptyErrorPolicyIsFine(t *testing.T) {
	p := validPipeline()
	p.Runtime.ErrorPolicy = ""

	if issues := ValidatePipeline(p); len(issues) != 0 {
		t.Fatalf("empty error policy should default cleanly; got: %+v", issues)
	}
}

func TestValidatePipeline_StorageIssues(t *testing.T) {
	// Missing kind blocks everything else.
	p := validPipeline()
	p.Storage = Storage{}
	issues := ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "storage.kind", "must not be empty") {
		t.Fatalf("expected error for empty storage.kind; got: %+v", issues)
	}

	// Unknown kind is only a warning.
	p = validPipeline()
	p.Storage.Kind = "duckdb"
	issues = ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityWarning, "storage.kind", "unknown storage kind") {
		t.Fatalf("expected warning for unknown storage kind; got: %+v", issues)
	}

	// Parquet without a path.
	p = validPipeline()
	p.Storage.Parquet.Path = ""
	issues = ValidatePipeline(p)
	if !hasIssue(t, issues, SeverityError, "storage.parquet.path", "non-empty output path") {
		t.Fatalf("expected error for parquet path; got: %+v", issues)
	}

	// Database kinds need dsn and table.
	for _, kind := range []string{"sqlite", "postgres"} {
		p = validPipeline()
		p.Storage.Kind = kind
		p.Storage.Parquet = ParquetConfig{}
		issues = ValidatePipeline(p)
		if !hasIssue(t, issues, SeverityError, "storage.db.dsn", "non-empty dsn") {
			t.Fatalf("kind=%s: expected error for db.dsn; got: %+v", kind, issues)
		}
		if !hasIssue(t, issues, SeverityError, "storage.db.table", "non-empty table") {
			t.Fatalf("kind=%s: expected error for db.table; got: %+v", kind, issues)
		}
	}
}

func TestIssue_ErrorString(t *testing.T) {
	iss := Issue{Severity: SeverityError, Path: "storage.kind", Message: "boom"}
	want := "error at storage.kind: boom"
	if got := iss.Error(); got != want {
		t.Fatalf("Issue.Error() = %q, want %q", got, want)
	}
}
