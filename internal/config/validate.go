// This file adds a lightweight linter/validator for Pipeline values. It
// performs static checks over a decoded Pipeline and returns a list of issues
// (errors and warnings) that callers can surface in a CLI or tests.
package config

import (
	"fmt"
	"strings"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError indicates a configuration error that should block execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a configuration warning that should be surfaced
	// to users but may not necessarily block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation/lint finding for a Pipeline.
//
// Path is a dotted path into the config (e.g. "storage.kind",
// "runtime.error_policy"). Message is human-readable.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a single
// error in contexts that expect error.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// ValidatePipeline performs static validation / linting of a Pipeline.
//
// It does not mutate the pipeline. Instead it returns a slice of Issue values.
// Callers may decide whether to treat warnings as fatal or not.
func ValidatePipeline(p Pipeline) []Issue {
	var issues []Issue

	if strings.TrimSpace(p.Job) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "job",
			Message:  "job must not be empty; it is used for metrics labeling and identifying runs",
		})
	}
	issues = append(issues, validateSource(p.Source)...)
	issues = append(issues, validateRuntime(p.Runtime)...)
	issues = append(issues, validateStorage(p.Storage)...)

	return issues
}

// validateSource validates Source configuration.
func validateSource(s Source) []Issue {
	var issues []Issue

	if strings.TrimSpace(s.Path) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.path",
			Message:  "source requires a non-empty path",
		})
	}

	known := map[string]struct{}{
		"": {}, "utf-8": {}, "utf8": {},
		"latin-1": {}, "latin1": {}, "iso-8859-1": {},
		"windows-1252": {}, "cp1252": {},
	}
	if _, ok := known[strings.ToLower(s.Encoding)]; !ok {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "source.encoding",
			Message:  fmt.Sprintf("unsupported encoding %q", s.Encoding),
		})
	}

	return issues
}

// validateRuntime validates concurrency and error handling settings.
func validateRuntime(r RuntimeConfig) []Issue {
	var issues []Issue

	if r.Workers < 0 {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "runtime.workers",
			Message:  "workers must be >= 0 (0 selects the machine default)",
		})
	}
	if r.Workers > 256 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "runtime.workers",
			Message:  fmt.Sprintf("workers=%d is unusually high for a CPU-bound decode", r.Workers),
		})
	}

	switch r.ErrorPolicy {
	case "", "failfast", "collect":
	default:
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "runtime.error_policy",
			Message:  fmt.Sprintf("unknown error policy %q; want \"failfast\" or \"collect\"", r.ErrorPolicy),
		})
	}

	return issues
}

// validateStorage validates storage selection and kind-specific options.
func validateStorage(s Storage) []Issue {
	var issues []Issue

	if strings.TrimSpace(s.Kind) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Path:     "storage.kind",
			Message:  "storage.kind must not be empty",
		})
		return issues
	}

	// Unknown kinds are warnings (for forward compatibility): the storage
	// registry may carry implementations this linter does not know about.
	known := map[string]struct{}{
		"parquet":  {},
		"sqlite":   {},
		"postgres": {},
	}
	if _, ok := known[s.Kind]; !ok {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Path:     "storage.kind",
			Message:  fmt.Sprintf("unknown storage kind %q; ensure a matching implementation exists", s.Kind),
		})
	}

	switch s.Kind {
	case "parquet":
		if strings.TrimSpace(s.Parquet.Path) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.parquet.path",
				Message:  "parquet storage requires a non-empty output path",
			})
		}
	case "sqlite", "postgres":
		if strings.TrimSpace(s.DB.DSN) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.db.dsn",
				Message:  fmt.Sprintf("%s storage requires a non-empty dsn", s.Kind),
			})
		}
		if strings.TrimSpace(s.DB.Table) == "" {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Path:     "storage.db.table",
				Message:  fmt.Sprintf("%s storage requires a non-empty table name", s.Kind),
			})
		}
	}

	return issues
}
