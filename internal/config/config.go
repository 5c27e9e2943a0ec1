// Package config defines the canonical, JSON-serializable configuration model
// for a conversion run. It is intentionally small, explicit, and dependency-
// free so that run definitions can be loaded from disk and passed through the
// program without additional glue code.
//
// Example (trimmed):
//
//	{
//	  "job":     "mortality_2022",
//	  "source":  { "path": "data/VS22MORT.DUSMCPUB", "encoding": "latin-1" },
//	  "runtime": { "workers": 0, "error_policy": "failfast" },
//	  "storage": { "kind": "parquet", "parquet": { "path": "out/mortality_2022.parquet" } }
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline describes one full conversion run: where the fixed-width input
// comes from, how decoding is scheduled, and where the certified table goes.
type Pipeline struct {
	// Job names the run; it labels metrics and log lines.
	Job string `json:"job"`

	Source  Source        `json:"source"`
	Runtime RuntimeConfig `json:"runtime"`
	Storage Storage       `json:"storage"`
}

// Source identifies the fixed-width input file.
type Source struct {
	// Path is the local filesystem path to the record file.
	Path string `json:"path"`

	// Encoding names the byte encoding of the file. Empty or "utf-8" means
	// the bytes are used as-is; "latin-1" and "windows-1252" are decoded.
	Encoding string `json:"encoding"`
}

// RuntimeConfig controls decode concurrency and error handling.
type RuntimeConfig struct {
	// Workers caps parallel decode batches. Zero selects the machine default
	// (logical CPUs minus two, floor one).
	Workers int `json:"workers"`

	// ErrorPolicy is "failfast" (default) or "collect".
	ErrorPolicy string `json:"error_policy"`
}

// Storage selects the sink used to persist the certified table.
type Storage struct {
	// Kind selects the storage implementation: "parquet", "sqlite", or
	// "postgres".
	Kind string `json:"kind"`

	// DB carries options for the database sinks ("sqlite", "postgres").
	DB DBConfig `json:"db"`

	// Parquet carries options for the "parquet" sink.
	Parquet ParquetConfig `json:"parquet"`
}

// DBConfig configures a database sink.
type DBConfig struct {
	// DSN is the connection string: a file path or URI for sqlite, a
	// postgresql:// URL for postgres.
	DSN string `json:"dsn"`

	// Table is the destination table name. The sinks create it when absent.
	Table string `json:"table"`
}

// ParquetConfig configures the parquet file sink.
type ParquetConfig struct {
	// Path is the output file path.
	Path string `json:"path"`
}

// Load decodes a Pipeline from a JSON file. Unknown fields are rejected so a
// typo in a run definition fails loudly instead of silently using a default.
func Load(path string) (Pipeline, error) {
	var p Pipeline
	f, err := os.Open(path)
	if err != nil {
		return p, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return p, nil
}
