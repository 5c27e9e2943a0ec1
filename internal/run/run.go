// Package run wires the stages of one conversion end to end: load the input
// file, decode it in parallel batches, cast the merged table against the
// output schema, and hand the certified table to the configured sink.
//
// Each stage is timed and reported through the metrics abstraction; the
// caller stays backend-agnostic for both storage and metrics.
package run

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"mmcd/internal/config"
	"mmcd/internal/layout"
	"mmcd/internal/metrics"
	"mmcd/internal/pipeline"
	"mmcd/internal/schema"
	"mmcd/internal/source"
	"mmcd/internal/storage"
)

// Summary reports what a completed run did.
type Summary struct {
	Job         string
	Fingerprint string
	Lines       int
	Rows        int
	Written     int64
	Elapsed     time.Duration
}

// openRepository is a test seam over the storage factory.
var openRepository = storage.New

// Run executes the full conversion described by spec.
func Run(ctx context.Context, spec config.Pipeline) (*Summary, error) {
	start := time.Now()
	cat := layout.Mortality2022()

	// Load.
	loadStart := time.Now()
	in, err := source.Load(spec.Source.Path, spec.Source.Encoding)
	metrics.RecordStage(spec.Job, "load", err, time.Since(loadStart))
	if err != nil {
		return nil, err
	}
	metrics.RecordLines(spec.Job, "loaded", int64(len(in.Lines)))

	// Decode.
	var batchesDone atomic.Int64
	decodeStart := time.Now()
	tbl, err := pipeline.Run(ctx, cat, in.Lines, pipeline.Options{
		Workers: spec.Runtime.Workers,
		Policy:  pipeline.ErrorPolicy(spec.Runtime.ErrorPolicy),
		Observer: pipeline.ObserverFunc(func(batch, completed, total int) {
			if completed == total {
				batchesDone.Add(1)
			}
		}),
	})
	metrics.RecordStage(spec.Job, "decode", err, time.Since(decodeStart))
	metrics.RecordBatches(spec.Job, batchesDone.Load())
	if err != nil {
		metrics.RecordLines(spec.Job, "decode_errors", countLineErrors(err))
		return nil, fmt.Errorf("run: decode %s: %w", spec.Source.Path, err)
	}
	metrics.RecordLines(spec.Job, "decoded", int64(tbl.Len()))

	// Cast.
	castStart := time.Now()
	err = schema.Dataset().Cast(tbl)
	metrics.RecordStage(spec.Job, "cast", err, time.Since(castStart))
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	// Store.
	storeStart := time.Now()
	repo, err := openRepository(ctx, storage.Config{
		Kind:  spec.Storage.Kind,
		DSN:   spec.Storage.DB.DSN,
		Table: spec.Storage.DB.Table,
		Path:  spec.Storage.Parquet.Path,
		Job:   spec.Job,
	})
	if err != nil {
		metrics.RecordStage(spec.Job, "store", err, time.Since(storeStart))
		return nil, err
	}
	defer repo.Close()

	written, err := repo.Write(ctx, tbl)
	metrics.RecordStage(spec.Job, "store", err, time.Since(storeStart))
	if err != nil {
		return nil, fmt.Errorf("run: store: %w", err)
	}
	metrics.RecordLines(spec.Job, "written", written)

	s := &Summary{
		Job:         spec.Job,
		Fingerprint: in.Fingerprint,
		Lines:       len(in.Lines),
		Rows:        tbl.Len(),
		Written:     written,
		Elapsed:     time.Since(start),
	}
	log.Printf("run: job=%s lines=%d rows=%d written=%d fingerprint=%s elapsed=%s",
		s.Job, s.Lines, s.Rows, s.Written, s.Fingerprint, s.Elapsed.Truncate(time.Millisecond))
	return s, nil
}

// countLineErrors sizes the decode failure for metrics: one for a fail-fast
// abort, the full count for a collected multi-error.
func countLineErrors(err error) int64 {
	if errs, ok := err.(pipeline.Errors); ok {
		return int64(len(errs))
	}
	return 1
}
