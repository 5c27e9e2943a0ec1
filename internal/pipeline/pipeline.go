// Package pipeline runs the parallel batch decode over a fully loaded line
// set.
//
// Lines are split into contiguous batches in input order, one batch per
// worker slot, and decoded independently. Partial tables are merged by batch
// index, never by completion order, so the output row order always equals
// the input line order regardless of scheduling. Progress flows as events
// over a channel into a single aggregator goroutine; workers share no
// mutable state beyond that channel.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mmcd/internal/assemble"
	"mmcd/internal/dataset"
	"mmcd/internal/decode"
	"mmcd/internal/layout"
)

// ErrorPolicy selects how decode errors terminate a run.
type ErrorPolicy string

const (
	// FailFast aborts the whole run on the first decode error observed.
	FailFast ErrorPolicy = "failfast"
	// Collect decodes every line and reports all decode errors together,
	// ordered by input line. No output table is produced when any line fails.
	Collect ErrorPolicy = "collect"
)

// Observer receives advisory progress updates. Implementations must be safe
// for calls from the aggregator goroutine; updates may be dropped under
// contention and never affect decoding outcome or ordering.
type Observer interface {
	Progress(batch, completed, total int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(batch, completed, total int)

func (f ObserverFunc) Progress(batch, completed, total int) { f(batch, completed, total) }

// Options configures a pipeline run.
type Options struct {
	// Workers caps parallel batch decoding. Zero or negative selects
	// max(NumCPU-2, 1).
	Workers int
	// Policy defaults to FailFast.
	Policy ErrorPolicy
	// Observer receives progress events; nil disables reporting.
	Observer Observer
}

// DefaultWorkers returns the default worker count for this machine.
func DefaultWorkers() int {
	if w := runtime.NumCPU() - 2; w > 1 {
		return w
	}
	return 1
}

// LineError ties a decode error to its 1-based input line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *LineError) Unwrap() error { return e.Err }

// Errors is the ordered multi-error produced under the Collect policy.
type Errors []*LineError

func (es Errors) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d lines failed to decode:", len(es))
	for _, e := range es {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// event is one progress update from a batch worker.
type event struct {
	batch     int
	completed int
	total     int
}

// Run decodes all lines against cat and returns the merged, order-preserving
// table. The table is not yet cast; callers hand it to the schema caster.
func Run(ctx context.Context, cat *layout.Catalog, lines []string, opts Options) (*dataset.Table, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	policy := opts.Policy
	if policy == "" {
		policy = FailFast
	}

	n := len(lines)
	if n == 0 {
		return &dataset.Table{}, nil
	}

	batchSize := (n + workers - 1) / workers
	batches := make([][]string, 0, workers)
	for i := 0; i < n; i += batchSize {
		end := i + batchSize
		if end > n {
			end = n
		}
		batches = append(batches, lines[i:end])
	}

	log.Printf("pipeline: lines=%d workers=%d batches=%d batch_size=%d policy=%s",
		n, workers, len(batches), batchSize, policy)

	// Progress events drain into a single aggregator; sends are non-blocking
	// so a slow observer can only lose updates, never stall a worker.
	var events chan event
	doneEvents := make(chan struct{})
	if opts.Observer != nil {
		events = make(chan event, 4*len(batches))
		go func() {
			defer close(doneEvents)
			for ev := range events {
				opts.Observer.Progress(ev.batch, ev.completed, ev.total)
			}
		}()
	} else {
		close(doneEvents)
	}

	partials := make([]*dataset.Table, len(batches))
	collected := make([]Errors, len(batches))

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for bi, batch := range batches {
		bi, batch := bi, batch
		g.Go(func() error {
			tbl, errs := decodeBatch(gctx, cat, batch, bi, batchSize, policy, events)
			if policy == FailFast && len(errs) > 0 {
				return errs[0]
			}
			partials[bi] = tbl
			collected[bi] = errs
			return nil
		})
	}

	err := g.Wait()
	if events != nil {
		close(events)
	}
	<-doneEvents
	if err != nil {
		return nil, err
	}

	if policy == Collect {
		var all Errors
		for _, errs := range collected {
			all = append(all, errs...)
		}
		if len(all) > 0 {
			sort.Slice(all, func(i, j int) bool { return all[i].Line < all[j].Line })
			return nil, all
		}
	}

	// Merge by batch index to reconstruct the exact input order.
	out := &dataset.Table{Rows: make([]dataset.Row, 0, n)}
	for _, p := range partials {
		out.Append(p)
	}

	elapsed := time.Since(start)
	rate := int64(0)
	if s := elapsed.Seconds(); s > 0 {
		rate = int64(float64(n) / s)
	}
	log.Printf("pipeline: decoded=%d batches=%d elapsed=%s rps=%d",
		out.Len(), len(batches), elapsed.Truncate(time.Millisecond), rate)

	return out, nil
}

// decodeBatch decodes one contiguous batch. Under FailFast it stops at the
// first error (or on context cancellation caused by a sibling batch); under
// Collect it decodes every line and accumulates the failures.
func decodeBatch(
	ctx context.Context,
	cat *layout.Catalog,
	batch []string,
	batchIdx, batchSize int,
	policy ErrorPolicy,
	events chan<- event,
) (*dataset.Table, Errors) {
	tbl := &dataset.Table{Rows: make([]dataset.Row, 0, len(batch))}
	var errs Errors
	firstLine := batchIdx*batchSize + 1

	for i, line := range batch {
		select {
		case <-ctx.Done():
			// A sibling batch failed; this batch's partial result will be
			// discarded, so stop early.
			return tbl, errs
		default:
		}

		rec, err := decode.Line(cat, line)
		if err != nil {
			le := &LineError{Line: firstLine + i, Err: err}
			errs = append(errs, le)
			if policy == FailFast {
				return tbl, errs
			}
		} else {
			tbl.Rows = append(tbl.Rows, assemble.Row(rec))
		}

		if events != nil {
			select {
			case events <- event{batch: batchIdx, completed: i + 1, total: len(batch)}:
			default:
				// Lossy by design: progress is advisory.
			}
		}
	}
	return tbl, errs
}
