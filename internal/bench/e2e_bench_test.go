package bench

import (
	"context"
	"strings"
	"testing"

	"mmcd/internal/layout"
	"mmcd/internal/pipeline"
	"mmcd/internal/schema"
)

// BenchmarkEndToEnd exercises the hot path of the parallel decode + schema
// cast pipeline over synthetic in-memory records.
//
// It focuses on:
//   - decode.Line: fixed-width slicing and code-table lookups per field
//   - pipeline.Run: batch fan-out and order-preserving merge
//   - schema.Cast:  per-row type certification
//
// The goal is to approximate real-world throughput without involving I/O or
// an actual storage backend.
// Run with:
//
//	go test -run=^$ -bench ^BenchmarkEndToEnd$ -cpuprofile cpu.out -memprofile mem.out -count=1
func BenchmarkEndToEnd(b *testing.B) {
	ctx := context.Background()
	cat := layout.Mortality2022()

	// One realistic line: demographics, an underlying cause, two entity-axis
	// conditions, and a composite race recode so the decomposition path runs.
	line := buildLine(map[int]string{
		19:  "1",
		20:  "1",
		63:  "3",
		65:  "07",
		69:  "F",
		70:  "1035",
		75:  "33",
		83:  "4",
		84:  "M",
		85:  "1",
		106: "N",
		107: "7",
		109: "Y",
		146: "I251",
		160: "22",
		163: "02",
		165: "11I251",
		172: "21I500",
		341: "02",
		344: "I251",
		349: "I500",
		450: "1",
		484: "100",
		487: "08",
		489: "22",
	})

	lines := make([]string, b.N)
	for i := range lines {
		lines[i] = line
	}

	b.ResetTimer()
	tbl, err := pipeline.Run(ctx, cat, lines, pipeline.Options{})
	if err != nil {
		b.Fatalf("pipeline.Run: %v", err)
	}
	if err := schema.Dataset().Cast(tbl); err != nil {
		b.Fatalf("schema.Cast: %v", err)
	}
	b.StopTimer()

	if tbl.Len() != b.N {
		b.Fatalf("decoded %d rows, want %d", tbl.Len(), b.N)
	}
}

func buildLine(fields map[int]string) string {
	buf := []byte(strings.Repeat(" ", 817))
	for pos, val := range fields {
		copy(buf[pos-1:], val)
	}
	return string(buf)
}
