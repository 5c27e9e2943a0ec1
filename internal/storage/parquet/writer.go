// Package parquet implements the parquet file sink. It flattens certified
// rows into a tagged row struct and streams them through a generic writer
// with snappy compression.
package parquet

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	pq "github.com/parquet-go/parquet-go"

	"mmcd/internal/dataset"
	"mmcd/internal/storage"
)

// conditionRow is the nested element type of the entity_axis_conditions list.
type conditionRow struct {
	Part      string `parquet:"part"`
	Line      int32  `parquet:"line"`
	Condition string `parquet:"condition"`
}

// mortalityRow is the parquet schema of the output table. Absent values map
// to optional columns; age bounds are stored as millisecond integers.
type mortalityRow struct {
	RecordType               *string        `parquet:"record_type,optional"`
	ResidentStatus           *string        `parquet:"resident_status,optional"`
	Education                *string        `parquet:"education,optional"`
	MonthOfDeath             *int32         `parquet:"month_of_death,optional"`
	Sex                      *string        `parquet:"sex,optional"`
	AgeLowerBoundMS          *int64         `parquet:"age_lower_bound_ms,optional"`
	AgeUpperBoundMS          *int64         `parquet:"age_upper_bound_ms,optional"`
	PlaceOfDeath             *string        `parquet:"place_of_death,optional"`
	MaritalStatus            *string        `parquet:"marital_status,optional"`
	DayOfWeekOfDeath         *string        `parquet:"day_of_week_of_death,optional"`
	InjuryAtWork             *bool          `parquet:"injury_at_work,optional"`
	MannerOfDeath            *string        `parquet:"manner_of_death,optional"`
	MethodOfDisposition      *string        `parquet:"method_of_disposition,optional"`
	Autopsy                  *bool          `parquet:"autopsy,optional"`
	ActivityCode             *string        `parquet:"activity_code,optional"`
	PlaceOfInjury            *string        `parquet:"place_of_injury,optional"`
	ICDCode                  *string        `parquet:"icd_code,optional"`
	CauseRecode358           *string        `parquet:"cause_recode_358,optional"`
	CauseRecode113           *string        `parquet:"cause_recode_113,optional"`
	InfantCauseRecode130     *string        `parquet:"infant_cause_recode_130,optional"`
	CauseRecode39            *int32         `parquet:"cause_recode_39,optional"`
	EntityAxisConditions     []conditionRow `parquet:"entity_axis_conditions,list,optional"`
	RecordAxisConditions     []string       `parquet:"record_axis_conditions,list,optional"`
	RaceRecode6              *string        `parquet:"race_recode_6,optional"`
	HispanicOrigin           *string        `parquet:"hispanic_origin,optional"`
	HispanicOriginRaceRecode *string        `parquet:"hispanic_origin_race_recode,optional"`
	RaceRecode40             []string       `parquet:"race_recode_40,list,optional"`
	OccupationCode           *string        `parquet:"decedent_occupation_code,optional"`
	OccupationRecode         *string        `parquet:"decedent_occupation_recode,optional"`
	IndustryCode             *string        `parquet:"decedent_industry_code,optional"`
	IndustryRecode           *string        `parquet:"decedent_industry_recode,optional"`
}

func int8To32(v *int8) *int32 {
	if v == nil {
		return nil
	}
	w := int32(*v)
	return &w
}

func millisTo64(v *dataset.Millis) *int64 {
	if v == nil {
		return nil
	}
	w := int64(*v)
	return &w
}

func toParquetRow(r *dataset.Row) mortalityRow {
	out := mortalityRow{
		RecordType:               r.RecordType,
		ResidentStatus:           r.ResidentStatus,
		Education:                r.Education,
		MonthOfDeath:             int8To32(r.MonthOfDeath),
		Sex:                      r.Sex,
		AgeLowerBoundMS:          millisTo64(r.AgeLowerBound),
		AgeUpperBoundMS:          millisTo64(r.AgeUpperBound),
		PlaceOfDeath:             r.PlaceOfDeath,
		MaritalStatus:            r.MaritalStatus,
		DayOfWeekOfDeath:         r.DayOfWeekOfDeath,
		InjuryAtWork:             r.InjuryAtWork,
		MannerOfDeath:            r.MannerOfDeath,
		MethodOfDisposition:      r.MethodOfDisposition,
		Autopsy:                  r.Autopsy,
		ActivityCode:             r.ActivityCode,
		PlaceOfInjury:            r.PlaceOfInjury,
		ICDCode:                  r.ICDCode,
		CauseRecode358:           r.CauseRecode358,
		CauseRecode113:           r.CauseRecode113,
		InfantCauseRecode130:     r.InfantCauseRecode130,
		CauseRecode39:            int8To32(r.CauseRecode39),
		RecordAxisConditions:     r.RecordAxisConditions,
		RaceRecode6:              r.RaceRecode6,
		HispanicOrigin:           r.HispanicOrigin,
		HispanicOriginRaceRecode: r.HispanicOriginRaceRecode,
		RaceRecode40:             r.RaceRecode40,
		OccupationCode:           r.OccupationCode,
		OccupationRecode:         r.OccupationRecode,
		IndustryCode:             r.IndustryCode,
		IndustryRecode:           r.IndustryRecode,
	}
	for _, c := range r.EntityAxisConditions {
		out.EntityAxisConditions = append(out.EntityAxisConditions, conditionRow{
			Part:      string(c.Part),
			Line:      int32(c.Line),
			Condition: c.Condition,
		})
	}
	return out
}

// Sink writes the table to a single parquet file.
type Sink struct {
	path string
	job  string
}

// writeChunk bounds memory while converting rows to the tagged schema.
const writeChunk = 8192

// Write persists t to the configured path. The file is written atomically:
// output goes to a temp file in the same directory and is renamed on success.
func (s *Sink) Write(ctx context.Context, t *dataset.Table) (int64, error) {
	if !t.Certified {
		return 0, fmt.Errorf("parquet: refusing to write uncertified table")
	}

	start := time.Now()
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".mmcd-*.parquet")
	if err != nil {
		return 0, fmt.Errorf("parquet: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := pq.NewGenericWriter[mortalityRow](tmp, pq.Compression(&pq.Snappy))

	var written int64
	buf := make([]mortalityRow, 0, writeChunk)
	for i := range t.Rows {
		if err := ctx.Err(); err != nil {
			tmp.Close()
			return written, err
		}
		buf = append(buf, toParquetRow(&t.Rows[i]))
		if len(buf) == writeChunk {
			n, err := w.Write(buf)
			written += int64(n)
			if err != nil {
				tmp.Close()
				return written, fmt.Errorf("parquet: write rows: %w", err)
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		n, err := w.Write(buf)
		written += int64(n)
		if err != nil {
			tmp.Close()
			return written, fmt.Errorf("parquet: write rows: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		tmp.Close()
		return written, fmt.Errorf("parquet: close writer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return written, fmt.Errorf("parquet: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return written, fmt.Errorf("parquet: rename into place: %w", err)
	}

	log.Printf("parquet: job=%s wrote rows=%d path=%s elapsed=%s",
		s.job, written, s.path, time.Since(start).Truncate(time.Millisecond))
	return written, nil
}

// Close implements storage.Repository; the sink holds no open resources
// between writes.
func (s *Sink) Close() {}

var _ storage.Repository = (*Sink)(nil)

func init() {
	storage.Register("parquet", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		if cfg.Path == "" {
			return nil, fmt.Errorf("parquet: output path must not be empty")
		}
		return &Sink{path: cfg.Path, job: cfg.Job}, nil
	})
}
