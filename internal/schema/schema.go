// Package schema declares the typed output schema of the mortality dataset
// and implements the cast step that certifies a merged table against it.
//
// Casting is the single point where the type safety of the whole dataset is
// established: every enum column is checked against its closed value set,
// bounded integers against their ranges, and nested lists against their
// element types. It runs exactly once, after all decoded batches are merged,
// and marks the table certified for the sinks.
package schema

import (
	"fmt"

	"mmcd/internal/codes"
	"mmcd/internal/dataset"
)

// Type enumerates the declared column types of the output schema.
type Type uint8

const (
	TypeEnum        Type = iota // closed label set
	TypeCategorical             // open string dictionary
	TypeInt8                    // bounded small integer
	TypeBool
	TypeDuration   // milliseconds
	TypeEnumList   // list of labels from a closed set
	TypeStructList // list of entity-axis condition structs
)

func (t Type) String() string {
	switch t {
	case TypeEnum:
		return "enum"
	case TypeCategorical:
		return "categorical"
	case TypeInt8:
		return "int8"
	case TypeBool:
		return "bool"
	case TypeDuration:
		return "duration[ms]"
	case TypeEnumList:
		return "list[enum]"
	case TypeStructList:
		return "list[struct]"
	}
	return fmt.Sprintf("type_%d", uint8(t))
}

// Column describes one output column: its name, declared type, and the
// per-row check compiled for it.
type Column struct {
	Name string
	Type Type

	check func(row *dataset.Row) error
}

// Schema is the ordered list of output columns.
type Schema struct {
	cols []Column
}

// Columns returns the declared column names in output order.
func (s *Schema) Columns() []string {
	names := make([]string, len(s.cols))
	for i, c := range s.cols {
		names[i] = c.Name
	}
	return names
}

// CastError reports a row value that violates its column's declared type.
// It is fatal to the whole run.
type CastError struct {
	Row    int // 0-based row index == input line index
	Column string
	Reason string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cast row %d column %s: %s", e.Row, e.Column, e.Reason)
}

// Cast checks every row of t against the schema and marks the table
// certified. The table must be the fully merged result; Cast refuses tables
// that are already certified to keep the step single-shot.
func (s *Schema) Cast(t *dataset.Table) error {
	if t.Certified {
		return fmt.Errorf("schema: table already cast")
	}
	for i := range t.Rows {
		row := &t.Rows[i]
		for _, col := range s.cols {
			if col.check == nil {
				continue
			}
			if err := col.check(row); err != nil {
				return &CastError{Row: i, Column: col.Name, Reason: err.Error()}
			}
		}
	}
	t.Certified = true
	return nil
}

// --- schema construction ------------------------------------------------------

// labelSet builds a membership set from a closed label list.
func labelSet(values []string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// enumCol compiles an enum column over the given closed label set.
func enumCol(name string, values []string, get func(*dataset.Row) *string) Column {
	set := labelSet(values)
	return Column{Name: name, Type: TypeEnum, check: func(row *dataset.Row) error {
		v := get(row)
		if v == nil {
			return nil
		}
		if _, ok := set[*v]; !ok {
			return fmt.Errorf("label %q not in enum value set", *v)
		}
		return nil
	}}
}

// categoricalCol compiles an open string column; absent is fine, empty is not.
func categoricalCol(name string, get func(*dataset.Row) *string) Column {
	return Column{Name: name, Type: TypeCategorical, check: func(row *dataset.Row) error {
		v := get(row)
		if v != nil && *v == "" {
			return fmt.Errorf("empty categorical value")
		}
		return nil
	}}
}

// int8Col compiles a bounded integer column.
func int8Col(name string, lo, hi int8, get func(*dataset.Row) *int8) Column {
	return Column{Name: name, Type: TypeInt8, check: func(row *dataset.Row) error {
		v := get(row)
		if v == nil {
			return nil
		}
		if *v < lo || *v > hi {
			return fmt.Errorf("value %d outside %d-%d", *v, lo, hi)
		}
		return nil
	}}
}

// boolCol needs no runtime check beyond its static type.
func boolCol(name string) Column {
	return Column{Name: name, Type: TypeBool}
}

// Dataset returns the declared schema of the mortality output table.
func Dataset() *Schema {
	// The race_recode_40 list column only ever carries single-race labels:
	// composites are decomposed before this point, with the generic Asian and
	// Pacific Islander components renamed into the residual buckets.
	raceSingle := labelSet([]string{
		"WHITE", "BLACK", "AIAN", "ASIAN_INDIAN", "CHINESE", "FILIPINO",
		"JAPANESE", "KOREAN", "VIETNAMESE", "OTHER_ASIAN", "HAWAIIAN",
		"GUAMANIAN", "SAMOAN", "OTHER_PACIFIC_ISLANDER",
	})

	cols := []Column{
		enumCol("record_type", codes.RecordType.Labels(), func(r *dataset.Row) *string { return r.RecordType }),
		enumCol("resident_status", codes.ResidentStatus.Labels(), func(r *dataset.Row) *string { return r.ResidentStatus }),
		enumCol("education", codes.Education.Labels(), func(r *dataset.Row) *string { return r.Education }),
		int8Col("month_of_death", 1, 12, func(r *dataset.Row) *int8 { return r.MonthOfDeath }),
		enumCol("sex", codes.Sex.Labels(), func(r *dataset.Row) *string { return r.Sex }),
		{Name: "age_lower_bound", Type: TypeDuration, check: checkAgeBounds},
		{Name: "age_upper_bound", Type: TypeDuration},
		enumCol("place_of_death", codes.PlaceOfDeath.Labels(), func(r *dataset.Row) *string { return r.PlaceOfDeath }),
		enumCol("marital_status", codes.MaritalStatus.Labels(), func(r *dataset.Row) *string { return r.MaritalStatus }),
		enumCol("day_of_week_of_death", codes.DayOfWeekOfDeath.Labels(), func(r *dataset.Row) *string { return r.DayOfWeekOfDeath }),
		boolCol("injury_at_work"),
		enumCol("manner_of_death", codes.MannerOfDeath.Labels(), func(r *dataset.Row) *string { return r.MannerOfDeath }),
		enumCol("method_of_disposition", codes.MethodOfDisposition.Labels(), func(r *dataset.Row) *string { return r.MethodOfDisposition }),
		boolCol("autopsy"),
		enumCol("activity_code", codes.ActivityCode.Labels(), func(r *dataset.Row) *string { return r.ActivityCode }),
		enumCol("place_of_injury", codes.PlaceOfInjury.Labels(), func(r *dataset.Row) *string { return r.PlaceOfInjury }),
		categoricalCol("icd_code", func(r *dataset.Row) *string { return r.ICDCode }),
		categoricalCol("cause_recode_358", func(r *dataset.Row) *string { return r.CauseRecode358 }),
		categoricalCol("cause_recode_113", func(r *dataset.Row) *string { return r.CauseRecode113 }),
		categoricalCol("infant_cause_recode_130", func(r *dataset.Row) *string { return r.InfantCauseRecode130 }),
		int8Col("cause_recode_39", 1, 42, func(r *dataset.Row) *int8 { return r.CauseRecode39 }),
		{Name: "entity_axis_conditions", Type: TypeStructList, check: checkEntityConditions},
		{Name: "record_axis_conditions", Type: TypeEnumList, check: checkRecordConditions},
		enumCol("race_recode_6", codes.RaceRecode6.Labels(), func(r *dataset.Row) *string { return r.RaceRecode6 }),
		enumCol("hispanic_origin", codes.HispanicOrigin.Labels(), func(r *dataset.Row) *string { return r.HispanicOrigin }),
		enumCol("hispanic_origin_race_recode", codes.HispanicOriginRaceRecode.Labels(), func(r *dataset.Row) *string { return r.HispanicOriginRaceRecode }),
		{Name: "race_recode_40", Type: TypeEnumList, check: func(row *dataset.Row) error {
			for _, v := range row.RaceRecode40 {
				if _, ok := raceSingle[v]; !ok {
					return fmt.Errorf("label %q not in single-race value set", v)
				}
			}
			return nil
		}},
		categoricalCol("decedent_occupation_code", func(r *dataset.Row) *string { return r.OccupationCode }),
		enumCol("decedent_occupation_recode", codes.OccupationRecode.Labels(), func(r *dataset.Row) *string { return r.OccupationRecode }),
		categoricalCol("decedent_industry_code", func(r *dataset.Row) *string { return r.IndustryCode }),
		enumCol("decedent_industry_recode", codes.IndustryRecode.Labels(), func(r *dataset.Row) *string { return r.IndustryRecode }),
	}
	return &Schema{cols: cols}
}

// checkAgeBounds enforces that the two age bound columns travel together and
// form a valid range.
func checkAgeBounds(row *dataset.Row) error {
	lo, hi := row.AgeLowerBound, row.AgeUpperBound
	if (lo == nil) != (hi == nil) {
		return fmt.Errorf("age bounds must both be present or both absent")
	}
	if lo != nil && *lo > *hi {
		return fmt.Errorf("age lower bound %d exceeds upper bound %d", *lo, *hi)
	}
	return nil
}

func checkEntityConditions(row *dataset.Row) error {
	for _, c := range row.EntityAxisConditions {
		if c.Part != dataset.PartI && c.Part != dataset.PartII {
			return fmt.Errorf("certificate part %q not in enum value set", c.Part)
		}
		if c.Line < 1 || c.Line > 7 {
			return fmt.Errorf("certificate line %d outside 1-7", c.Line)
		}
		if c.Condition == "" {
			return fmt.Errorf("empty condition code")
		}
	}
	return nil
}

func checkRecordConditions(row *dataset.Row) error {
	for _, c := range row.RecordAxisConditions {
		if c == "" {
			return fmt.Errorf("empty condition code")
		}
	}
	return nil
}
