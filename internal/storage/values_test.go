package storage

import (
	"encoding/json"
	"reflect"
	"testing"

	"mmcd/internal/dataset"
)

func TestRowValues_AlignsWithTableColumns(t *testing.T) {
	t.Parallel()

	vals, err := RowValues(&dataset.Row{})
	if err != nil {
		t.Fatalf("RowValues: %v", err)
	}
	if len(vals) != len(TableColumns) {
		t.Fatalf("RowValues returned %d values for %d columns", len(vals), len(TableColumns))
	}
	// An empty row flattens to all NULLs.
	for i, v := range vals {
		if v != nil {
			t.Fatalf("column %s = %v, want nil for empty row", TableColumns[i], v)
		}
	}
}

func TestRowValues_ScalarsAndAges(t *testing.T) {
	t.Parallel()

	sex := "F"
	month := int8(7)
	work := false
	lo, hi := 5*dataset.Year, 9*dataset.Year
	vals, err := RowValues(&dataset.Row{
		Sex:           &sex,
		MonthOfDeath:  &month,
		InjuryAtWork:  &work,
		AgeLowerBound: &lo,
		AgeUpperBound: &hi,
	})
	if err != nil {
		t.Fatalf("RowValues: %v", err)
	}

	byName := map[string]any{}
	for i, v := range vals {
		byName[TableColumns[i]] = v
	}
	if byName["sex"] != "F" {
		t.Fatalf("sex = %v, want F", byName["sex"])
	}
	if byName["month_of_death"] != int8(7) {
		t.Fatalf("month_of_death = %v, want 7", byName["month_of_death"])
	}
	if byName["injury_at_work"] != false {
		t.Fatalf("injury_at_work = %v, want false", byName["injury_at_work"])
	}
	// Ages are stored as plain int64 milliseconds, not the domain type.
	if byName["age_lower_bound_ms"] != int64(lo) {
		t.Fatalf("age_lower_bound_ms = %v (%T), want %d", byName["age_lower_bound_ms"], byName["age_lower_bound_ms"], int64(lo))
	}
	if byName["age_upper_bound_ms"] != int64(hi) {
		t.Fatalf("age_upper_bound_ms = %v, want %d", byName["age_upper_bound_ms"], int64(hi))
	}
}

func TestRowValues_ListColumnsAsJSON(t *testing.T) {
	t.Parallel()

	row := dataset.Row{
		EntityAxisConditions: []dataset.EntityCondition{
			{Part: dataset.PartI, Line: 1, Condition: "I251"},
			{Part: dataset.PartII, Line: 2, Condition: "A419"},
		},
		RecordAxisConditions: []string{"I251", "A419"},
		RaceRecode40:         []string{"OTHER_ASIAN", "WHITE"},
	}
	vals, err := RowValues(&row)
	if err != nil {
		t.Fatalf("RowValues: %v", err)
	}
	byName := map[string]any{}
	for i, v := range vals {
		byName[TableColumns[i]] = v
	}

	var conds []conditionJSON
	if err := json.Unmarshal([]byte(byName["entity_axis_conditions"].(string)), &conds); err != nil {
		t.Fatalf("entity_axis_conditions is not valid JSON: %v", err)
	}
	want := []conditionJSON{
		{Part: "PART_I", Line: 1, Condition: "I251"},
		{Part: "PART_II", Line: 2, Condition: "A419"},
	}
	if !reflect.DeepEqual(conds, want) {
		t.Fatalf("entity_axis_conditions = %+v, want %+v", conds, want)
	}

	if got := byName["record_axis_conditions"]; got != `["I251","A419"]` {
		t.Fatalf("record_axis_conditions = %v", got)
	}
	if got := byName["race_recode_40"]; got != `["OTHER_ASIAN","WHITE"]` {
		t.Fatalf("race_recode_40 = %v", got)
	}
}

func TestRowValues_EmptyListsAreNull(t *testing.T) {
	t.Parallel()

	vals, err := RowValues(&dataset.Row{
		EntityAxisConditions: []dataset.EntityCondition{},
		RecordAxisConditions: []string{},
		RaceRecode40:         []string{},
	})
	if err != nil {
		t.Fatalf("RowValues: %v", err)
	}
	byName := map[string]any{}
	for i, v := range vals {
		byName[TableColumns[i]] = v
	}
	for _, col := range []string{"entity_axis_conditions", "record_axis_conditions", "race_recode_40"} {
		if byName[col] != nil {
			t.Fatalf("%s = %v, want NULL for empty list", col, byName[col])
		}
	}
}
