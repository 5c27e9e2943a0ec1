package assemble

import (
	"reflect"
	"testing"

	"mmcd/internal/dataset"
	"mmcd/internal/decode"
)

func agePtr(r dataset.AgeRange) *dataset.AgeRange { return &r }

func TestResolveAge_Precedence(t *testing.T) {
	t.Parallel()

	detail := agePtr(dataset.Exact(35 * dataset.Year))
	infant := agePtr(dataset.AgeRange{Lower: 0, Upper: 59 * dataset.Minute})
	r52 := agePtr(dataset.AgeRange{Lower: 30 * dataset.Year, Upper: 34 * dataset.Year})
	r27 := agePtr(dataset.AgeRange{Lower: 25 * dataset.Year, Upper: 29 * dataset.Year})
	r12 := agePtr(dataset.AgeRange{Lower: 25 * dataset.Year, Upper: 34 * dataset.Year})

	tests := []struct {
		name string
		rec  decode.Record
		want *dataset.AgeRange
	}{
		{
			name: "detail age wins over everything",
			rec:  decode.Record{DetailAge: detail, InfantAgeRecode22: infant, AgeRecode52: r52, AgeRecode27: r27, AgeRecode12: r12},
			want: detail,
		},
		{
			name: "infant recode beats the coarse recodes",
			rec:  decode.Record{InfantAgeRecode22: infant, AgeRecode52: r52, AgeRecode27: r27},
			want: infant,
		},
		{
			name: "52-way beats 27-way",
			rec:  decode.Record{AgeRecode52: r52, AgeRecode27: r27, AgeRecode12: r12},
			want: r52,
		},
		{
			name: "27-way beats 12-way",
			rec:  decode.Record{AgeRecode27: r27, AgeRecode12: r12},
			want: r27,
		},
		{
			name: "12-way alone",
			rec:  decode.Record{AgeRecode12: r12},
			want: r12,
		},
		{
			name: "nothing populated",
			rec:  decode.Record{},
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := resolveAge(&tt.rec)
			if got != tt.want {
				t.Fatalf("resolveAge = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRow_AgeBoundsTravelTogether(t *testing.T) {
	t.Parallel()

	rec := decode.Record{AgeRecode52: agePtr(dataset.AgeRange{Lower: 5 * dataset.Year, Upper: 9 * dataset.Year})}
	row := Row(&rec)
	if row.AgeLowerBound == nil || row.AgeUpperBound == nil {
		t.Fatalf("both bounds should be set, got lower=%v upper=%v", row.AgeLowerBound, row.AgeUpperBound)
	}
	if *row.AgeLowerBound != 5*dataset.Year || *row.AgeUpperBound != 9*dataset.Year {
		t.Fatalf("bounds = %d..%d, want 5y..9y", *row.AgeLowerBound, *row.AgeUpperBound)
	}

	row = Row(&decode.Record{})
	if row.AgeLowerBound != nil || row.AgeUpperBound != nil {
		t.Fatalf("absent age should leave both bounds nil")
	}
}

func TestRow_CollectsConditionsInCertificateOrder(t *testing.T) {
	t.Parallel()

	c1 := dataset.EntityCondition{Part: dataset.PartI, Line: 1, Condition: "I251"}
	c2 := dataset.EntityCondition{Part: dataset.PartII, Line: 2, Condition: "A419"}
	r1, r2 := "I251", "A419"

	var rec decode.Record
	// Populate slots 1 and 3, leaving slot 2 blank; the blank slot must not
	// produce a placeholder entry.
	rec.EntityConditions[0] = &c1
	rec.EntityConditions[2] = &c2
	rec.RecordConditions[0] = &r1
	rec.RecordConditions[2] = &r2

	row := Row(&rec)
	if want := []dataset.EntityCondition{c1, c2}; !reflect.DeepEqual(row.EntityAxisConditions, want) {
		t.Fatalf("EntityAxisConditions = %+v, want %+v", row.EntityAxisConditions, want)
	}
	if want := []string{"I251", "A419"}; !reflect.DeepEqual(row.RecordAxisConditions, want) {
		t.Fatalf("RecordAxisConditions = %v, want %v", row.RecordAxisConditions, want)
	}
}

func TestRow_EmptyConditionListsAreNil(t *testing.T) {
	t.Parallel()

	row := Row(&decode.Record{})
	if row.EntityAxisConditions != nil {
		t.Fatalf("EntityAxisConditions = %v, want nil", row.EntityAxisConditions)
	}
	if row.RecordAxisConditions != nil {
		t.Fatalf("RecordAxisConditions = %v, want nil", row.RecordAxisConditions)
	}
}

func TestRow_DropsIntermediateFields(t *testing.T) {
	t.Parallel()

	flag := "2003_REVISION"
	n := int8(2)
	sex := "F"
	rec := decode.Record{
		Sex:                    &sex,
		EducationReportingFlag: &flag,
		EntityConditionCount:   &n,
		RecordConditionCount:   &n,
		AgeSubstitutionFlag:    true,
		RaceImputationFlag:     true,
	}

	row := Row(&rec)
	if row.Sex == nil || *row.Sex != "F" {
		t.Fatalf("Sex = %v, want F", row.Sex)
	}
	// The row type has no home for the administrative fields; the counts are
	// replaced by the collected lists.
	if row.EntityAxisConditions != nil || row.RecordAxisConditions != nil {
		t.Fatalf("counts without slots should yield empty lists")
	}
}
