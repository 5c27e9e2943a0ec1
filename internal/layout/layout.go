// Package layout describes the fixed-width record layout of a mortality
// public use file and slices raw lines into per-field segments.
//
// A layout is an ordered list of 1-indexed, inclusive byte ranges, each bound
// to a field kind. Construction validates the whole layout up front
// (ordering, overlap, gap-free coverage); a malformed layout is a
// configuration error fatal to the run, never a per-line error. Dispatch is a
// closed FieldKind enum so the per-line hot loop never touches field-name
// strings.
package layout

import (
	"fmt"
	"strings"
)

// FieldKind enumerates every decodable field of the record layout. Reserved
// filler ranges use KindReserved and are skipped by Cut.
type FieldKind uint8

const (
	KindReserved FieldKind = iota
	KindRecordType
	KindResidentStatus
	KindEducation
	KindEducationReportingFlag
	KindMonthOfDeath
	KindSex
	KindDetailAge
	KindAgeSubstitutionFlag
	KindAgeRecode52
	KindAgeRecode27
	KindAgeRecode12
	KindInfantAgeRecode22
	KindPlaceOfDeath
	KindMaritalStatus
	KindDayOfWeekOfDeath
	KindInjuryAtWork
	KindMannerOfDeath
	KindMethodOfDisposition
	KindAutopsy
	KindActivityCode
	KindPlaceOfInjury
	KindICDCode
	KindCauseRecode358
	KindCauseRecode113
	KindInfantCauseRecode130
	KindCauseRecode39
	KindEntityConditionCount
	KindEntityCondition
	KindRecordConditionCount
	KindRecordCondition
	KindRaceImputationFlag
	KindRaceRecode6
	KindHispanicOrigin
	KindHispanicOriginRaceRecode
	KindRaceRecode40
	KindOccupationCode
	KindOccupationRecode
	KindIndustryCode
	KindIndustryRecode

	// KindCount is the number of field kinds; it sizes dispatch tables.
	KindCount
)

var kindNames = [KindCount]string{
	KindReserved:                 "reserved_positions",
	KindRecordType:               "record_type",
	KindResidentStatus:           "resident_status",
	KindEducation:                "education",
	KindEducationReportingFlag:   "education_reporting_flag",
	KindMonthOfDeath:             "month_of_death",
	KindSex:                      "sex",
	KindDetailAge:                "detail_age",
	KindAgeSubstitutionFlag:      "age_substitution_flag",
	KindAgeRecode52:              "age_recode_52",
	KindAgeRecode27:              "age_recode_27",
	KindAgeRecode12:              "age_recode_12",
	KindInfantAgeRecode22:        "infant_age_recode_22",
	KindPlaceOfDeath:             "place_of_death",
	KindMaritalStatus:            "marital_status",
	KindDayOfWeekOfDeath:         "day_of_week_of_death",
	KindInjuryAtWork:             "injury_at_work",
	KindMannerOfDeath:            "manner_of_death",
	KindMethodOfDisposition:      "method_of_disposition",
	KindAutopsy:                  "autopsy",
	KindActivityCode:             "activity_code",
	KindPlaceOfInjury:            "place_of_injury",
	KindICDCode:                  "icd_code",
	KindCauseRecode358:           "cause_recode_358",
	KindCauseRecode113:           "cause_recode_113",
	KindInfantCauseRecode130:     "infant_cause_recode_130",
	KindCauseRecode39:            "cause_recode_39",
	KindEntityConditionCount:     "number_of_entity_axis_conditions",
	KindEntityCondition:          "entity_axis_condition",
	KindRecordConditionCount:     "number_of_record_axis_conditions",
	KindRecordCondition:          "record_axis_condition",
	KindRaceImputationFlag:       "race_imputation_flag",
	KindRaceRecode6:              "race_recode_6",
	KindHispanicOrigin:           "hispanic_origin",
	KindHispanicOriginRaceRecode: "hispanic_origin_race_recode",
	KindRaceRecode40:             "race_recode_40",
	KindOccupationCode:           "decedent_occupation_code",
	KindOccupationRecode:         "decedent_occupation_recode",
	KindIndustryCode:             "decedent_industry_code",
	KindIndustryRecode:           "decedent_industry_recode",
}

// String returns the field's snake_case name as used in documentation,
// configuration, and error messages.
func (k FieldKind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("field_kind_%d", uint8(k))
}

// FieldSpec binds one byte range of the record to a field kind. Start and End
// are 1-indexed and inclusive, matching the published layout documents. Slot
// is the 1-based index for repeated condition groups and 0 elsewhere.
type FieldSpec struct {
	Start int
	End   int
	Kind  FieldKind
	Slot  int
}

// Name returns the field name with the slot suffix for repeated groups, e.g.
// "entity_axis_condition_3".
func (s FieldSpec) Name() string {
	if s.Slot > 0 {
		return fmt.Sprintf("%s_%d", s.Kind, s.Slot)
	}
	return s.Kind.String()
}

// Segment is one sliced, whitespace-trimmed field of a raw line.
type Segment struct {
	Kind FieldKind
	Slot int
	Raw  string
}

// Catalog is a validated record layout.
type Catalog struct {
	specs  []FieldSpec
	length int
}

// New validates specs and builds a Catalog. Ranges must be 1-indexed,
// well-formed (Start <= End), strictly ordered, and cover the record without
// overlap or gap; the first range must start at byte 1.
func New(specs []FieldSpec) (*Catalog, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("layout: no field specs")
	}
	next := 1
	for i, s := range specs {
		if s.Start > s.End {
			return nil, fmt.Errorf("layout: %s: inverted range %d-%d", s.Name(), s.Start, s.End)
		}
		if s.Start < next {
			return nil, fmt.Errorf("layout: %s: range %d-%d overlaps or precedes byte %d", s.Name(), s.Start, s.End, next)
		}
		if s.Start > next {
			return nil, fmt.Errorf("layout: gap before %s: bytes %d-%d are unassigned (spec %d)", s.Name(), next, s.Start-1, i)
		}
		next = s.End + 1
	}
	return &Catalog{specs: specs, length: next - 1}, nil
}

// Length returns the record length in bytes covered by the layout.
func (c *Catalog) Length() int { return c.length }

// Cut slices line into segments and calls visit for each non-reserved field
// in layout order. Values are trimmed of surrounding whitespace before being
// handed over; fields past the end of a short line yield empty values. Cut
// stops at the first visit error and returns it.
func (c *Catalog) Cut(line string, visit func(Segment) error) error {
	for _, s := range c.specs {
		if s.Kind == KindReserved {
			continue
		}
		seg := Segment{Kind: s.Kind, Slot: s.Slot, Raw: slice(line, s.Start, s.End)}
		if err := visit(seg); err != nil {
			return err
		}
	}
	return nil
}

// slice extracts the 1-indexed inclusive byte range [start, end] from line,
// clamped to the line's actual length, and trims surrounding whitespace.
func slice(line string, start, end int) string {
	lo := start - 1
	if lo >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[lo:end])
}
