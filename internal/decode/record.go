// Package decode turns raw fixed-width line segments into typed field values.
//
// One decoder exists per layout.FieldKind; decoders are selected through a
// closed dispatch table indexed by kind, built once at package init, so the
// per-line loop performs no string matching. Every decoder follows the same
// contract: a blank (fully trimmed) value is a successful absent result, a
// known-but-unlabeled code is a successful absent result, and anything
// outside the field's published code table is a DecodeError. The only
// exceptions are the two flag fields whose blank value means false, and the
// documented fields whose out-of-range codes degrade to absent.
package decode

import (
	"fmt"

	"mmcd/internal/dataset"
)

// Record holds every decoded field of one line, including the intermediate
// fields (alternative age encodings, condition counts, administrative flags)
// that the assembler consumes and drops. Pointer fields are nil when the
// input was blank or the code was valid but unlabeled.
type Record struct {
	RecordType               *string
	ResidentStatus           *string
	Education                *string
	EducationReportingFlag   *string
	MonthOfDeath             *int8
	Sex                      *string
	DetailAge                *dataset.AgeRange
	AgeSubstitutionFlag      bool
	AgeRecode52              *dataset.AgeRange
	AgeRecode27              *dataset.AgeRange
	AgeRecode12              *dataset.AgeRange
	InfantAgeRecode22        *dataset.AgeRange
	PlaceOfDeath             *string
	MaritalStatus            *string
	DayOfWeekOfDeath         *string
	InjuryAtWork             *bool
	MannerOfDeath            *string
	MethodOfDisposition      *string
	Autopsy                  *bool
	ActivityCode             *string
	PlaceOfInjury            *string
	ICDCode                  *string
	CauseRecode358           *string
	CauseRecode113           *string
	InfantCauseRecode130     *string
	CauseRecode39            *int8
	EntityConditionCount     *int8
	EntityConditions         [20]*dataset.EntityCondition
	RecordConditionCount     *int8
	RecordConditions         [20]*string
	RaceImputationFlag       bool
	RaceRecode6              *string
	HispanicOrigin           *string
	HispanicOriginRaceRecode *string
	RaceRecode40             []string
	OccupationCode           *string
	OccupationRecode         *string
	IndustryCode             *string
	IndustryRecode           *string
}

// Error describes a single field whose raw text violates its decoder's
// contract. It is fatal to the line it occurred on.
type Error struct {
	Field  string // field name, with slot suffix for repeated groups
	Raw    string // offending trimmed raw text
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("decode %s: invalid value %q: %s", e.Field, e.Raw, e.Reason)
}

func errf(field, raw, format string, args ...any) error {
	return &Error{Field: field, Raw: raw, Reason: fmt.Sprintf(format, args...)}
}
