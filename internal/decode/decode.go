package decode

import (
	"strconv"

	"mmcd/internal/codes"
	"mmcd/internal/dataset"
	"mmcd/internal/layout"
)

// decodeFn decodes one trimmed segment value into rec. seg.Raw may be empty.
type decodeFn func(seg layout.Segment, rec *Record) error

// decoders is the closed dispatch table, indexed by layout.FieldKind.
var decoders [layout.KindCount]decodeFn

func init() {
	decoders[layout.KindRecordType] = intLookup(codes.RecordType, func(r *Record) **string { return &r.RecordType })
	decoders[layout.KindResidentStatus] = intLookup(codes.ResidentStatus, func(r *Record) **string { return &r.ResidentStatus })
	decoders[layout.KindEducation] = intLookup(codes.Education, func(r *Record) **string { return &r.Education })
	decoders[layout.KindEducationReportingFlag] = intLookup(codes.EducationReportingFlag, func(r *Record) **string { return &r.EducationReportingFlag })
	decoders[layout.KindMonthOfDeath] = decodeMonthOfDeath
	decoders[layout.KindSex] = codeLookup(codes.Sex, func(r *Record) **string { return &r.Sex })
	decoders[layout.KindDetailAge] = decodeDetailAge
	decoders[layout.KindAgeSubstitutionFlag] = decodeAgeSubstitutionFlag
	decoders[layout.KindAgeRecode52] = ageRecode(ageBands52, 52, func(r *Record) **dataset.AgeRange { return &r.AgeRecode52 })
	decoders[layout.KindAgeRecode27] = ageRecode(ageBands27, 27, func(r *Record) **dataset.AgeRange { return &r.AgeRecode27 })
	decoders[layout.KindAgeRecode12] = ageRecode(ageBands12, 12, func(r *Record) **dataset.AgeRange { return &r.AgeRecode12 })
	decoders[layout.KindInfantAgeRecode22] = ageRecode(ageBands22, 0, func(r *Record) **dataset.AgeRange { return &r.InfantAgeRecode22 })
	decoders[layout.KindPlaceOfDeath] = intLookup(codes.PlaceOfDeath, func(r *Record) **string { return &r.PlaceOfDeath })
	decoders[layout.KindMaritalStatus] = codeLookup(codes.MaritalStatus, func(r *Record) **string { return &r.MaritalStatus })
	decoders[layout.KindDayOfWeekOfDeath] = intLookup(codes.DayOfWeekOfDeath, func(r *Record) **string { return &r.DayOfWeekOfDeath })
	decoders[layout.KindInjuryAtWork] = yesNoUnknown(func(r *Record) **bool { return &r.InjuryAtWork })
	decoders[layout.KindMannerOfDeath] = intLookup(codes.MannerOfDeath, func(r *Record) **string { return &r.MannerOfDeath })
	decoders[layout.KindMethodOfDisposition] = codeLookup(codes.MethodOfDisposition, func(r *Record) **string { return &r.MethodOfDisposition })
	decoders[layout.KindAutopsy] = yesNoUnknown(func(r *Record) **bool { return &r.Autopsy })
	decoders[layout.KindActivityCode] = intLookup(codes.ActivityCode, func(r *Record) **string { return &r.ActivityCode })
	decoders[layout.KindPlaceOfInjury] = intLookup(codes.PlaceOfInjury, func(r *Record) **string { return &r.PlaceOfInjury })
	decoders[layout.KindICDCode] = passthrough(func(r *Record) **string { return &r.ICDCode })
	decoders[layout.KindCauseRecode358] = passthrough(func(r *Record) **string { return &r.CauseRecode358 })
	decoders[layout.KindCauseRecode113] = passthrough(func(r *Record) **string { return &r.CauseRecode113 })
	decoders[layout.KindInfantCauseRecode130] = passthrough(func(r *Record) **string { return &r.InfantCauseRecode130 })
	decoders[layout.KindCauseRecode39] = decodeCauseRecode39
	decoders[layout.KindEntityConditionCount] = conditionCount(func(r *Record) **int8 { return &r.EntityConditionCount })
	decoders[layout.KindEntityCondition] = decodeEntityCondition
	decoders[layout.KindRecordConditionCount] = conditionCount(func(r *Record) **int8 { return &r.RecordConditionCount })
	decoders[layout.KindRecordCondition] = decodeRecordCondition
	decoders[layout.KindRaceImputationFlag] = decodeRaceImputationFlag
	decoders[layout.KindRaceRecode6] = intLookup(codes.RaceRecode6, func(r *Record) **string { return &r.RaceRecode6 })
	decoders[layout.KindHispanicOrigin] = decodeHispanicOrigin
	decoders[layout.KindHispanicOriginRaceRecode] = intLookup(codes.HispanicOriginRaceRecode, func(r *Record) **string { return &r.HispanicOriginRaceRecode })
	decoders[layout.KindRaceRecode40] = decodeRaceRecode40
	decoders[layout.KindOccupationCode] = passthrough(func(r *Record) **string { return &r.OccupationCode })
	decoders[layout.KindOccupationRecode] = intLookup(codes.OccupationRecode, func(r *Record) **string { return &r.OccupationRecode })
	decoders[layout.KindIndustryCode] = passthrough(func(r *Record) **string { return &r.IndustryCode })
	decoders[layout.KindIndustryRecode] = intLookup(codes.IndustryRecode, func(r *Record) **string { return &r.IndustryRecode })
}

// Line decodes one raw line against cat. The first failing field aborts the
// line and is returned as a *Error.
func Line(cat *layout.Catalog, line string) (*Record, error) {
	rec := &Record{}
	err := cat.Cut(line, func(seg layout.Segment) error {
		fn := decoders[seg.Kind]
		if fn == nil {
			return errf(fieldName(seg), seg.Raw, "no decoder registered")
		}
		return fn(seg, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func fieldName(seg layout.Segment) string {
	return layout.FieldSpec{Kind: seg.Kind, Slot: seg.Slot}.Name()
}

// parseInt parses a non-empty trimmed value as a base-10 integer. A parse
// failure is always a decode error, regardless of what lookup would follow.
func parseInt(seg layout.Segment) (int, error) {
	v, err := strconv.Atoi(seg.Raw)
	if err != nil {
		return 0, errf(fieldName(seg), seg.Raw, "not an integer")
	}
	return v, nil
}

// codeLookup decodes a direct string-keyed code table field.
func codeLookup(t *codes.Table[string], field func(*Record) **string) decodeFn {
	return func(seg layout.Segment, rec *Record) error {
		if seg.Raw == "" {
			return nil
		}
		label, labeled, known := t.Lookup(seg.Raw)
		if !known {
			return errf(fieldName(seg), seg.Raw, "code not in table")
		}
		if labeled {
			*field(rec) = &label
		}
		return nil
	}
}

// intLookup decodes an integer-keyed code table field: parse first, then the
// same lookup policy as codeLookup.
func intLookup(t *codes.Table[int], field func(*Record) **string) decodeFn {
	return func(seg layout.Segment, rec *Record) error {
		if seg.Raw == "" {
			return nil
		}
		v, err := parseInt(seg)
		if err != nil {
			return err
		}
		label, labeled, known := t.Lookup(v)
		if !known {
			return errf(fieldName(seg), seg.Raw, "code not in table")
		}
		if labeled {
			*field(rec) = &label
		}
		return nil
	}
}

// passthrough accepts any non-empty value verbatim as an opaque code.
func passthrough(field func(*Record) **string) decodeFn {
	return func(seg layout.Segment, rec *Record) error {
		if seg.Raw == "" {
			return nil
		}
		v := seg.Raw
		*field(rec) = &v
		return nil
	}
}

// yesNoUnknown decodes the Y/N/U boolean-shaped fields. U is a valid code
// with no value; anything else outside Y/N is an error.
func yesNoUnknown(field func(*Record) **bool) decodeFn {
	return func(seg layout.Segment, rec *Record) error {
		switch seg.Raw {
		case "":
			return nil
		case "Y":
			v := true
			*field(rec) = &v
		case "N":
			v := false
			*field(rec) = &v
		case "U":
			// valid, unknown: stays absent
		default:
			return errf(fieldName(seg), seg.Raw, "code not in table")
		}
		return nil
	}
}

func decodeMonthOfDeath(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		return nil
	}
	v, err := parseInt(seg)
	if err != nil {
		return err
	}
	if v < 1 || v > 12 {
		return errf(fieldName(seg), seg.Raw, "month out of range 1-12")
	}
	m := int8(v)
	rec.MonthOfDeath = &m
	return nil
}

// decodeCauseRecode39 parses the 39-group cause recode. Out-of-range values
// degrade to absent rather than erroring; the published table treats codes
// outside 1-42 as residual, unlike month-of-death where out-of-range is
// always a data error.
func decodeCauseRecode39(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		return nil
	}
	v, err := parseInt(seg)
	if err != nil {
		return err
	}
	if v >= 1 && v <= 42 {
		c := int8(v)
		rec.CauseRecode39 = &c
	}
	return nil
}

func conditionCount(field func(*Record) **int8) decodeFn {
	return func(seg layout.Segment, rec *Record) error {
		if seg.Raw == "" {
			return nil
		}
		v, err := parseInt(seg)
		if err != nil {
			return err
		}
		if v < 0 || v > 20 {
			return errf(fieldName(seg), seg.Raw, "condition count out of range 0-20")
		}
		n := int8(v)
		*field(rec) = &n
		return nil
	}
}

// decodeEntityCondition splits a 7-byte entity-axis slot into certificate
// part (first digit: 1-5 = Part I, 6 = Part II), sequence within the
// part/line (second digit), and the condition code (remainder).
func decodeEntityCondition(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		return nil
	}
	if len(seg.Raw) < 2 {
		return errf(fieldName(seg), seg.Raw, "condition slot too short")
	}
	partLine, err := strconv.Atoi(seg.Raw[:1])
	if err != nil {
		return errf(fieldName(seg), seg.Raw, "part/line digit not an integer")
	}
	line, err := strconv.Atoi(seg.Raw[1:2])
	if err != nil {
		return errf(fieldName(seg), seg.Raw, "sequence digit not an integer")
	}
	part := dataset.PartI
	if partLine > 5 {
		part = dataset.PartII
	}
	rec.EntityConditions[seg.Slot-1] = &dataset.EntityCondition{
		Part:      part,
		Line:      int8(line),
		Condition: seg.Raw[2:],
	}
	return nil
}

func decodeRecordCondition(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		return nil
	}
	v := seg.Raw
	rec.RecordConditions[seg.Slot-1] = &v
	return nil
}

// decodeAgeSubstitutionFlag: blank means "calculated age not substituted",
// i.e. false rather than absent.
func decodeAgeSubstitutionFlag(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		rec.AgeSubstitutionFlag = false
		return nil
	}
	v, err := parseInt(seg)
	if err != nil {
		return err
	}
	if v != 1 {
		return errf(fieldName(seg), seg.Raw, "flag must be blank or 1")
	}
	rec.AgeSubstitutionFlag = true
	return nil
}

// decodeRaceImputationFlag: blank means "race not imputed" (false). Codes 1
// (unknown race imputed) and 2 (all-other-races imputed) both mean true.
func decodeRaceImputationFlag(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		rec.RaceImputationFlag = false
		return nil
	}
	v, err := parseInt(seg)
	if err != nil {
		return err
	}
	if v != 1 && v != 2 {
		return errf(fieldName(seg), seg.Raw, "flag must be blank, 1 or 2")
	}
	rec.RaceImputationFlag = true
	return nil
}

func decodeHispanicOrigin(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		return nil
	}
	v, err := parseInt(seg)
	if err != nil {
		return err
	}
	label, labeled, known := codes.HispanicOrigin.Lookup(v)
	if !known {
		return errf(fieldName(seg), seg.Raw, "code not in any range")
	}
	if labeled {
		rec.HispanicOrigin = &label
	}
	return nil
}

// decodeRaceRecode40 maps single-race codes (1-14) to a one-element list and
// decomposes composite codes (15-40) into their constituent races. On the
// decomposed path only, the generic ASIAN and NHOPI components are renamed to
// the residual single-race buckets OTHER_ASIAN and OTHER_PACIFIC_ISLANDER,
// since a composite record does not identify the specific Asian or Pacific
// Islander group. Direct single-race codes are never renamed.
func decodeRaceRecode40(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		return nil
	}
	v, err := parseInt(seg)
	if err != nil {
		return err
	}
	label, _, known := codes.RaceRecode40.Lookup(v)
	if !known {
		return errf(fieldName(seg), seg.Raw, "code not in table")
	}
	if v <= codes.RaceRecode40SingleMax {
		rec.RaceRecode40 = []string{label}
		return nil
	}
	parts := splitComposite(label)
	for i, p := range parts {
		switch p {
		case "ASIAN":
			parts[i] = "OTHER_ASIAN"
		case "NHOPI":
			parts[i] = "OTHER_PACIFIC_ISLANDER"
		}
	}
	rec.RaceRecode40 = parts
	return nil
}

// splitComposite splits an underscore-joined composite race label into its
// components.
func splitComposite(label string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(label); i++ {
		if label[i] == '_' {
			parts = append(parts, label[start:i])
			start = i + 1
		}
	}
	return append(parts, label[start:])
}
