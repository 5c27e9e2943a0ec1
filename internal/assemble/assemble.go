// Package assemble builds finished output rows from fully decoded records.
//
// The assembler owns the derivations that span multiple raw fields: resolving
// the five alternative age encodings into one range, collecting the repeated
// condition slots into lists, and discarding the intermediate and
// administrative fields that exist only to feed those derivations. It
// performs no error recovery; a record only reaches this package after every
// field decoded cleanly.
package assemble

import (
	"mmcd/internal/dataset"
	"mmcd/internal/decode"
)

// resolveAge picks the age range for a record following the fixed precedence
// order: exact detail age, then the infant recode, then the 52/27/12-way
// recodes. A record never legitimately mixes two encodings, so the first
// populated field wins outright.
func resolveAge(rec *decode.Record) *dataset.AgeRange {
	for _, r := range [...]*dataset.AgeRange{
		rec.DetailAge,
		rec.InfantAgeRecode22,
		rec.AgeRecode52,
		rec.AgeRecode27,
		rec.AgeRecode12,
	} {
		if r != nil {
			return r
		}
	}
	return nil
}

// Row converts one decoded record into an output row.
//
// Dropped on the way out: the five raw age fields (replaced by the resolved
// bounds), both condition counts (replaced by the collected lists), the
// education reporting flag, the age substitution flag, and the race
// imputation flag.
func Row(rec *decode.Record) dataset.Row {
	row := dataset.Row{
		RecordType:               rec.RecordType,
		ResidentStatus:           rec.ResidentStatus,
		Education:                rec.Education,
		MonthOfDeath:             rec.MonthOfDeath,
		Sex:                      rec.Sex,
		PlaceOfDeath:             rec.PlaceOfDeath,
		MaritalStatus:            rec.MaritalStatus,
		DayOfWeekOfDeath:         rec.DayOfWeekOfDeath,
		InjuryAtWork:             rec.InjuryAtWork,
		MannerOfDeath:            rec.MannerOfDeath,
		MethodOfDisposition:      rec.MethodOfDisposition,
		Autopsy:                  rec.Autopsy,
		ActivityCode:             rec.ActivityCode,
		PlaceOfInjury:            rec.PlaceOfInjury,
		ICDCode:                  rec.ICDCode,
		CauseRecode358:           rec.CauseRecode358,
		CauseRecode113:           rec.CauseRecode113,
		InfantCauseRecode130:     rec.InfantCauseRecode130,
		CauseRecode39:            rec.CauseRecode39,
		RaceRecode6:              rec.RaceRecode6,
		HispanicOrigin:           rec.HispanicOrigin,
		HispanicOriginRaceRecode: rec.HispanicOriginRaceRecode,
		RaceRecode40:             rec.RaceRecode40,
		OccupationCode:           rec.OccupationCode,
		OccupationRecode:         rec.OccupationRecode,
		IndustryCode:             rec.IndustryCode,
		IndustryRecode:           rec.IndustryRecode,
	}

	if age := resolveAge(rec); age != nil {
		lower, upper := age.Lower, age.Upper
		row.AgeLowerBound = &lower
		row.AgeUpperBound = &upper
	}

	// Condition lists keep certificate order; blank slots contribute nothing.
	for _, c := range rec.EntityConditions {
		if c != nil {
			row.EntityAxisConditions = append(row.EntityAxisConditions, *c)
		}
	}
	for _, c := range rec.RecordConditions {
		if c != nil {
			row.RecordAxisConditions = append(row.RecordAxisConditions, *c)
		}
	}

	return row
}
