package decode

import (
	"strconv"

	"mmcd/internal/dataset"
	"mmcd/internal/layout"
)

// Age handling. Every age field materializes as a millisecond range: detail
// age is exact (lower == upper), the recode tables map each code to the
// inclusive band boundaries of the official code table. Band boundaries are
// computed from the table's start/end formulas, not transcribed per code.

// decodeDetailAge parses the 4-byte detail age: a 1-digit unit selector
// followed by a count. Units: 1 years, 2 months, 4 days, 5 hours, 6 minutes.
// Unsupported selectors (including 9 = age not stated) yield absent.
func decodeDetailAge(seg layout.Segment, rec *Record) error {
	if seg.Raw == "" {
		return nil
	}
	if len(seg.Raw) < 2 {
		return errf(fieldName(seg), seg.Raw, "detail age too short")
	}
	unit, err := strconv.Atoi(seg.Raw[:1])
	if err != nil {
		return errf(fieldName(seg), seg.Raw, "unit selector not an integer")
	}
	count, err := strconv.Atoi(seg.Raw[1:])
	if err != nil {
		return errf(fieldName(seg), seg.Raw, "age count not an integer")
	}

	var mult dataset.Millis
	switch unit {
	case 1:
		mult = dataset.Year
	case 2:
		mult = dataset.Month
	case 4:
		mult = dataset.Day
	case 5:
		mult = dataset.Hour
	case 6:
		mult = dataset.Minute
	default:
		return nil
	}
	r := dataset.Exact(dataset.Millis(count) * mult)
	rec.DetailAge = &r
	return nil
}

// bandFn computes the age range for a recode value, or reports that the value
// is outside the table's valued bands.
type bandFn func(v int) (dataset.AgeRange, bool)

// ageRecode builds a decoder for one age recode table. notStated is the
// table's "age not stated" code (absent, not an error); 0 means the table has
// no such code (the infant recode, where blank already covers it).
func ageRecode(bands bandFn, notStated int, field func(*Record) **dataset.AgeRange) decodeFn {
	return func(seg layout.Segment, rec *Record) error {
		if seg.Raw == "" {
			return nil
		}
		v, err := parseInt(seg)
		if err != nil {
			return err
		}
		if r, ok := bands(v); ok {
			*field(rec) = &r
			return nil
		}
		if notStated != 0 && v == notStated {
			return nil
		}
		return errf(fieldName(seg), seg.Raw, "recode out of range")
	}
}

// ageBands52: the 52-way recode. Bands: under 1 hour, 1-23 hours, single
// days 1-7 then 7-13/14-20/21-27 day weeks... months, single years, and
// 5-year groups up to the open-ended 125+ band.
func ageBands52(v int) (dataset.AgeRange, bool) {
	switch {
	case v == 1:
		return dataset.AgeRange{Lower: 0, Upper: dataset.Hour}, true
	case v == 2:
		return dataset.AgeRange{Lower: dataset.Hour, Upper: 23 * dataset.Hour}, true
	case v >= 3 && v <= 9:
		i := dataset.Millis(v - 2)
		return dataset.Exact(i * dataset.Day), true
	case v >= 10 && v <= 11:
		i := dataset.Millis(v - 10)
		return dataset.AgeRange{
			Lower: (14 + 7*i) * dataset.Day,
			Upper: (13 + 7*(i+1)) * dataset.Day,
		}, true
	case v >= 12 && v <= 22:
		i := dataset.Millis(v - 11)
		return dataset.Exact(i * dataset.Month), true
	case v >= 23 && v <= 26:
		i := dataset.Millis(v - 22)
		return dataset.Exact(i * dataset.Year), true
	case v >= 27 && v <= 50:
		i := dataset.Millis(v - 27)
		return dataset.AgeRange{
			Lower: (5 + 5*i) * dataset.Year,
			Upper: (4 + 5*(i+1)) * dataset.Year,
		}, true
	case v == 51:
		return dataset.AgeRange{Lower: 125 * dataset.Year, Upper: 999 * dataset.Year}, true
	}
	return dataset.AgeRange{}, false
}

// ageBands27: the 27-way recode.
func ageBands27(v int) (dataset.AgeRange, bool) {
	switch {
	case v == 1:
		return dataset.AgeRange{Lower: 0, Upper: dataset.Month}, true
	case v == 2:
		return dataset.AgeRange{Lower: dataset.Month, Upper: 11 * dataset.Month}, true
	case v >= 3 && v <= 6:
		i := dataset.Millis(v - 2)
		return dataset.Exact(i * dataset.Year), true
	case v >= 7 && v <= 25:
		i := dataset.Millis(v - 7)
		return dataset.AgeRange{
			Lower: (5 + 5*i) * dataset.Year,
			Upper: (4 + 5*(i+1)) * dataset.Year,
		}, true
	case v == 26:
		return dataset.AgeRange{Lower: 100 * dataset.Year, Upper: 999 * dataset.Year}, true
	}
	return dataset.AgeRange{}, false
}

// ageBands12: the 12-way recode.
func ageBands12(v int) (dataset.AgeRange, bool) {
	switch {
	case v == 1:
		return dataset.AgeRange{Lower: 0, Upper: 11 * dataset.Month}, true
	case v == 2:
		return dataset.AgeRange{Lower: 1 * dataset.Year, Upper: 4 * dataset.Year}, true
	case v >= 3 && v <= 10:
		i := dataset.Millis(v - 3)
		return dataset.AgeRange{
			Lower: (5 + 10*i) * dataset.Year,
			Upper: (4 + 10*(i+1)) * dataset.Year,
		}, true
	case v == 11:
		return dataset.AgeRange{Lower: 85 * dataset.Year, Upper: 999 * dataset.Year}, true
	}
	return dataset.AgeRange{}, false
}

// ageBands22: the infant 22-way recode; only defined for deaths under one
// year, so blank (not a code) covers "1 year and over or not stated".
func ageBands22(v int) (dataset.AgeRange, bool) {
	switch {
	case v == 1:
		return dataset.AgeRange{Lower: 0, Upper: 59 * dataset.Minute}, true
	case v == 2:
		return dataset.AgeRange{Lower: dataset.Hour, Upper: 23 * dataset.Hour}, true
	case v >= 3 && v <= 8:
		i := dataset.Millis(v - 2)
		return dataset.Exact(i * dataset.Day), true
	case v >= 9 && v <= 11:
		i := dataset.Millis(v - 9)
		return dataset.AgeRange{
			Lower: (7 + 7*i) * dataset.Day,
			Upper: (6 + 7*(i+1)) * dataset.Day,
		}, true
	case v >= 12 && v <= 22:
		i := dataset.Millis(v - 11)
		return dataset.Exact(i * dataset.Month), true
	}
	return dataset.AgeRange{}, false
}
