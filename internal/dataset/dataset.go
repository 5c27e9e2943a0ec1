// Package dataset defines the typed row and table model produced by the
// decoding pipeline.
//
// A Row is one decoded death record with derived values already resolved
// (single age range, collected condition lists). A Table is the ordered set of
// rows for one input file; row order always equals input line order. Rows use
// pointer fields for optional values so that "absent" survives all the way to
// the sink without sentinel values.
package dataset

// Millis is a duration in milliseconds. Ages are stored as millisecond
// ranges; nanosecond-based time.Duration overflows int64 at the 999-year
// open-ended upper bound, so a dedicated unit is used instead.
type Millis int64

// Fixed conversion constants for age arithmetic. These mirror the official
// code-table semantics (a month is 30 days, a year 365 days) rather than any
// calendar notion.
const (
	Minute Millis = 60_000
	Hour   Millis = 60 * Minute
	Day    Millis = 24 * Hour
	Month  Millis = 30 * Day
	Year   Millis = 365 * Day
)

// AgeRange is an inclusive lower/upper age bound pair in milliseconds.
// Exact ages have Lower == Upper.
type AgeRange struct {
	Lower Millis
	Upper Millis
}

// Exact returns an AgeRange with both bounds set to m.
func Exact(m Millis) AgeRange { return AgeRange{Lower: m, Upper: m} }

// CertificatePart identifies which part of the death certificate an
// entity-axis condition was recorded on.
type CertificatePart string

const (
	PartI  CertificatePart = "PART_I"
	PartII CertificatePart = "PART_II"
)

// EntityCondition is one entity-axis cause-of-death entry: where it appears
// on the certificate plus the condition code itself.
type EntityCondition struct {
	Part      CertificatePart
	Line      int8 // sequence of the condition within the part/line, 1..7
	Condition string
}

// Row is one fully assembled output record. Optional scalar columns are
// pointers (nil = absent); list columns are nil or non-empty, never holding
// placeholder entries for blank slots.
type Row struct {
	RecordType               *string
	ResidentStatus           *string
	Education                *string
	MonthOfDeath             *int8
	Sex                      *string
	AgeLowerBound            *Millis
	AgeUpperBound            *Millis
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
	EntityAxisConditions     []EntityCondition
	RecordAxisConditions     []string
	RaceRecode6              *string
	HispanicOrigin           *string
	HispanicOriginRaceRecode *string
	RaceRecode40             []string
	OccupationCode           *string
	OccupationRecode         *string
	IndustryCode             *string
	IndustryRecode           *string
}

// Table is the ordered collection of decoded rows for one input file.
// Certified is set by the schema caster after every row has been checked
// against the declared output schema; sinks should refuse uncertified tables.
type Table struct {
	Rows      []Row
	Certified bool
}

// Append concatenates other onto t, preserving order.
func (t *Table) Append(other *Table) {
	t.Rows = append(t.Rows, other.Rows...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }
