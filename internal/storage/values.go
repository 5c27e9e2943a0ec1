package storage

import (
	"encoding/json"
	"fmt"

	"mmcd/internal/dataset"
)

// TableColumns is the flattened column list shared by the database sinks.
// Scalar columns keep their schema names; the age bounds carry an explicit
// millisecond suffix and the list columns are stored as JSON text.
var TableColumns = []string{
	"record_type",
	"resident_status",
	"education",
	"month_of_death",
	"sex",
	"age_lower_bound_ms",
	"age_upper_bound_ms",
	"place_of_death",
	"marital_status",
	"day_of_week_of_death",
	"injury_at_work",
	"manner_of_death",
	"method_of_disposition",
	"autopsy",
	"activity_code",
	"place_of_injury",
	"icd_code",
	"cause_recode_358",
	"cause_recode_113",
	"infant_cause_recode_130",
	"cause_recode_39",
	"entity_axis_conditions",
	"record_axis_conditions",
	"race_recode_6",
	"hispanic_origin",
	"hispanic_origin_race_recode",
	"race_recode_40",
	"decedent_occupation_code",
	"decedent_occupation_recode",
	"decedent_industry_code",
	"decedent_industry_recode",
}

// conditionJSON is the JSON shape of one entity-axis condition.
type conditionJSON struct {
	Part      string `json:"part"`
	Line      int8   `json:"line"`
	Condition string `json:"condition"`
}

func jsonList[T any](items []T) (any, error) {
	if len(items) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func nilOr[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func millisOr(p *dataset.Millis) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}

// RowValues flattens one row into driver values aligned with TableColumns.
func RowValues(r *dataset.Row) ([]any, error) {
	entity := make([]conditionJSON, 0, len(r.EntityAxisConditions))
	for _, c := range r.EntityAxisConditions {
		entity = append(entity, conditionJSON{
			Part:      string(c.Part),
			Line:      c.Line,
			Condition: c.Condition,
		})
	}
	entityJSON, err := jsonList(entity)
	if err != nil {
		return nil, fmt.Errorf("storage: encode entity conditions: %w", err)
	}
	recordJSON, err := jsonList(r.RecordAxisConditions)
	if err != nil {
		return nil, fmt.Errorf("storage: encode record conditions: %w", err)
	}
	raceJSON, err := jsonList(r.RaceRecode40)
	if err != nil {
		return nil, fmt.Errorf("storage: encode race recode: %w", err)
	}

	return []any{
		nilOr(r.RecordType),
		nilOr(r.ResidentStatus),
		nilOr(r.Education),
		nilOr(r.MonthOfDeath),
		nilOr(r.Sex),
		millisOr(r.AgeLowerBound),
		millisOr(r.AgeUpperBound),
		nilOr(r.PlaceOfDeath),
		nilOr(r.MaritalStatus),
		nilOr(r.DayOfWeekOfDeath),
		nilOr(r.InjuryAtWork),
		nilOr(r.MannerOfDeath),
		nilOr(r.MethodOfDisposition),
		nilOr(r.Autopsy),
		nilOr(r.ActivityCode),
		nilOr(r.PlaceOfInjury),
		nilOr(r.ICDCode),
		nilOr(r.CauseRecode358),
		nilOr(r.CauseRecode113),
		nilOr(r.InfantCauseRecode130),
		nilOr(r.CauseRecode39),
		entityJSON,
		recordJSON,
		nilOr(r.RaceRecode6),
		nilOr(r.HispanicOrigin),
		nilOr(r.HispanicOriginRaceRecode),
		raceJSON,
		nilOr(r.OccupationCode),
		nilOr(r.OccupationRecode),
		nilOr(r.IndustryCode),
		nilOr(r.IndustryRecode),
	}, nil
}
