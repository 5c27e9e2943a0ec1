package layout

// Mortality2022 returns the record layout of the 2022 Mortality Multiple
// Cause-of-Death public use file (positions 1-817). Ranges not listed in the
// documentation as decoded fields are reserved filler.
func Mortality2022() *Catalog {
	specs := []FieldSpec{
		{Start: 1, End: 18, Kind: KindReserved},
		{Start: 19, End: 19, Kind: KindRecordType},
		{Start: 20, End: 20, Kind: KindResidentStatus},
		{Start: 21, End: 62, Kind: KindReserved},
		{Start: 63, End: 63, Kind: KindEducation},
		{Start: 64, End: 64, Kind: KindEducationReportingFlag},
		{Start: 65, End: 66, Kind: KindMonthOfDeath},
		{Start: 67, End: 68, Kind: KindReserved},
		{Start: 69, End: 69, Kind: KindSex},
		{Start: 70, End: 73, Kind: KindDetailAge},
		{Start: 74, End: 74, Kind: KindAgeSubstitutionFlag},
		{Start: 75, End: 76, Kind: KindAgeRecode52},
		{Start: 77, End: 78, Kind: KindAgeRecode27},
		{Start: 79, End: 80, Kind: KindAgeRecode12},
		{Start: 81, End: 82, Kind: KindInfantAgeRecode22},
		{Start: 83, End: 83, Kind: KindPlaceOfDeath},
		{Start: 84, End: 84, Kind: KindMaritalStatus},
		{Start: 85, End: 85, Kind: KindDayOfWeekOfDeath},
		// 86-105 covers state/county occurrence data plus the constant data
		// year; neither is part of the output dataset.
		{Start: 86, End: 105, Kind: KindReserved},
		{Start: 106, End: 106, Kind: KindInjuryAtWork},
		{Start: 107, End: 107, Kind: KindMannerOfDeath},
		{Start: 108, End: 108, Kind: KindMethodOfDisposition},
		{Start: 109, End: 109, Kind: KindAutopsy},
		{Start: 110, End: 143, Kind: KindReserved},
		{Start: 144, End: 144, Kind: KindActivityCode},
		{Start: 145, End: 145, Kind: KindPlaceOfInjury},
		{Start: 146, End: 149, Kind: KindICDCode},
		{Start: 150, End: 152, Kind: KindCauseRecode358},
		{Start: 153, End: 153, Kind: KindReserved},
		{Start: 154, End: 156, Kind: KindCauseRecode113},
		{Start: 157, End: 159, Kind: KindInfantCauseRecode130},
		{Start: 160, End: 161, Kind: KindCauseRecode39},
		{Start: 162, End: 162, Kind: KindReserved},
		{Start: 163, End: 164, Kind: KindEntityConditionCount},
	}

	// 20 entity-axis condition slots, 7 bytes each, positions 165-304.
	for i := 0; i < 20; i++ {
		start := 165 + 7*i
		specs = append(specs, FieldSpec{Start: start, End: start + 6, Kind: KindEntityCondition, Slot: i + 1})
	}

	specs = append(specs,
		FieldSpec{Start: 305, End: 340, Kind: KindReserved},
		FieldSpec{Start: 341, End: 342, Kind: KindRecordConditionCount},
		FieldSpec{Start: 343, End: 343, Kind: KindReserved},
	)

	// 20 record-axis condition slots, 5 bytes each, positions 344-443.
	for i := 0; i < 20; i++ {
		start := 344 + 5*i
		specs = append(specs, FieldSpec{Start: start, End: start + 4, Kind: KindRecordCondition, Slot: i + 1})
	}

	specs = append(specs,
		FieldSpec{Start: 444, End: 447, Kind: KindReserved},
		FieldSpec{Start: 448, End: 448, Kind: KindRaceImputationFlag},
		FieldSpec{Start: 449, End: 449, Kind: KindReserved},
		FieldSpec{Start: 450, End: 450, Kind: KindRaceRecode6},
		FieldSpec{Start: 451, End: 483, Kind: KindReserved},
		FieldSpec{Start: 484, End: 486, Kind: KindHispanicOrigin},
		FieldSpec{Start: 487, End: 488, Kind: KindHispanicOriginRaceRecode},
		FieldSpec{Start: 489, End: 490, Kind: KindRaceRecode40},
		FieldSpec{Start: 491, End: 805, Kind: KindReserved},
		FieldSpec{Start: 806, End: 809, Kind: KindOccupationCode},
		FieldSpec{Start: 810, End: 811, Kind: KindOccupationRecode},
		FieldSpec{Start: 812, End: 815, Kind: KindIndustryCode},
		FieldSpec{Start: 816, End: 817, Kind: KindIndustryRecode},
	)

	cat, err := New(specs)
	if err != nil {
		// The built-in layout is static; failing validation is a programming
		// error, not a runtime condition.
		panic(err)
	}
	return cat
}
