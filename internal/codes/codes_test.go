package codes

import (
	"reflect"
	"testing"
)

func TestTableLookup_ThreeWayOutcome(t *testing.T) {
	t.Parallel()

	tbl := New(
		lbl(1, "ONE"),
		unl(9),
	)

	label, labeled, known := tbl.Lookup(1)
	if label != "ONE" || !labeled || !known {
		t.Fatalf("Lookup(1) = (%q, %v, %v), want (ONE, true, true)", label, labeled, known)
	}

	label, labeled, known = tbl.Lookup(9)
	if label != "" || labeled || !known {
		t.Fatalf("Lookup(9) = (%q, %v, %v), want (\"\", false, true)", label, labeled, known)
	}

	_, labeled, known = tbl.Lookup(5)
	if labeled || known {
		t.Fatalf("Lookup(5) should be unknown, got labeled=%v known=%v", labeled, known)
	}
}

func TestTableLabels_DistinctDeclarationOrder(t *testing.T) {
	t.Parallel()

	tbl := New(
		lbl(1, "A"),
		unl(2),
		lbl(3, "B"),
		lbl(4, "A"), // duplicate label, kept once
	)
	want := []string{"A", "B"}
	if got := tbl.Labels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Labels() = %v, want %v", got, want)
	}
}

func TestRangeTableLookup(t *testing.T) {
	t.Parallel()

	rt := NewRanges(
		Band{100, 199, "LOW"},
		Band{900, 999, ""},
	)

	label, labeled, known := rt.Lookup(150)
	if label != "LOW" || !labeled || !known {
		t.Fatalf("Lookup(150) = (%q, %v, %v), want (LOW, true, true)", label, labeled, known)
	}
	_, labeled, known = rt.Lookup(950)
	if labeled || !known {
		t.Fatalf("Lookup(950) = labeled=%v known=%v, want unlabeled but known", labeled, known)
	}
	_, _, known = rt.Lookup(500)
	if known {
		t.Fatalf("Lookup(500) should be unknown")
	}
}

func TestHispanicOrigin_BandsAreDisjoint(t *testing.T) {
	t.Parallel()

	// Every value in 100-999 must match at most one band.
	for v := 0; v < 1100; v++ {
		matches := 0
		for _, b := range HispanicOrigin.bands {
			if b.Lo <= v && v <= b.Hi {
				matches++
			}
		}
		if matches > 1 {
			t.Fatalf("value %d matches %d bands, want at most 1", v, matches)
		}
	}

	// Spot-check boundaries between adjacent bands.
	for _, tc := range []struct {
		v    int
		want string
	}{
		{100, "NON_HISPANIC"},
		{199, "NON_HISPANIC"},
		{200, "SPANIARD"},
		{230, "CENTRAL_AMERICAN"},
		{231, "SOUTH_AMERICAN"},
		{280, "OTHER_HISPANIC"},
		{299, "OTHER_HISPANIC"},
	} {
		label, _, known := HispanicOrigin.Lookup(tc.v)
		if !known || label != tc.want {
			t.Fatalf("Lookup(%d) = (%q, known=%v), want %q", tc.v, label, known, tc.want)
		}
	}

	// 996-999 is valid but carries no label; 300-995 is outside the table.
	if _, labeled, known := HispanicOrigin.Lookup(998); labeled || !known {
		t.Fatalf("Lookup(998) should be known and unlabeled")
	}
	if _, _, known := HispanicOrigin.Lookup(500); known {
		t.Fatalf("Lookup(500) should be unknown")
	}
}

func TestRaceRecode40_FullCodeRange(t *testing.T) {
	t.Parallel()

	for v := 1; v <= 40; v++ {
		label, labeled, known := RaceRecode40.Lookup(v)
		if !known || !labeled || label == "" {
			t.Fatalf("Lookup(%d) = (%q, %v, %v); every race recode code is labeled", v, label, labeled, known)
		}
	}
	if _, _, known := RaceRecode40.Lookup(0); known {
		t.Fatalf("Lookup(0) should be unknown")
	}
	if _, _, known := RaceRecode40.Lookup(41); known {
		t.Fatalf("Lookup(41) should be unknown")
	}
	if RaceRecode40SingleMax != 14 {
		t.Fatalf("RaceRecode40SingleMax = %d, want 14", RaceRecode40SingleMax)
	}
}

func TestMannerOfDeath_AllCodesLabeled(t *testing.T) {
	t.Parallel()

	for v := 1; v <= 7; v++ {
		if _, labeled, known := MannerOfDeath.Lookup(v); !known || !labeled {
			t.Fatalf("MannerOfDeath code %d should be known and labeled", v)
		}
	}
}

func TestUnlabeledResidualCodes(t *testing.T) {
	t.Parallel()

	// Unknown/not-stated codes are valid lookups with no label.
	for name, check := range map[string]func() (string, bool, bool){
		"education 9":      func() (string, bool, bool) { return Education.Lookup(9) },
		"place of death 9": func() (string, bool, bool) { return PlaceOfDeath.Lookup(9) },
		"marital U":        func() (string, bool, bool) { return MaritalStatus.Lookup("U") },
		"activity 9":       func() (string, bool, bool) { return ActivityCode.Lookup(9) },
		"occupation 25":    func() (string, bool, bool) { return OccupationRecode.Lookup(25) },
		"industry 23":      func() (string, bool, bool) { return IndustryRecode.Lookup(23) },
		"hisp race 14":     func() (string, bool, bool) { return HispanicOriginRaceRecode.Lookup(14) },
	} {
		label, labeled, known := check()
		if !known || labeled || label != "" {
			t.Fatalf("%s = (%q, %v, %v), want known and unlabeled", name, label, labeled, known)
		}
	}
}
