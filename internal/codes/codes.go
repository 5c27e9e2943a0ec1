// Package codes models the published code tables that the decoders look
// values up in.
//
// Every table distinguishes three outcomes for a code:
//
//   - known and labeled: the code maps to a canonical label
//   - known but unlabeled: the code is valid per the data dictionary but has
//     no canonical output label (e.g. "unknown"); decoding succeeds with an
//     absent value
//   - unknown: the code is outside the table; decoding fails
//
// Collapsing the last two cases is the classic bug in consumers of these
// files, so tables store an explicit key set rather than a plain map whose
// zero value conflates "no label" with "no such code".
package codes

// Entry pairs a code with its optional canonical label. An empty Label marks
// a valid-but-unlabeled code.
type Entry[K comparable] struct {
	Code  K
	Label string
}

// Table is a closed code-to-label mapping with declaration order preserved.
type Table[K comparable] struct {
	entries []Entry[K]
	index   map[K]int
}

// New builds a Table from entries. Duplicate codes keep the first entry.
func New[K comparable](entries ...Entry[K]) *Table[K] {
	t := &Table[K]{entries: entries, index: make(map[K]int, len(entries))}
	for i, e := range entries {
		if _, dup := t.index[e.Code]; !dup {
			t.index[e.Code] = i
		}
	}
	return t
}

// Lookup resolves code. known reports whether the code exists in the table at
// all; label is the canonical label and labeled whether one is defined.
func (t *Table[K]) Lookup(code K) (label string, labeled, known bool) {
	i, ok := t.index[code]
	if !ok {
		return "", false, false
	}
	l := t.entries[i].Label
	return l, l != "", true
}

// Labels returns the distinct canonical labels in declaration order. This is
// the closed value set used by the schema caster for enum columns.
func (t *Table[K]) Labels() []string {
	out := make([]string, 0, len(t.entries))
	seen := make(map[string]struct{}, len(t.entries))
	for _, e := range t.entries {
		if e.Label == "" {
			continue
		}
		if _, dup := seen[e.Label]; dup {
			continue
		}
		seen[e.Label] = struct{}{}
		out = append(out, e.Label)
	}
	return out
}

// Band is one inclusive integer interval of a range-keyed table.
type Band struct {
	Lo, Hi int
	Label  string
}

// RangeTable maps disjoint inclusive integer intervals to optional labels.
// Bands follow the same labeled/unlabeled convention as Table entries.
type RangeTable struct {
	bands []Band
}

// NewRanges builds a RangeTable. Bands are searched in declaration order;
// callers supply disjoint bands (verified by tests against the published
// tables).
func NewRanges(bands ...Band) *RangeTable {
	return &RangeTable{bands: bands}
}

// Lookup resolves v against the bands.
func (rt *RangeTable) Lookup(v int) (label string, labeled, known bool) {
	for _, b := range rt.bands {
		if b.Lo <= v && v <= b.Hi {
			return b.Label, b.Label != "", true
		}
	}
	return "", false, false
}

// Labels returns the distinct band labels in declaration order.
func (rt *RangeTable) Labels() []string {
	out := make([]string, 0, len(rt.bands))
	seen := make(map[string]struct{}, len(rt.bands))
	for _, b := range rt.bands {
		if b.Label == "" {
			continue
		}
		if _, dup := seen[b.Label]; dup {
			continue
		}
		seen[b.Label] = struct{}{}
		out = append(out, b.Label)
	}
	return out
}
