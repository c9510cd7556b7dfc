package domain

// Filter selects a subset of records. Zero-valued members are no-ops, matching
// the "Todos"/"Todas" semantics of the original dashboard filters: an empty
// set means the dimension is unconstrained.
type Filter struct {
	YearFrom int   `json:"year_from,omitempty"`
	YearTo   int   `json:"year_to,omitempty"`
	Months   []int `json:"months,omitempty"`

	Regions        []string `json:"regions,omitempty"`
	Municipalities []string `json:"municipalities,omitempty"`
	Sexes          []string `json:"sexes,omitempty"`
	Natures        []string `json:"natures,omitempty"`
	AgeBands       []string `json:"age_bands,omitempty"`

	// Age bounds follow the source semantics: when either bound is set,
	// records without a known age are excluded.
	AgeMin *int `json:"age_min,omitempty"`
	AgeMax *int `json:"age_max,omitempty"`
}

// IsZero reports whether the filter constrains nothing.
func (f Filter) IsZero() bool {
	return f.YearFrom == 0 && f.YearTo == 0 &&
		len(f.Months) == 0 && len(f.Regions) == 0 && len(f.Municipalities) == 0 &&
		len(f.Sexes) == 0 && len(f.Natures) == 0 && len(f.AgeBands) == 0 &&
		f.AgeMin == nil && f.AgeMax == nil
}

// Matches reports whether a single record passes the filter.
func (f Filter) Matches(r *Record) bool {
	if f.YearFrom > 0 && r.Year < f.YearFrom {
		return false
	}
	if f.YearTo > 0 && r.Year > f.YearTo {
		return false
	}
	if len(f.Months) > 0 && !containsInt(f.Months, r.Month) {
		return false
	}
	if len(f.Regions) > 0 && !containsString(f.Regions, r.Region) {
		return false
	}
	if len(f.Municipalities) > 0 && !containsString(f.Municipalities, r.Municipality) {
		return false
	}
	if len(f.Sexes) > 0 && !containsString(f.Sexes, r.Sex) {
		return false
	}
	if len(f.Natures) > 0 && !containsString(f.Natures, r.Nature) {
		return false
	}
	if len(f.AgeBands) > 0 && !containsString(f.AgeBands, r.AgeBand) {
		return false
	}
	if f.AgeMin != nil || f.AgeMax != nil {
		if r.Age == nil {
			return false
		}
		if f.AgeMin != nil && *r.Age < *f.AgeMin {
			return false
		}
		if f.AgeMax != nil && *r.Age > *f.AgeMax {
			return false
		}
	}
	return true
}

// Apply returns the records that pass the filter as a new slice. The input is
// never mutated; a zero filter returns a copy so callers can share the result
// freely.
func (f Filter) Apply(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for i := range records {
		if f.Matches(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
