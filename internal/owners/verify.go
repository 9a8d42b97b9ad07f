package owners

// Report summarizes the health of an owner list.
type Report struct {
	Total        int      `json:"total"`
	Unique       int      `json:"unique"`
	Duplicates   []string `json:"duplicates,omitempty"`
	Invalid      []string `json:"invalid,omitempty"`
	Expected     int      `json:"expected"`
	CountMatches bool     `json:"countMatches"`
}

// OK is true when the list has the expected size with no bad entries.
func (r Report) OK() bool {
	return r.CountMatches && len(r.Duplicates) == 0 && len(r.Invalid) == 0
}

// Verify checks addresses, duplicates and the expected count. Addresses are
// normalized before comparison. expected <= 0 skips the count check.
func Verify(list []string, expected int) Report {
	r := Report{Total: len(list), Expected: expected}
	valid := make([]string, 0, len(list))
	for _, a := range list {
		n := Normalize(a)
		if Validate(n) != nil {
			r.Invalid = append(r.Invalid, a)
			continue
		}
		valid = append(valid, n)
	}
	unique, dups := Dedupe(valid)
	r.Unique = len(unique)
	r.Duplicates = dups
	r.CountMatches = expected <= 0 || r.Unique == expected
	return r
}
