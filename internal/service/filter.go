package service

import "strings"

// FilterMode decides how the year, month and date clauses combine.
type FilterMode string

const (
	// FilterAny keeps a record when any supplied clause matches.
	FilterAny FilterMode = "any"
	// FilterAll keeps a record only when every supplied clause matches.
	FilterAll FilterMode = "all"
)

// ParseFilterMode maps a configuration value to a FilterMode.
func ParseFilterMode(s string) (FilterMode, bool) {
	switch m := FilterMode(strings.ToLower(s)); m {
	case FilterAny, FilterAll:
		return m, true
	default:
		return "", false
	}
}

// Filter holds the optional appraisal query clauses. Dates are matched as
// strings: Year as a substring, Month as a "-MM-" substring, Date exactly.
type Filter struct {
	Year  string
	Month string
	Date  string
}

// Empty reports whether no clause was supplied.
func (f Filter) Empty() bool {
	return f.Year == "" && f.Month == "" && f.Date == ""
}

// Match reports whether a record dated date passes the filter.
// An empty filter matches everything in both modes.
func (f Filter) Match(date string, mode FilterMode) bool {
	if f.Empty() {
		return true
	}

	yearOK := f.Year != "" && strings.Contains(date, f.Year)
	monthOK := f.Month != "" && strings.Contains(date, "-"+f.Month+"-")
	dateOK := f.Date != "" && date == f.Date

	if mode == FilterAll {
		return (f.Year == "" || yearOK) &&
			(f.Month == "" || monthOK) &&
			(f.Date == "" || dateOK)
	}
	return yearOK || monthOK || dateOK
}
