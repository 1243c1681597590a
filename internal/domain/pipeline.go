package domain

import "sort"

// Sort sentinels: records missing the active sort key go last.
const (
	maxSortDate = "9999-12-31"
	maxSortCity = "ZZZ"
)

// FilterCommunities returns the records passing all five predicates for the
// given filter state, preserving input order. The input slice is never
// mutated.
func FilterCommunities(records []Community, f FilterState) []Community {
	out := make([]Community, 0, len(records))
	for _, c := range records {
		if !MatchesQuery(c, f.Query) {
			continue
		}
		if !MatchesStyle(c.Styles, f.Style) {
			continue
		}
		if !MatchesLocation(c.Country, f.Location) {
			continue
		}
		if !MatchesDateRange(c.StartDate, f.DateFrom, f.DateTo) {
			continue
		}
		if !MatchesType(c, f.Type) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortCommunities returns a sorted copy of records. With an active date
// filter, or when filtering festivals, records sort ascending by start date
// (soonest first, dateless last). Otherwise they sort by city. The sort is
// stable: ties keep their input order.
//
// Dates are YYYY-MM-DD so plain string comparison orders them correctly.
func SortCommunities(records []Community, f FilterState) []Community {
	out := make([]Community, len(records))
	copy(out, records)

	byDate := f.DateFrom != "" || f.DateTo != "" || f.Type == "festival"

	sort.SliceStable(out, func(i, j int) bool {
		if byDate {
			return sortDate(out[i]) < sortDate(out[j])
		}
		return sortCity(out[i]) < sortCity(out[j])
	})
	return out
}

func sortDate(c Community) string {
	if c.StartDate == "" {
		return maxSortDate
	}
	return c.StartDate
}

func sortCity(c Community) string {
	if c.City == "" {
		return maxSortCity
	}
	return c.City
}

// GetFiltered applies the full filter+sort pipeline and returns a new
// slice. The caller derives the "showing N of M" denominator via
// CountByType against the unfiltered set.
func GetFiltered(records []Community, f FilterState) []Community {
	return SortCommunities(FilterCommunities(records, f), f)
}
