package domain

import (
	"strings"
	"time"
)

// Country groupings for the location filter. Each named region has a
// canonical list (exact lowercase match) and a companion "-other" list
// (substring match) for countries adjacent to the region but not in the
// canonical list.
var (
	asiaCountries = []string{"taiwan", "japan", "south korea", "korea", "china"}
	asiaOther     = []string{"singapore", "hong kong", "thailand", "malaysia", "indonesia", "vietnam", "philippines", "india"}

	europeCountries = []string{"germany", "france", "united kingdom", "uk", "sweden", "italy", "spain", "netherlands"}
	europeOther     = []string{"austria", "belgium", "czech", "denmark", "finland", "greece", "hungary", "ireland", "norway", "poland", "portugal", "russia", "switzerland", "ukraine"}

	americasCountries = []string{"usa", "united states", "canada"}
	americasOther     = []string{"brazil", "argentina", "mexico", "chile", "colombia", "peru"}
)

// MatchesQuery reports whether the record matches a free-text search term.
// The match is a case-insensitive substring check against name, city and
// country independently. An empty or whitespace-only query matches
// everything.
func MatchesQuery(c Community, query string) bool {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.City), term) ||
		strings.Contains(strings.ToLower(c.Country), term)
}

// MatchesStyle reports whether any of the record's styles matches the
// filter value as a case-insensitive substring. "bal" therefore matches a
// record listing "balboa". A record with no styles never matches a
// non-"all" filter.
func MatchesStyle(styles []Style, value string) bool {
	if value == FilterAll {
		return true
	}
	val := strings.ToLower(value)
	for _, s := range styles {
		if strings.Contains(strings.ToLower(string(s)), val) {
			return true
		}
	}
	return false
}

// MatchesLocation reports whether the record's country matches a location
// filter value. Region buckets ("asia-other" etc.) match countries adjacent
// to a region but exclude its canonical members; "other" matches countries
// outside every known region. Any other value is a direct case-insensitive
// substring match. A record with no country never matches a non-"all"
// filter.
func MatchesLocation(country, value string) bool {
	if value == FilterAll {
		return true
	}
	if country == "" {
		return false
	}

	lower := strings.ToLower(country)

	switch value {
	case "asia-other":
		return !inList(lower, asiaCountries) && containsAny(lower, asiaOther)
	case "europe-other":
		return !inList(lower, europeCountries) && containsAny(lower, europeOther)
	case "americas-other":
		return !inList(lower, americasCountries) && containsAny(lower, americasOther)
	case "other":
		if containsAny(lower, asiaCountries) || containsAny(lower, europeCountries) || containsAny(lower, americasCountries) {
			return false
		}
		return !strings.Contains(lower, "australia") && !strings.Contains(lower, "new zealand")
	}

	return strings.Contains(lower, strings.ToLower(value))
}

// inList reports whether s is exactly one of the list entries.
func inList(s string, list []string) bool {
	for _, v := range list {
		if s == v {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains any list entry as a substring.
func containsAny(s string, list []string) bool {
	for _, v := range list {
		if strings.Contains(s, v) {
			return true
		}
	}
	return false
}

// dateLayout is the wire format for all dates in the dataset.
const dateLayout = "2006-01-02"

// MatchesDateRange reports whether startDate falls inside the inclusive
// [from, to] range. With no bounds set, everything matches, dateless
// records included. With any bound set, a record without a parsable
// startDate never matches.
func MatchesDateRange(startDate, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	if startDate == "" {
		return false
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return false
	}

	if from != "" {
		f, err := time.Parse(dateLayout, from)
		if err != nil || start.Before(f) {
			return false
		}
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil || start.After(t) {
			return false
		}
	}
	return true
}

// MatchesType reports whether the record matches an entity-type filter.
// "community" and "festival" both accept hybrids. "new" matches hybrids and
// records whose verified flag is false; since normalization defaults
// verified to false, this matches every record never marked verified (the
// rule is kept as-is pending product clarification). A record without an
// entity type is treated as a community, so the predicate tolerates
// un-normalized input.
func MatchesType(c Community, value string) bool {
	if value == FilterAll {
		return true
	}

	switch value {
	case "new":
		return c.EntityType == EntityHybrid || !c.Verified
	case "community":
		return c.EntityType == EntityCommunity || c.EntityType == EntityHybrid || c.EntityType == ""
	case "festival":
		return c.EntityType == EntityFestival || c.EntityType == EntityHybrid
	}
	return true
}

// CountByType counts records matching a type filter. It reuses MatchesType
// so the "showing N of M" denominator stays consistent with filtering.
func CountByType(records []Community, value string) int {
	n := 0
	for _, c := range records {
		if MatchesType(c, value) {
			n++
		}
	}
	return n
}

// TypeLabel returns the display label for a type filter value.
func TypeLabel(value string) string {
	switch value {
	case "community":
		return "communities"
	case "festival":
		return "festivals"
	case "new":
		return "new entries"
	}
	return "results"
}
