package domain

import "strings"

// DefaultSuggestionLimit caps autocomplete suggestions per query.
const DefaultSuggestionLimit = 8

// Suggest returns up to limit records matching the query for autocomplete,
// in input order. Unlike the main pipeline, an empty query yields no
// suggestions at all: the suggestion box stays closed until the user types.
// A limit <= 0 falls back to DefaultSuggestionLimit.
func Suggest(records []Community, query string, limit int) []Community {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []Community{}
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	out := make([]Community, 0, limit)
	for _, c := range records {
		if !MatchesQuery(c, term) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}
