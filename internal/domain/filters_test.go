package domain

import (
	"testing"
)

func TestMatchesQuery(t *testing.T) {
	c := Community{Name: "Oslo Stompers", City: "Oslo", Country: "Norway"}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"empty query matches", "", true},
		{"whitespace-only query matches", "   ", true},
		{"name substring", "stomp", true},
		{"city substring", "oslo", true},
		{"country substring", "norw", true},
		{"case insensitive", "STOMPERS", true},
		{"no field matches", "berlin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesQuery(c, tt.query); got != tt.want {
				t.Errorf("MatchesQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatchesStyle(t *testing.T) {
	tests := []struct {
		name   string
		styles []Style
		value  string
		want   bool
	}{
		{"all matches everything", nil, "all", true},
		{"all matches even with styles", []Style{StyleLindy}, "all", true},
		{"exact style", []Style{StyleLindy}, "lindy", true},
		{"substring: bal matches balboa", []Style{StyleBalboa}, "bal", true},
		{"case insensitive", []Style{StyleBlues}, "BLUES", true},
		{"no styles never match", nil, "lindy", false},
		{"empty styles never match", []Style{}, "lindy", false},
		{"wrong style", []Style{StyleShag}, "lindy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesStyle(tt.styles, tt.value); got != tt.want {
				t.Errorf("MatchesStyle(%v, %q) = %v, want %v", tt.styles, tt.value, got, tt.want)
			}
		})
	}
}

func TestMatchesLocation(t *testing.T) {
	tests := []struct {
		name    string
		country string
		value   string
		want    bool
	}{
		{"all matches everything", "Germany", "all", true},
		{"all matches empty country", "", "all", true},
		{"empty country never matches", "", "europe-other", false},
		{"direct substring match", "Germany", "germany", true},
		{"direct match case insensitive", "GERMANY", "germany", true},
		{"austria is europe-other", "Austria", "europe-other", true},
		{"germany is canonical, excluded from europe-other", "Germany", "europe-other", false},
		{"singapore is asia-other", "Singapore", "asia-other", true},
		{"japan is canonical, excluded from asia-other", "Japan", "asia-other", false},
		{"brazil is americas-other", "Brazil", "americas-other", true},
		{"canada is canonical, excluded from americas-other", "Canada", "americas-other", false},
		{"egypt falls into other", "Egypt", "other", true},
		{"germany is not other", "Germany", "other", false},
		{"usa is not other", "USA", "other", false},
		{"japan is not other", "Japan", "other", false},
		{"australia is not other", "Australia", "other", false},
		{"new zealand is not other", "New Zealand", "other", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesLocation(tt.country, tt.value); got != tt.want {
				t.Errorf("MatchesLocation(%q, %q) = %v, want %v", tt.country, tt.value, got, tt.want)
			}
		})
	}
}

func TestMatchesDateRange(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		from      string
		to        string
		want      bool
	}{
		{"no bounds matches dateless record", "", "", "", true},
		{"no bounds matches dated record", "2025-06-01", "", "", true},
		{"dateless record fails any active bound", "", "2025-01-01", "", false},
		{"dateless record fails to-bound", "", "", "2025-12-31", false},
		{"inside both bounds", "2025-06-01", "2025-01-01", "2025-12-31", true},
		{"on lower bound", "2025-01-01", "2025-01-01", "2025-12-31", true},
		{"on upper bound", "2025-12-31", "2025-01-01", "2025-12-31", true},
		{"before lower bound", "2024-12-31", "2025-01-01", "", false},
		{"after upper bound", "2026-01-01", "", "2025-12-31", false},
		{"from only, inside", "2025-06-01", "2025-01-01", "", true},
		{"to only, inside", "2025-06-01", "", "2025-12-31", true},
		{"unparsable start never matches", "not-a-date", "2025-01-01", "", false},
		{"unparsable bound never matches", "2025-06-01", "garbage", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesDateRange(tt.startDate, tt.from, tt.to); got != tt.want {
				t.Errorf("MatchesDateRange(%q, %q, %q) = %v, want %v",
					tt.startDate, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMatchesType(t *testing.T) {
	tests := []struct {
		name   string
		record Community
		value  string
		want   bool
	}{
		{"all matches community", Community{EntityType: EntityCommunity}, "all", true},
		{"all matches festival", Community{EntityType: EntityFestival}, "all", true},
		{"community matches community", Community{EntityType: EntityCommunity}, "community", true},
		{"community matches hybrid", Community{EntityType: EntityHybrid}, "community", true},
		{"community rejects festival", Community{EntityType: EntityFestival}, "community", false},
		{"missing entity type defaults to community", Community{}, "community", true},
		{"missing entity type is not a festival", Community{}, "festival", false},
		{"festival matches festival", Community{EntityType: EntityFestival}, "festival", true},
		{"festival matches hybrid", Community{EntityType: EntityHybrid}, "festival", true},
		{"festival rejects community", Community{EntityType: EntityCommunity}, "festival", false},
		{"new matches hybrid even when verified", Community{EntityType: EntityHybrid, Verified: true}, "new", true},
		{"new matches unverified community", Community{EntityType: EntityCommunity}, "new", true},
		{"new rejects verified community", Community{EntityType: EntityCommunity, Verified: true}, "new", false},
		{"unknown filter value matches", Community{EntityType: EntityVenue}, "bogus", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesType(tt.record, tt.value); got != tt.want {
				t.Errorf("MatchesType(%+v, %q) = %v, want %v", tt.record, tt.value, got, tt.want)
			}
		})
	}
}

func TestCountByType(t *testing.T) {
	records := []Community{
		{EntityType: EntityCommunity},
		{EntityType: EntityFestival},
		{EntityType: EntityHybrid},
		{EntityType: EntityVenue},
	}

	tests := []struct {
		value string
		want  int
	}{
		{"all", 4},
		{"community", 2},
		{"festival", 2},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := CountByType(records, tt.value); got != tt.want {
				t.Errorf("CountByType(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"all", "results"},
		{"community", "communities"},
		{"festival", "festivals"},
		{"new", "new entries"},
		{"bogus", "results"},
	}

	for _, tt := range tests {
		if got := TypeLabel(tt.value); got != tt.want {
			t.Errorf("TypeLabel(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
