package dataset

import (
	"encoding/json"
	"testing"

	"github.com/swingscene/radar/internal/domain"
)

func TestNormalizeNeverFails(t *testing.T) {
	// Any input shape must produce a fully-shaped record.
	inputs := []any{
		nil,
		"a string",
		42,
		[]any{"nested"},
		map[string]any{},
		map[string]any{"name": 12, "styles": "lindy", "scraped": []any{}},
	}

	for _, input := range inputs {
		c := Normalize(input)

		if c.Name == "" || c.City == "" || c.Country == "" {
			t.Errorf("Normalize(%v) produced empty display fields: %+v", input, c)
		}
		if !c.EntityType.Valid() {
			t.Errorf("Normalize(%v) produced invalid entity type %q", input, c.EntityType)
		}
		if c.Styles == nil {
			t.Errorf("Normalize(%v) produced nil styles", input)
		}
		if c.Scraped.UpcomingEvents == nil || c.Scraped.UpcomingDates == nil {
			t.Errorf("Normalize(%v) produced nil scraped sequences", input)
		}
	}
}

func TestNormalizeDefaults(t *testing.T) {
	c := Normalize(map[string]any{})

	if c.Name != "Unknown" || c.City != "Unknown" || c.Country != "Unknown" {
		t.Errorf("display fields should default to Unknown, got %q/%q/%q", c.Name, c.City, c.Country)
	}
	if c.EntityType != domain.EntityCommunity {
		t.Errorf("entityType should default to community, got %q", c.EntityType)
	}
	if c.Verified {
		t.Error("verified should default to false")
	}
	if c.Instagram != "" || c.Website != "" {
		t.Error("link fields without values should stay empty, not be fabricated")
	}
}

func TestNormalizeStyles(t *testing.T) {
	c := Normalize(map[string]any{
		"styles": []any{"lindy", "polka", "balboa", "lindy", 7},
	})

	// Invalid codes silently dropped, order preserved, duplicates kept.
	want := []domain.Style{domain.StyleLindy, domain.StyleBalboa, domain.StyleLindy}
	if len(c.Styles) != len(want) {
		t.Fatalf("styles = %v, want %v", c.Styles, want)
	}
	for i, s := range want {
		if c.Styles[i] != s {
			t.Errorf("styles[%d] = %q, want %q", i, c.Styles[i], s)
		}
	}
}

func TestNormalizeEntityType(t *testing.T) {
	tests := []struct {
		input any
		want  domain.EntityType
	}{
		{"festival", domain.EntityFestival},
		{"hybrid", domain.EntityHybrid},
		{"nonsense", domain.EntityCommunity},
		{nil, domain.EntityCommunity},
		{7, domain.EntityCommunity},
	}

	for _, tt := range tests {
		c := Normalize(map[string]any{"entityType": tt.input})
		if c.EntityType != tt.want {
			t.Errorf("entityType %v normalized to %q, want %q", tt.input, c.EntityType, tt.want)
		}
	}
}

func TestNormalizeEvent(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantDate  string
		wantTitle string
		wantType  domain.EventType
	}{
		{
			name:      "valid event",
			input:     map[string]any{"date": "2025-06-01", "title": "Tuesday Social", "type": "social"},
			wantDate:  "2025-06-01",
			wantTitle: "Tuesday Social",
			wantType:  domain.EventSocial,
		},
		{
			name:      "invalid date gets sentinel",
			input:     map[string]any{"date": "June 1st", "title": "Social"},
			wantDate:  domain.SentinelDate,
			wantTitle: "Social",
			wantType:  domain.EventOther,
		},
		{
			name:      "empty input gets full defaults",
			input:     nil,
			wantDate:  domain.SentinelDate,
			wantTitle: "Unknown Event",
			wantType:  domain.EventOther,
		},
		{
			name:      "unknown type falls back to other",
			input:     map[string]any{"date": "2025-06-01", "title": "X", "type": "rave"},
			wantDate:  "2025-06-01",
			wantTitle: "X",
			wantType:  domain.EventOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NormalizeEvent(tt.input)
			if e.Date != tt.wantDate {
				t.Errorf("date = %q, want %q", e.Date, tt.wantDate)
			}
			if e.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", e.Title, tt.wantTitle)
			}
			if e.Type != tt.wantType {
				t.Errorf("type = %q, want %q", e.Type, tt.wantType)
			}
		})
	}
}

func TestNormalizeScrapedConfidence(t *testing.T) {
	c := Normalize(map[string]any{
		"scraped": map[string]any{"confidence": "medium"},
	})
	if c.Scraped.Confidence != domain.ConfidenceMedium {
		t.Errorf("confidence = %q, want medium", c.Scraped.Confidence)
	}

	c = Normalize(map[string]any{
		"scraped": map[string]any{"confidence": "certain"},
	})
	if c.Scraped.Confidence != "" {
		t.Errorf("unknown confidence should stay absent, got %q", c.Scraped.Confidence)
	}
}

func TestNormalizeFestivalInfoAlias(t *testing.T) {
	// Canonical field name wins.
	c := Normalize(map[string]any{
		"festival": map[string]any{"name": "Herräng", "website": "https://herrang.se"},
	})
	if c.Festival == nil || c.Festival.Name != "Herräng" {
		t.Fatalf("festival = %+v, want Herräng", c.Festival)
	}

	// Legacy alias is accepted when the canonical field is missing.
	c = Normalize(map[string]any{
		"festivalInfo": map[string]any{"name": "Balboa Castle Camp"},
	})
	if c.Festival == nil || c.Festival.Name != "Balboa Castle Camp" {
		t.Fatalf("festivalInfo alias not honored: %+v", c.Festival)
	}
}

func TestNormalizeAllNonArray(t *testing.T) {
	for _, input := range []any{nil, "x", 42, map[string]any{}} {
		if got := NormalizeAll(input); len(got) != 0 {
			t.Errorf("NormalizeAll(%v) = %d records, want 0", input, len(got))
		}
	}
}

func TestNormalizeAllWrongTypedElements(t *testing.T) {
	got := NormalizeAll([]any{nil, "junk", map[string]any{"name": "Real"}})

	// Every element is normalized independently, never dropped.
	if len(got) != 3 {
		t.Fatalf("NormalizeAll() = %d records, want 3", len(got))
	}
	if got[0].Name != "Unknown" || got[2].Name != "Real" {
		t.Errorf("unexpected names: %q, %q", got[0].Name, got[2].Name)
	}
}

func TestNormalizeDocument(t *testing.T) {
	var doc any
	payload := `{"communities": [{"username": "oslostompers", "name": "Oslo Stompers", "city": "Oslo", "country": "Norway"}]}`
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}

	got := NormalizeDocument(doc)
	if len(got) != 1 || got[0].Username != "oslostompers" {
		t.Fatalf("NormalizeDocument() = %v, want one record", got)
	}

	if got := NormalizeDocument("not a document"); len(got) != 0 {
		t.Errorf("NormalizeDocument() on junk = %d records, want 0", len(got))
	}
}
