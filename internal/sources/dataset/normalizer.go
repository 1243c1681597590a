package dataset

import (
	"regexp"

	"github.com/swingscene/radar/internal/domain"
)

// Date format: YYYY-MM-DD
var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// NormalizeDocument extracts the top-level "communities" field from a raw
// dataset document and normalizes every record. A document of the wrong
// shape yields an empty sequence, never an error.
func NormalizeDocument(doc any) []domain.Community {
	return NormalizeAll(asMap(doc)["communities"])
}

// NormalizeAll normalizes a raw record sequence. Non-array input yields an
// empty sequence; each element is normalized independently, so one bad
// record never poisons the rest.
func NormalizeAll(raw any) []domain.Community {
	items := asSlice(raw)
	out := make([]domain.Community, 0, len(items))
	for _, item := range items {
		out = append(out, Normalize(item))
	}
	return out
}

// Normalize converts an arbitrary raw record into the canonical total
// Community shape. It never fails: non-object input is treated as empty,
// enum fields fall back to their documented defaults, display fields fall
// back to "Unknown" and sequences are always non-nil. Fields with no
// sensible default stay empty rather than being fabricated.
func Normalize(raw any) domain.Community {
	in := asMap(raw)

	return domain.Community{
		Username:        asString(in["username"]),
		Name:            orUnknown(asString(in["name"])),
		City:            orUnknown(asString(in["city"])),
		Country:         orUnknown(asString(in["country"])),
		EntityType:      domain.ParseEntityType(asString(in["entityType"])),
		Styles:          normalizeStyles(in["styles"]),
		Verified:        asBool(in["verified"]),
		Instagram:       asString(in["instagram"]),
		Website:         asString(in["website"]),
		Linktree:        asString(in["linktree"]),
		Email:           asString(in["email"]),
		Social:          asString(in["social"]),
		Notes:           asString(in["notes"]),
		Region:          asString(in["region"]),
		Followers:       asInt(in["followers"]),
		Festivals:       asStringSlice(in["festivals"]),
		FestivalWebsite: asString(in["festivalWebsite"]),
		StartDate:       asString(in["startDate"]),
		EndDate:         asString(in["endDate"]),
		Dates:           asString(in["dates"]),
		FestivalDates:   normalizeFestivalDates(in["festivalDates"]),
		// Two legacy dataset generations disagree on the field name for a
		// hosted festival; "festival" is canonical, "festivalInfo" is
		// accepted as a read-time alias.
		Festival: normalizeFestivalInfo(in["festival"], in["festivalInfo"]),
		Scraped:  normalizeScraped(in["scraped"]),
	}
}

// NormalizeEvent converts a raw event into the canonical Event shape. An
// invalid or missing date becomes the sentinel 1970-01-01, which sorts
// first and is dropped by the future-events filter; nothing else can make
// an event invalid.
func NormalizeEvent(raw any) domain.Event {
	in := asMap(raw)

	date := asString(in["date"])
	if !dateRE.MatchString(date) {
		date = domain.SentinelDate
	}

	title := asString(in["title"])
	if title == "" {
		title = "Unknown Event"
	}

	return domain.Event{
		Date:      date,
		Title:     title,
		Type:      domain.ParseEventType(asString(in["type"])),
		SourceURL: asString(in["sourceUrl"]),
	}
}

func normalizeScraped(raw any) domain.ScrapedData {
	in := asMap(raw)

	events := make([]domain.Event, 0)
	for _, item := range asSlice(in["upcomingEvents"]) {
		events = append(events, NormalizeEvent(item))
	}

	dates := asStringSlice(in["upcomingDates"])
	if dates == nil {
		dates = []string{}
	}

	return domain.ScrapedData{
		LastScraped:         asString(in["lastScraped"]),
		Confidence:          domain.ParseConfidence(asString(in["confidence"])),
		ScheduleDetected:    asBool(in["scheduleDetected"]),
		ScheduleDescription: asString(in["scheduleDescription"]),
		UpcomingEvents:      events,
		UpcomingDates:       dates,
	}
}

// normalizeStyles keeps only valid style codes, preserving order and
// duplicates. Invalid codes are silently dropped rather than rejecting the
// whole sequence.
func normalizeStyles(raw any) []domain.Style {
	items := asSlice(raw)
	out := make([]domain.Style, 0, len(items))
	for _, item := range items {
		if s := domain.Style(asString(item)); s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

func normalizeFestivalDates(raw any) *domain.FestivalDates {
	in := asMap(raw)
	if in == nil {
		return nil
	}
	return &domain.FestivalDates{
		StartDate: asString(in["startDate"]),
		EndDate:   asString(in["endDate"]),
	}
}

func normalizeFestivalInfo(raw, alias any) *domain.FestivalInfo {
	in := asMap(raw)
	if in == nil {
		in = asMap(alias)
	}
	if in == nil {
		return nil
	}
	return &domain.FestivalInfo{
		Name:    asString(in["name"]),
		Website: asString(in["website"]),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
