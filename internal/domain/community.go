package domain

// Community represents the canonical runtime truth of a directory entry.
//
// It is NOT tied to the dataset file, Redis or any external source.
// All inputs (dataset, verification flags) are merged into this structure.
//
// A Community is considered uniquely identified by its Username within a
// loaded set (not globally enforced). Records reach this shape only through
// the dataset normalizer, so every field is total: display fields are never
// empty, enums are always members of their closed sets and sequences are
// never nil.
type Community struct {
	// ─────────────────────────────
	// Identity
	// ─────────────────────────────

	// Username is the unique key within a loaded set.
	Username string `json:"username,omitempty"`

	// ─────────────────────────────
	// Display fields (never empty, default "Unknown")
	// ─────────────────────────────

	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`

	// EntityType is always a member of the closed entity type set.
	EntityType EntityType `json:"entityType"`

	// Styles contains only valid style codes, input order preserved,
	// duplicates kept.
	Styles []Style `json:"styles"`

	// Verified is owned by the verification overlay, not the dataset.
	Verified bool `json:"verified"`

	// ─────────────────────────────
	// Contact & links (empty string means absent)
	// ─────────────────────────────

	Instagram string `json:"instagram,omitempty"`
	Website   string `json:"website,omitempty"`
	Linktree  string `json:"linktree,omitempty"`
	Email     string `json:"email,omitempty"`
	Social    string `json:"social,omitempty"`

	// ─────────────────────────────
	// Metadata
	// ─────────────────────────────

	Notes     string   `json:"notes,omitempty"`
	Region    string   `json:"region,omitempty"`
	Followers int      `json:"followers,omitempty"`
	Festivals []string `json:"festivals,omitempty"`

	// FestivalWebsite is the external festival-listing source URL.
	FestivalWebsite string `json:"festivalWebsite,omitempty"`

	// ─────────────────────────────
	// Temporal (YYYY-MM-DD)
	// ─────────────────────────────

	// StartDate/EndDate schedule the record itself when it is a festival.
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`

	// Dates is a free-text pre-formatted display string, independent of
	// StartDate/EndDate.
	Dates string `json:"dates,omitempty"`

	// FestivalDates schedules a festival HOSTED by this record (typically
	// a hybrid), distinct from the record's own StartDate.
	FestivalDates *FestivalDates `json:"festivalDates,omitempty"`

	// Festival describes a festival hosted by this record.
	Festival *FestivalInfo `json:"festival,omitempty"`

	// Scraped is always present with non-nil sequences.
	Scraped ScrapedData `json:"scraped"`
}

// FestivalDates holds the display dates of a hosted festival.
type FestivalDates struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// FestivalInfo describes a festival hosted by a record.
type FestivalInfo struct {
	Name    string `json:"name,omitempty"`
	Website string `json:"website,omitempty"`
}

// ScrapedData carries metadata produced by the scraping pipeline.
type ScrapedData struct {
	LastScraped         string     `json:"lastScraped,omitempty"`
	Confidence          Confidence `json:"confidence,omitempty"`
	ScheduleDetected    bool       `json:"scheduleDetected,omitempty"`
	ScheduleDescription string     `json:"scheduleDescription,omitempty"`

	// UpcomingEvents and UpcomingDates are never nil post-normalization.
	UpcomingEvents []Event  `json:"upcomingEvents"`
	UpcomingDates  []string `json:"upcomingDates"`
}

// SentinelDate replaces invalid or missing event dates. It sorts first and
// is dropped by the future-events filter downstream.
const SentinelDate = "1970-01-01"

// Event is a single scraped upcoming event.
type Event struct {
	// Date is YYYY-MM-DD; invalid input normalizes to SentinelDate.
	Date string `json:"date"`

	// Title defaults to "Unknown Event".
	Title string `json:"title"`

	// Type is always a member of the closed event type set.
	Type EventType `json:"type"`

	SourceURL string `json:"sourceUrl,omitempty"`
}

// FilterState is the transient per-session filter selection. It is owned by
// the caller and passed by value into the pipeline; the zero value is NOT
// the neutral state (Style, Location and Type must be "all" to match
// everything — see NewFilterState).
type FilterState struct {
	Query    string `json:"query"`
	Style    string `json:"style"`    // style code or "all"
	Location string `json:"location"` // region code or "all"
	DateFrom string `json:"dateFrom"` // YYYY-MM-DD or ""
	DateTo   string `json:"dateTo"`   // YYYY-MM-DD or ""
	Type     string `json:"type"`     // "all" | "community" | "festival" | "new"
}

// NewFilterState returns the neutral filter state that matches every record.
func NewFilterState() FilterState {
	return FilterState{
		Style:    FilterAll,
		Location: FilterAll,
		Type:     FilterAll,
	}
}

// FilterAll is the sentinel filter value that matches everything.
const FilterAll = "all"
