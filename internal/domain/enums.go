package domain

// EntityType classifies what kind of scene entity a record is.
//
// hybrid means the record is simultaneously a community AND a festival
// for matching purposes.
type EntityType string

const (
	EntityCommunity   EntityType = "community"
	EntityFestival    EntityType = "festival"
	EntityHybrid      EntityType = "hybrid"
	EntityInstructor  EntityType = "instructor"
	EntityVenue       EntityType = "venue"
	EntityVendor      EntityType = "vendor"
	EntityBand        EntityType = "band"
	EntityDJ          EntityType = "dj"
	EntityMedia       EntityType = "media"
	EntityAssociation EntityType = "association"
)

// EntityTypes lists all valid entity types, in display order.
var EntityTypes = []EntityType{
	EntityCommunity,
	EntityFestival,
	EntityHybrid,
	EntityInstructor,
	EntityVenue,
	EntityVendor,
	EntityBand,
	EntityDJ,
	EntityMedia,
	EntityAssociation,
}

// Valid reports whether t is one of the closed entity type set.
func (t EntityType) Valid() bool {
	for _, v := range EntityTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseEntityType returns the entity type for s, falling back to
// EntityCommunity when s is absent or not a known type.
func ParseEntityType(s string) EntityType {
	if t := EntityType(s); t.Valid() {
		return t
	}
	return EntityCommunity
}

// EventType classifies a scraped upcoming event.
type EventType string

const (
	EventSocial   EventType = "social"
	EventClass    EventType = "class"
	EventWorkshop EventType = "workshop"
	EventParty    EventType = "party"
	EventFestival EventType = "festival"
	EventTrial    EventType = "trial"
	EventOther    EventType = "other"
)

// EventTypes lists all valid event types.
var EventTypes = []EventType{
	EventSocial,
	EventClass,
	EventWorkshop,
	EventParty,
	EventFestival,
	EventTrial,
	EventOther,
}

// Valid reports whether t is one of the closed event type set.
func (t EventType) Valid() bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseEventType returns the event type for s, falling back to EventOther.
func ParseEventType(s string) EventType {
	if t := EventType(s); t.Valid() {
		return t
	}
	return EventOther
}

// Style is a dance style code.
//
// Note: "bal" and "balboa" are both valid ("bal" is shorthand).
type Style string

const (
	StyleLindy      Style = "lindy"
	StyleBal        Style = "bal"
	StyleBalboa     Style = "balboa"
	StyleBlues      Style = "blues"
	StyleSolo       Style = "solo"
	StyleShag       Style = "shag"
	StyleCharleston Style = "charleston"
	StyleWCS        Style = "wcs"
)

// Styles lists all valid style codes.
var Styles = []Style{
	StyleLindy,
	StyleBal,
	StyleBalboa,
	StyleBlues,
	StyleSolo,
	StyleShag,
	StyleCharleston,
	StyleWCS,
}

// Valid reports whether s is one of the closed style set.
func (s Style) Valid() bool {
	for _, v := range Styles {
		if s == v {
			return true
		}
	}
	return false
}

// Confidence is the scraper's confidence in a record's scraped data.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is one of the closed confidence set.
// The empty value means "no confidence recorded" and is not valid.
func (c Confidence) Valid() bool {
	return c == ConfidenceHigh || c == ConfidenceMedium || c == ConfidenceLow
}

// ParseConfidence returns the confidence level for s, or the empty value
// when s is not a known level. Unknown confidence is never fabricated.
func ParseConfidence(s string) Confidence {
	if c := Confidence(s); c.Valid() {
		return c
	}
	return ""
}
