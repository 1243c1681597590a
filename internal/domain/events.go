package domain

// FutureEvents returns the events dated today or later. Stale scraped data
// can still carry past events; this keeps them out of responses. The
// sentinel date for invalid input always falls before today and is dropped
// with them. today must be YYYY-MM-DD; dates compare as strings.
func FutureEvents(events []Event, today string) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Date == "" || e.Date < today {
			continue
		}
		out = append(out, e)
	}
	return out
}
