package domain

// VerifiedFlags is the persisted username -> verified mapping. Only
// explicitly verified usernames are stored; absence means unverified.
type VerifiedFlags map[string]bool

// ApplyVerification merges persisted verification flags into the records.
// A persisted entry takes priority over whatever the dataset carried; with
// no entry the record keeps its own flag (false after normalization). The
// input slice is never mutated: a derived copy is returned.
func ApplyVerification(records []Community, flags VerifiedFlags) []Community {
	out := make([]Community, len(records))
	copy(out, records)
	for i := range out {
		if v, ok := flags[out[i].Username]; ok {
			out[i].Verified = v
		}
	}
	return out
}

// ToggleVerified flips the persisted flag for username (present -> absent,
// absent -> present) and returns a new record sequence with that record's
// verified field updated to match, plus the new flag map to persist. Both
// inputs are left untouched.
//
// Toggling a username not present in records still flips the flag map; it
// just has no visible record to update.
func ToggleVerified(records []Community, flags VerifiedFlags, username string) ([]Community, VerifiedFlags) {
	next := make(VerifiedFlags, len(flags)+1)
	for k, v := range flags {
		next[k] = v
	}

	verified := false
	if _, ok := next[username]; ok {
		delete(next, username)
	} else {
		next[username] = true
		verified = true
	}

	out := make([]Community, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Username == username {
			out[i].Verified = verified
		}
	}
	return out, next
}
