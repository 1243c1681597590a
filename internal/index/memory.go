package index

import (
	"sync"
	"time"

	"github.com/swingscene/radar/internal/domain"
)

// CommunityIndex holds the current in-memory record set. Dataset order is
// preserved because the filter pipeline and suggestions rely on it; the
// username map is only a lookup accelerator.
type CommunityIndex struct {
	mu         sync.RWMutex
	records    []domain.Community
	byUsername map[string]int // username -> position in records
	lastReload time.Time      // timestamp of last dataset reload
}

// NewCommunityIndex creates an empty index.
func NewCommunityIndex() *CommunityIndex {
	return &CommunityIndex{
		records:    []domain.Community{},
		byUsername: make(map[string]int),
	}
}

// Replace swaps in a freshly loaded record set.
func (idx *CommunityIndex) Replace(records []domain.Community) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.records = make([]domain.Community, len(records))
	copy(idx.records, records)

	idx.byUsername = make(map[string]int, len(records))
	for i, c := range records {
		if c.Username != "" {
			idx.byUsername[c.Username] = i
		}
	}
	idx.lastReload = time.Now()
}

// All returns a snapshot of the record set in dataset order. Callers may
// freely filter and sort the returned slice.
func (idx *CommunityIndex) All() []domain.Community {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]domain.Community, len(idx.records))
	copy(out, idx.records)
	return out
}

// Get retrieves a record by username.
func (idx *CommunityIndex) Get(username string) (domain.Community, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	i, ok := idx.byUsername[username]
	if !ok {
		return domain.Community{}, false
	}
	return idx.records[i], true
}

// SetVerified updates the verified flag of a single record in place,
// reporting whether the username was known. Used by the toggle handler so
// a flip does not require a full reload.
func (idx *CommunityIndex) SetVerified(username string, verified bool) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	i, ok := idx.byUsername[username]
	if !ok {
		return false
	}
	idx.records[i].Verified = verified
	return true
}

// Count returns the number of records in the index.
func (idx *CommunityIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.records)
}

// LastReload returns the timestamp of the last dataset reload.
func (idx *CommunityIndex) LastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
