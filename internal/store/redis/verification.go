package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/swingscene/radar/internal/domain"
)

// Store handles Redis operations for the verification flag map.
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// LoadVerified retrieves the persisted verification flags. A missing key or
// unparsable value degrades to an empty map — "nothing is verified" — never
// to an error; only a Redis transport failure is reported.
func (s *Store) LoadVerified(ctx context.Context) (domain.VerifiedFlags, error) {
	data, err := s.client.Get(ctx, VerifiedKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.VerifiedFlags{}, nil
		}
		return nil, fmt.Errorf("failed to load verification flags: %w", err)
	}

	var flags domain.VerifiedFlags
	if err := json.Unmarshal(data, &flags); err != nil {
		// Corrupt persisted state degrades to empty rather than propagating.
		return domain.VerifiedFlags{}, nil
	}
	if flags == nil {
		flags = domain.VerifiedFlags{}
	}
	return flags, nil
}

// SaveVerified persists the whole verification flag map. No TTL: the flags
// outlive any dataset reload.
func (s *Store) SaveVerified(ctx context.Context, flags domain.VerifiedFlags) error {
	data, err := json.Marshal(flags)
	if err != nil {
		return fmt.Errorf("failed to marshal verification flags: %w", err)
	}

	if err := s.client.Set(ctx, VerifiedKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save verification flags: %w", err)
	}

	return nil
}
