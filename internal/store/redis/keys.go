package redis

const (
	// KeyVerified is the single key holding the JSON-encoded
	// username -> verified mapping.
	KeyVerified = "radar:verified"
)

// VerifiedKey returns the Redis key for the verification flag map.
func VerifiedKey() string {
	return KeyVerified
}
