package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/swingscene/radar/internal/index"
	"github.com/swingscene/radar/internal/logger"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	TimeNow       func() time.Time      // for testing, defaults to time.Now
	AllowedHosts  []string              // Host headers allowed to access the server
	AllowedCIDRS  []string              // IPs allowed to access operational endpoints
	TrustProxy    bool                  // true if running behind a trusted reverse proxy (e.g., cloudflared)
	DatasetFile   string                // Path to the communities dataset file
	RedisClient   *redis.Client         // Redis client connection
	Index         *index.CommunityIndex // In-memory community index
	SuggestLimit  int                   // Max autocomplete suggestions per query
	ReloadTrigger chan struct{}         // Channel to trigger manual dataset reload

	// Rate limiting for the per-keystroke suggest endpoint
	RateBurst        int
	RateRefillPerMin int
	RateLimitEntries int
}
