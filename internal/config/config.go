package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DatasetFile    string        // path to the communities dataset (JSON or YAML)
	ReloadInterval time.Duration // interval to reload the dataset (default: 24h)
	SuggestLimit   int           // max suggestions returned per query (default: 8)

	CORSOrigins []string // allowed CORS origins (default: "*")

	// Rate limiting (applied to /suggest)
	RateBurst        int // max burst per client IP
	RateRefillPerMin int // tokens refilled per IP per minute
	RateLimitEntries int // max tracked client IPs before sweeping

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 5.6.7.8")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("RADAR_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("RADAR_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("RADAR_LOG_LEVEL", "info"),
		PrettyLog: mustBool("RADAR_PRETTY_LOG", true),

		// Dataset
		DatasetFile:    requireEnv("RADAR_DATASET_FILE"),
		ReloadInterval: mustDuration("RADAR_RELOAD_INTERVAL", 24*time.Hour),
		SuggestLimit:   getenvInt("RADAR_SUGGEST_LIMIT", 8),

		CORSOrigins: splitAndTrimDefault(getenv("RADAR_CORS_ORIGINS", "*")),

		// Rate limiting
		RateBurst:        getenvInt("RADAR_RATE_BURST", 20),
		RateRefillPerMin: getenvInt("RADAR_RATE_REFILL_PER_MIN", 60),
		RateLimitEntries: getenvInt("RADAR_RATE_MAX_ENTRIES", 10000),

		// Redis settings
		RedisAddr:             requireEnv("RADAR_REDIS_ADDR"),
		RedisUser:             getenv("RADAR_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("RADAR_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("RADAR_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("RADAR_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: parseList(getenv("RADAR_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseList(getenv("RADAR_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("RADAR_TRUST_PROXY", true),
	}

	// Validate Redis password configuration
	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: RADAR_REDIS_PASSWORD is required when RADAR_REDIS_PASSWORD_REQUIRED=true")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseList(allowed string) []string {
	if allowed == "" {
		return nil
	}
	return splitAndTrim(allowed)
}

func splitAndTrimDefault(s string) []string {
	parts := splitAndTrim(s)
	if len(parts) == 0 {
		return []string{"*"}
	}
	return parts
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
