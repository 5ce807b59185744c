package loader

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TTL bounds and the environment overrides of the target cache.
const (
	DefaultTTLSeconds = 3600
	MinTTLSeconds     = 1
	MaxTTLSeconds     = 604800

	EnvTTLSeconds   = "DRILLCHART_CACHE_TTL_SECONDS"
	EnvCacheEnabled = "DRILLCHART_CACHE_ENABLED"
	EnvCacheDir     = "DRILLCHART_CACHE_DIR"
)

// ErrInvalidTTL is returned for a TTL outside the accepted range.
var ErrInvalidTTL = fmt.Errorf("TTL must be between %d and %d seconds", MinTTLSeconds, MaxTTLSeconds)

// TTLFromEnv returns the TTL override, or fallback when unset or invalid.
func TTLFromEnv(fallback int) int {
	v := os.Getenv(EnvTTLSeconds)
	if v == "" {
		return fallback
	}
	ttl, err := ParseTTL(v)
	if err != nil {
		return fallback
	}
	return ttl
}

// CacheEnabledFromEnv returns the enabled override, or fallback.
func CacheEnabledFromEnv(fallback bool) bool {
	v := os.Getenv(EnvCacheEnabled)
	if v == "" {
		return fallback
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return enabled
}

// CacheDirFromEnv returns the directory override, or fallback.
func CacheDirFromEnv(fallback string) string {
	if v := os.Getenv(EnvCacheDir); v != "" {
		return v
	}
	return fallback
}

// ParseTTL accepts integer seconds ("3600") or a duration ("1h30m").
func ParseTTL(s string) (int, error) {
	seconds, err := strconv.Atoi(s)
	if err != nil {
		d, durErr := time.ParseDuration(s)
		if durErr != nil {
			return 0, fmt.Errorf("invalid TTL format: %w", durErr)
		}
		seconds = int(d.Seconds())
	}
	if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
	}
	return seconds, nil
}
