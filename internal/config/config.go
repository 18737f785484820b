package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile    string        // path to the destinos catalog (db.json / db.yaml)
	ReloadInterval time.Duration // interval to reload the catalog file (default: 24h)
	GCInterval     time.Duration // interval to garbage-collect disabled destinations (default: 24h)
	GCThreshold    time.Duration // how long a destination stays disabled before deletion

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	// HTTP access
	CORSOrigins  []string // origins allowed to call the API (the storefront SPA)
	AllowedHosts []string // optional, restrict admin routes to specific Host headers
	AllowedCIDRS []string // optional, restrict admin routes to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers

	// Contact endpoint rate limiting
	ContactBurst        int // token bucket size per IP
	ContactPerMin       int // refill per IP per minute
	ContactMaxIPBuckets int // cap on tracked IPs
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("BRUJULA_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("BRUJULA_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("BRUJULA_LOG_LEVEL", "info"),
		PrettyLog: mustBool("BRUJULA_PRETTY_LOG", true),

		// Catalog
		CatalogFile:    requireEnv("BRUJULA_CATALOG_FILE"),
		ReloadInterval: mustDuration("BRUJULA_RELOAD_INTERVAL", 24*time.Hour),
		GCInterval:     mustDuration("BRUJULA_GC_INTERVAL", 24*time.Hour),
		GCThreshold:    mustDuration("BRUJULA_GC_THRESHOLD", 30*24*time.Hour),

		// Redis settings
		RedisAddr:           requireEnv("BRUJULA_REDIS_ADDR"),
		RedisUser:           getenv("BRUJULA_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("BRUJULA_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("BRUJULA_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		CORSOrigins:  splitAndTrim(getenv("BRUJULA_CORS_ORIGINS", "")),
		AllowedHosts: splitAndTrim(getenv("BRUJULA_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("BRUJULA_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("BRUJULA_TRUST_PROXY", false),

		// Contact rate limit
		ContactBurst:        getenvInt("BRUJULA_CONTACT_BURST", 5),
		ContactPerMin:       getenvInt("BRUJULA_CONTACT_PER_MIN", 3),
		ContactMaxIPBuckets: getenvInt("BRUJULA_CONTACT_MAX_IP_BUCKETS", 4096),
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
