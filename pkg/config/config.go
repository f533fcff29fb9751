// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, logging, cache, search provider and rate limits

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"leadsearch-api/core/domain"
)

// DefaultSearchEndpoint is the Google Custom Search JSON API
const DefaultSearchEndpoint = "https://www.googleapis.com/customsearch/v1"

// DefaultNewsQuerySuffix narrows news searches to the lead-research vertical
const DefaultNewsQuerySuffix = "news fintech device financing telco bnpl"

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logging configuration
	Log LogConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Search contains search provider and pipeline configuration
	Search SearchConfig

	// RateLimit contains inbound rate limiting configuration
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// Format is json or text
	Format string

	// File optionally redirects logs to a rotated file
	File string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/none)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SearchConfig holds the provider credentials and pipeline limits
type SearchConfig struct {
	// Endpoint is the provider base URL
	Endpoint string

	// APIKey and EngineID are the Google CSE credentials; both may be empty at startup
	APIKey   string
	EngineID string

	// Timeout bounds each provider call
	Timeout time.Duration

	// MaxPages and MaxRaw bound the page loop per request
	MaxPages int
	MaxRaw   int

	// CacheTTL is how long search responses are cached
	CacheTTL time.Duration

	// NewsQuerySuffix is appended to news queries
	NewsQuerySuffix string

	// NewsHeaders is the news column set in display order
	NewsHeaders []string

	// QPS and Burst pace outbound provider calls
	QPS   float64
	Burst int

	// Retries is the number of retries for 5xx and transport failures
	Retries int
}

// RateLimitConfig holds inbound rate limiting configuration
type RateLimitConfig struct {
	// RequestsPerMinute is the allowance per client
	RequestsPerMinute int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Search: SearchConfig{
			Endpoint:        getEnvOrDefault("GOOGLE_SEARCH_ENDPOINT", DefaultSearchEndpoint),
			APIKey:          getEnvOrDefault("GOOGLE_API_KEY", ""),
			EngineID:        getEnvOrDefault("GOOGLE_CSE_ID", getEnvOrDefault("GOOGLE_SEARCH_ENGINE_ID", "")),
			Timeout:         getEnvAsDurationOrDefault("SEARCH_TIMEOUT", 10*time.Second),
			MaxPages:        getEnvAsIntOrDefault("SEARCH_MAX_PAGES", 3),
			MaxRaw:          getEnvAsIntOrDefault("SEARCH_MAX_RAW", 30),
			CacheTTL:        getEnvAsDurationOrDefault("SEARCH_CACHE_TTL", 15*time.Minute),
			NewsQuerySuffix: getEnvOrDefault("NEWS_QUERY_SUFFIX", DefaultNewsQuerySuffix),
			NewsHeaders:     getEnvAsListOrDefault("NEWS_HEADERS", domain.DefaultNewsHeaders),
			QPS:             getEnvAsFloatOrDefault("PROVIDER_QPS", 1),
			Burst:           getEnvAsIntOrDefault("PROVIDER_BURST", 3),
			Retries:         getEnvAsIntOrDefault("PROVIDER_RETRIES", 2),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
	}

	return cfg, nil
}

// MissingCredentials names the provider settings that are not set
func (s SearchConfig) MissingCredentials() []string {
	if s.APIKey != "" && s.EngineID != "" {
		return nil
	}
	return []string{"GOOGLE_API_KEY", "GOOGLE_CSE_ID"}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("10s") or bare seconds ("10")
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getEnvAsListOrDefault splits a comma-separated variable, dropping blanks
func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}
	var list []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	if len(list) == 0 {
		return append([]string(nil), defaultValue...)
	}
	return list
}

// Validate checks if the configuration is valid.
// Missing provider credentials are not an error here; they surface per request.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "redis", "memory", "none":
	default:
		return errors.New("cache type must be 'redis', 'memory' or 'none'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Search.Endpoint == "" {
		return errors.New("search endpoint cannot be empty")
	}

	if c.Search.Timeout <= 0 {
		return errors.New("search timeout must be positive")
	}

	if c.Search.MaxPages < 1 || c.Search.MaxRaw < 1 {
		return errors.New("search page and result ceilings must be at least 1")
	}

	if c.Search.QPS <= 0 || c.Search.Burst < 1 {
		return errors.New("provider qps must be positive and burst at least 1")
	}

	if c.Search.Retries < 0 {
		return errors.New("provider retries cannot be negative")
	}

	if c.RateLimit.RequestsPerMinute < 1 {
		return errors.New("rate limit must be at least 1 request per minute")
	}

	return nil
}
