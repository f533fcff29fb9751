// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory response cache on patrickmn/go-cache
// - cache/redis: Redis response cache on go-redis
// - http/retryable: Outbound HTTP client on hashicorp/go-retryablehttp
// - logger/logrus: Structured logger on sirupsen/logrus with optional file rotation
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "search:news:25:acme news", payload, 15*time.Minute)
//	value, err := cache.Get(ctx, "search:news:25:acme news")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client retries connection failures and 5xx answers:
//
//	client := retryable.NewClient(retryable.DefaultConfig())
//	resp, err := client.Get(ctx, "https://www.googleapis.com/customsearch/v1?...")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Search completed", map[string]interface{}{
//	    "scope":    "news",
//	    "returned": 25,
//	})
package infrastructure
