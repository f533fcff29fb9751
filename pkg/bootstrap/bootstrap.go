// ABOUTME: Builds the search stack from configuration for the server and the CLI
// ABOUTME: Picks the cache backend and wires gateway, fallback and flags into the service

package bootstrap

import (
	"io"
	"time"

	"leadsearch-api/core/fallback"
	"leadsearch-api/core/gateway"
	"leadsearch-api/core/interfaces"
	"leadsearch-api/core/search"
	"leadsearch-api/infrastructure/cache/memory"
	"leadsearch-api/infrastructure/cache/redis"
	"leadsearch-api/infrastructure/http/retryable"
	logruslogger "leadsearch-api/infrastructure/logger/logrus"
	"leadsearch-api/pkg/config"
	"leadsearch-api/pkg/featureflags"
)

// FlagPrefix is the environment prefix for feature flags, e.g. FEATURE_NEWS_FALLBACK=false
const FlagPrefix = "FEATURE_"

// Stack is the wired search pipeline
type Stack struct {
	Service  *search.Service
	Provider *gateway.Google
	Flags    featureflags.Manager
	Cache    interfaces.Cache

	closers []io.Closer
}

// Close releases backend connections
func (s *Stack) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// NewCache creates the configured cache. A failing Redis falls back to memory;
// type "none" returns nil, which disables response caching.
func NewCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, io.Closer) {
	switch cfg.Type {
	case "none":
		logger.Info("Response cache disabled", nil)
		return nil, nil
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache, redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	cleanup := time.Duration(cfg.Memory.DefaultExpiration) * time.Second
	if cleanup <= 0 {
		cleanup = 10 * time.Minute
	}
	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cleanup), nil
}

// New wires the search service from cfg
func New(cfg *config.Config, logger *logruslogger.Logger) *Stack {
	cache, closer := NewCache(cfg.Cache, logger)

	httpCfg := retryable.DefaultConfig()
	httpCfg.Timeout = cfg.Search.Timeout
	httpCfg.RetryMax = cfg.Search.Retries
	httpCfg.Logger = logger.Leveled()
	httpClient := retryable.NewClient(httpCfg)

	provider := gateway.NewGoogle(gateway.Config{
		Endpoint: cfg.Search.Endpoint,
		APIKey:   cfg.Search.APIKey,
		EngineID: cfg.Search.EngineID,
		Timeout:  cfg.Search.Timeout,
		QPS:      cfg.Search.QPS,
		Burst:    cfg.Search.Burst,
		MaxPages: cfg.Search.MaxPages,
		MaxRaw:   cfg.Search.MaxRaw,
	}, httpClient, logger)

	if !provider.Configured() {
		logger.Warn("Search provider credentials missing; searches will fail until they are set", map[string]interface{}{
			"missing": cfg.Search.MissingCredentials(),
		})
	}

	flags := featureflags.NewEnvManager(FlagPrefix)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Provider:   provider,
		Fallback:   fallback.NewGenerator(),
	}

	stack := &Stack{
		Service: search.NewService(deps, flags, search.Options{
			MaxPages:        cfg.Search.MaxPages,
			MaxRaw:          cfg.Search.MaxRaw,
			CacheTTL:        cfg.Search.CacheTTL,
			NewsQuerySuffix: cfg.Search.NewsQuerySuffix,
		}),
		Provider: provider,
		Flags:    flags,
		Cache:    cache,
	}
	if closer != nil {
		stack.closers = append(stack.closers, closer)
	}
	return stack
}
