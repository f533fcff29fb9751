// Package api provides the HTTP API layer for the lead search service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma decodes and validates bodies from struct tags. Field rules that need
// to be reported together (query length, limit) are checked by the search
// service so one response can list every violation.
//
// 3. Middleware Support
//
// The API includes middleware for:
// - CORS handling
// - Panic recovery
// - Request logging with unique request IDs
// - Rate limiting per client IP
//
// # Usage Example
//
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    Flags:      flags,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	handlers.NewSearchHandler(searchService).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler(provider).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Every failure uses the same envelope:
//
//	{
//	    "ok": false,
//	    "error": "invalid request: query: must be at least 2 characters",
//	    "details": ["query: must be at least 2 characters"]
//	}
//
// Validation problems are 400, missing provider credentials and provider
// failures are 500, and clients over their rate limit get 429.
package api
