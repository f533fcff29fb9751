// Package core contains the business logic for the lead search API.
// It is framework-agnostic and is used by both the HTTP server and the CLI.
//
// The core package is organized into several sub-packages:
//
// - domain: Rows, scopes, queries and match statuses
// - extract: Pure heuristics over titles, snippets and URLs
// - gateway: Google Custom Search client returning raw pages
// - search: Scoped pipelines (validate, query, page, normalize, dedup)
// - fallback: Deterministic synthesized news rows
// - session: Client-side per-scope state, filtering and CSV export
// - errors: Custom error types mapped once at the API boundary
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, provider)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:    myCache,    // implements interfaces.Cache, nil disables caching
//	    Logger:   myLogger,   // implements interfaces.Logger
//	    Provider: gateway.NewGoogle(cfg, httpClient, myLogger),
//	    Fallback: fallback.NewGenerator(),
//	}
//
//	svc := search.NewService(deps, nil, search.Options{})
//	result, err := svc.SearchCompanies(ctx, domain.CompanyQuery{
//	    Query: "warehouse robotics",
//	    Limit: domain.LimitOf(25),
//	})
package core
