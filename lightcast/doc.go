// Package lightcast is a client for the Lightcast labor-market data API:
// job titles, skills, occupation classification, similarity, benchmarks,
// career pathways, and job postings.
//
// Client is the base gateway: it substitutes {version} path placeholders,
// attaches bearer tokens from an auth.TokenManager, bounds its connection
// pool, and classifies failures into three kinds: *auth.Error (token
// acquisition), *RateLimitError (upstream 429, with the reset hint), and
// *APIError (any other non-2xx or transport failure). Nothing is retried
// internally; backoff policy belongs to the caller.
//
// Each API family has a typed client bound to the OAuth scope that family
// requires. Family clients can share one TokenManager: scope is fixed per
// client instance, so concurrent use of two premium families cannot clobber
// each other's authentication.
//
// # Quick Start
//
//	tm := auth.NewTokenManager(auth.Config{
//	    ClientID:     cfg.ClientID,
//	    ClientSecret: cfg.ClientSecret,
//	    TokenURL:     cfg.OAuthURL,
//	    DefaultScope: cfg.OAuthScope,
//	})
//
//	titles := lightcast.NewTitlesClient(tm)
//	defer titles.Close()
//
//	results, err := titles.SearchTitles(ctx, "software engineer", 10, 0)
//
// Successful non-JSON responses are returned as
// {"data": <text>, "content_type": <header>} rather than failing to decode.
package lightcast
