// Package auth manages OAuth2 client-credentials tokens for the Lightcast
// API, caching one bearer token per scope and refreshing each before expiry.
//
// Lightcast gates its API families behind different OAuth scopes (the open
// taxonomy APIs share one scope, the premium APIs each require their own), so
// TokenManager keeps an independent cached token per scope rather than a
// single slot. Token fetches honor contexts, are thread-safe, and serialize
// refreshes so concurrent callers share a single token-endpoint round-trip.
//
// # Quick Start
//
//	tm := auth.NewTokenManager(auth.Config{
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	    TokenURL:     "https://auth.emsicloud.com/connect/token",
//	    DefaultScope: "emsi_open",
//	})
//
//	headers, err := tm.GetAuthHeaders(ctx)
//
// API clients that require a premium scope should call TokenForScope with
// their scope instead of mutating the shared active scope; see the lightcast
// package.
//
// # Notes
//
//   - A token is considered expired 60 seconds before its real expiry to
//     avoid using a token that lapses mid-request.
//   - Refresh failures surface as *Error and are never retried internally.
package auth
