// Package middleware provides the HTTP middleware chain: trace IDs and
// request logging, bearer-token authentication, Prometheus metrics and
// per-client rate limiting.
package middleware
