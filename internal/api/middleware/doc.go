// Package middleware holds the HTTP middleware of the API: permission
// checks against bearer tokens, per-request trace IDs and loggers, and CORS.
package middleware
