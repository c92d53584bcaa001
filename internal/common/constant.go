// Package common contains constants and helpers shared by the client layers.
package common

const (
	// AuthorizationHeaderName carries the bearer session token on
	// authenticated API calls.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName tags every outbound API call so it can be matched
	// against server logs.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
)
