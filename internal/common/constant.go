// Package common contains shared constants and sentinel errors used across
// VidWave client components.
package common

const (
	// AuthTokenHeaderName carries the session token on authenticated requests.
	AuthTokenHeaderName = "X-Auth-Token"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// TokenStorageKey is the fixed key of the session token in local storage.
	TokenStorageKey = "vw_token"
)
